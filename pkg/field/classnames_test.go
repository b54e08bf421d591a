package field_test

import (
	"testing"

	"github.com/goliatone/go-formfield/pkg/field"
)

func TestClassNames(t *testing.T) {
	got := field.ClassNames("ui--form-input  extra", map[string]bool{
		"ui--form-input--invalid":  true,
		"ui--form-input--disabled": false,
		"extra":                    true,
		"":                         true,
	})
	want := "ui--form-input extra ui--form-input--invalid"
	if got != want {
		t.Fatalf("class names: want %q, got %q", want, got)
	}
}

func TestSanitizeClassList(t *testing.T) {
	got := field.SanitizeClassList(" wide ui--form-error  mt-2 ", "ui--form-")
	if got != "wide mt-2" {
		t.Fatalf("sanitize: got %q", got)
	}
}
