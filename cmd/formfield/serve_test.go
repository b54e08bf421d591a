package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-formfield/pkg/fragment"
	"github.com/goliatone/go-formfield/pkg/ui"
)

const previewDocument = `
title: Contact <us>
groups:
  - context:
      id: name
      name: name
      error: Required
    elements:
      - kind: label
        text: Name
      - kind: input
      - kind: error
`

func TestPreviewRouterRendersDocument(t *testing.T) {
	renderer, err := ui.New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	router := newPreviewRouter(renderer, func() (*fragment.Document, error) {
		return fragment.Parse([]byte(previewDocument), "preview.yaml")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Contact &lt;us&gt;</title>") {
		t.Fatalf("expected escaped title, got %s", body)
	}
	if !strings.Contains(body, `<p class="ui--form-error" id="name-error" role="alert">Required</p>`) {
		t.Fatalf("expected error element, got %s", body)
	}
}

func TestPreviewRouterReportsLoadErrors(t *testing.T) {
	renderer, err := ui.New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	router := newPreviewRouter(renderer, func() (*fragment.Document, error) {
		return nil, errors.New("broken document")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 from healthz, got %d", rec.Code)
	}
}
