package ui

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy

	optionPolicyOnce sync.Once
	optionPolicy     *bluemonday.Policy
)

// sanitizeContent cleans caller supplied inner markup for labels, errors and
// free-form group content.
func sanitizeContent(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(contentSanitizer().Sanitize(trimmed))
}

// sanitizeOptions cleans caller supplied <option>/<optgroup> markup.
func sanitizeOptions(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(optionSanitizer().Sanitize(trimmed))
}

func contentSanitizer() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		contentPolicy = bluemonday.UGCPolicy()
	})
	return contentPolicy
}

func optionSanitizer() *bluemonday.Policy {
	optionPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("option", "optgroup")
		policy.AllowAttrs("value", "selected", "disabled", "label").OnElements("option")
		policy.AllowAttrs("label", "disabled").OnElements("optgroup")
		optionPolicy = policy
	})
	return optionPolicy
}
