// Package redact strips credential material from tool results before they
// are returned to the client. Gcore responses can embed API keys, TLS
// private keys, and secret payloads (cloud.secrets, registry credentials).
package redact

import (
	"regexp"
	"strings"
)

const placeholder = "[REDACTED]"

// Token-ish sequences (API keys, JWT fragments, etc.). The JWT alternative
// must come first: RE2 takes the leftmost-first branch, and a long JWT
// header would otherwise match the generic alternative alone, leaving the
// payload and signature segments intact.
var tokenPattern = regexp.MustCompile(`(?i)(eyJ[a-zA-Z0-9_\-]+\.[a-zA-Z0-9_\-]+\.[a-zA-Z0-9_\-]+|[a-z0-9_\-]{20,})`)

// Keys whose values are secrets regardless of shape.
var sensitiveKeys = map[string]bool{
	"api_key":      true,
	"apikey":       true,
	"password":     true,
	"secret":       true,
	"payload":      true,
	"token":        true,
	"private_key":  true,
	"credentials":  true,
	"client_secret": true,
}

type Redactor struct{}

func New() *Redactor {
	return &Redactor{}
}

func (r *Redactor) RedactString(input string) string {
	return tokenPattern.ReplaceAllString(input, placeholder)
}

// RedactMap replaces values under sensitive keys wholesale and redacts
// token-like substrings everywhere else.
func (r *Redactor) RedactMap(input map[string]any) map[string]any {
	output := make(map[string]any, len(input))
	for k, v := range input {
		if sensitiveKeys[strings.ToLower(k)] {
			output[k] = placeholder
			continue
		}
		output[k] = r.RedactValue(v)
	}
	return output
}

func (r *Redactor) RedactValue(input any) any {
	switch v := input.(type) {
	case string:
		return r.RedactString(v)
	case map[string]any:
		return r.RedactMap(v)
	case []any:
		redacted := make([]any, 0, len(v))
		for _, item := range v {
			redacted = append(redacted, r.RedactValue(item))
		}
		return redacted
	default:
		return input
	}
}
