package mcp

import (
	"context"
	"errors"
	"strings"

	"gcoremcp/internal/gcore"
)

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Hint      string `json:"hint,omitempty"`
	Retryable bool   `json:"retryable"`
}

type ErrorEnvelope struct {
	Error   ErrorDetail `json:"error"`
	Details any         `json:"details,omitempty"`
}

func BuildErrorEnvelope(err error, details any) map[string]any {
	envelope := ErrorEnvelope{Error: classifyError(err)}
	out := map[string]any{"error": envelope.Error}
	if details != nil {
		out["details"] = details
	}
	return out
}

func classifyError(err error) ErrorDetail {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorDetail{Code: "timeout", Message: msg, Hint: "Increase the timeout or check network latency.", Retryable: true}
	}
	if errors.Is(err, context.Canceled) {
		return ErrorDetail{Code: "canceled", Message: msg, Hint: "Request was canceled before completion.", Retryable: true}
	}

	var apiErr *gcore.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 400:
			return ErrorDetail{Code: "invalid_request", Message: msg, Hint: "Fix request parameters or schema.", Retryable: false}
		case apiErr.StatusCode == 401:
			return ErrorDetail{Code: "unauthorized", Message: msg, Hint: "Check the GCORE_API_KEY credential.", Retryable: false}
		case apiErr.StatusCode == 403:
			return ErrorDetail{Code: "forbidden", Message: msg, Hint: "Check account permissions for this resource.", Retryable: false}
		case apiErr.StatusCode == 404:
			return ErrorDetail{Code: "not_found", Message: msg, Hint: "Verify the resource id, project, and region.", Retryable: false}
		case apiErr.StatusCode == 409:
			return ErrorDetail{Code: "conflict", Message: msg, Hint: "Resource state conflict; retry with latest state.", Retryable: true}
		case apiErr.StatusCode == 429:
			return ErrorDetail{Code: "rate_limited", Message: msg, Hint: "Retry with backoff.", Retryable: true}
		case apiErr.StatusCode >= 500:
			return ErrorDetail{Code: "upstream_error", Message: msg, Hint: "Gcore API error; retry with backoff.", Retryable: true}
		}
	}

	if isInvalidRequestMessage(msg) {
		return ErrorDetail{Code: "invalid_request", Message: msg, Hint: "Fix request parameters or schema.", Retryable: false}
	}

	return ErrorDetail{Code: "internal", Message: msg, Hint: "Check server logs for details.", Retryable: false}
}

func isInvalidRequestMessage(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "required") || strings.Contains(lower, "invalid") || strings.Contains(lower, "missing")
}
