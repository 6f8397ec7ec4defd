package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestToDomainError(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}

	wrapped := fmt.Errorf("update: %w", NewNotFound("quote", map[string]any{"id": "x"}))
	de := ToDomainError(wrapped)
	if de.Code != CodeNotFound || de.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected mapping %+v", de)
	}
	if de.Message != "quote not found" || de.Details["id"] != "x" {
		t.Fatalf("unexpected message/details %+v", de)
	}

	plain := ToDomainError(errors.New("boom"))
	if plain.Code != CodeInternal || plain.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal error, got %+v", plain)
	}
}

func TestHasCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{"credentials", NewInvalidCredentials(), CodeInvalidCredentials, true},
		{"validation", NewValidationError("bad", nil), CodeValidationFailed, true},
		{"wrong code", NewRateLimited("slow down"), CodeNotFound, false},
		{"plain", errors.New("x"), CodeInternal, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasCode(tc.err, tc.code); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestInternalErrorUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError(cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
	if err.Error() != "internal server error: disk full" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestToDomainError_ContextErrors(t *testing.T) {
	for _, err := range []error{context.DeadlineExceeded, fmt.Errorf("wait: %w", context.Canceled)} {
		de := ToDomainError(err)
		if de.Code != CodeTimeout || de.HTTPStatus != http.StatusGatewayTimeout {
			t.Fatalf("expected timeout mapping for %v, got %+v", err, de)
		}
	}
}
