package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPErrorHidesCause(t *testing.T) {
	cause := errors.New("dynamodb: connection reset")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected cause to be unwrappable")
	}
}

func TestAppError_Error(t *testing.T) {
	simple := NewDomainErrorSimple("NOT_FOUND", "Invoice not found", http.StatusNotFound)
	if got := simple.Error(); got != "NOT_FOUND: Invoice not found" {
		t.Fatalf("unexpected error string %q", got)
	}
	if simple.Unwrap() != nil {
		t.Fatalf("expected nil cause")
	}
}
