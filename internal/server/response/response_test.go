package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agentstation/quotegen/pkg/errors"
)

// TestEnvelope tests the Success and Fail constructors.
func TestEnvelope(t *testing.T) {
	ok := Success(map[string]int{"count": 3})
	if ok.Data == nil || ok.Error != nil {
		t.Fatalf("unexpected success envelope: %+v", ok)
	}

	failed := Fail("BAD_REQUEST", "bad", "details")
	if failed.Data != nil {
		t.Error("expected Data to be nil")
	}
	if failed.Error == nil || failed.Error.Code != "BAD_REQUEST" || failed.Error.Details != "details" {
		t.Errorf("unexpected error envelope: %+v", failed.Error)
	}
}

// TestJSON tests that JSON writes status, content type and body.
func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	Created(w, map[string]string{"text": "hello"})

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", ct)
	}

	var decoded Response
	if err := json.NewDecoder(w.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Error != nil {
		t.Error("expected decoded Error to be nil")
	}
}

// TestErrorFromType tests mapping of typed errors to status codes.
func TestErrorFromType(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", errors.NewNotFoundError("quote", "9"), http.StatusNotFound, "NOT_FOUND"},
		{"none available", errors.ErrNoneAvailable, http.StatusNotFound, "NOT_FOUND"},
		{"validation", errors.NewValidationError("text", "", "must not be empty"), http.StatusBadRequest, "BAD_REQUEST"},
		{"import", errors.NewImportFormatError("json", "expected an array", nil), http.StatusUnprocessableEntity, "INVALID_IMPORT"},
		{"wrapped import", fmt.Errorf("import: %w", &errors.ImportFormatError{Format: "yaml", Index: 2, Message: "text required"}), http.StatusUnprocessableEntity, "INVALID_IMPORT"},
		{"remote", errors.WrapRemote("fetch", "http://example.test", fmt.Errorf("dial failed")), http.StatusBadGateway, "REMOTE_UNAVAILABLE"},
		{"other", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ErrorFromType(w, tt.err)

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			var resp Response
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Error == nil || resp.Error.Code != tt.code {
				t.Errorf("expected code %s, got %+v", tt.code, resp.Error)
			}
		})
	}
}

// TestInternalErrorHidesDetails tests that internal errors are not echoed.
func TestInternalErrorHidesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	InternalError(w, fmt.Errorf("secret path /var/lib/quotegen"))

	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Details != "An unexpected error occurred" {
		t.Errorf("unexpected details: %s", resp.Error.Details)
	}
}
