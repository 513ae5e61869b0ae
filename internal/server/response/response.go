// Package response provides the JSON envelope used by every quotegen API
// endpoint: a data field on success and an error field on failure.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/agentstation/quotegen/pkg/errors"
)

// Response is the envelope for all API responses.
type Response struct {
	Data  any    `json:"data"`
	Error *Error `json:"error"`
}

// Error describes a failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Success wraps data in an envelope.
func Success(data any) Response {
	return Response{Data: data}
}

// Fail builds an error envelope.
func Fail(code, message, details string) Response {
	return Response{
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// JSON writes resp with the given status code.
func JSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// headers are already sent, so an encoding failure cannot be reported
	_ = json.NewEncoder(w).Encode(resp)
}

// OK writes data with 200.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Success(data))
}

// Created writes data with 201.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, Success(data))
}

// BadRequest writes a 400 error.
func BadRequest(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusBadRequest, Fail("BAD_REQUEST", message, details))
}

// NotFound writes a 404 error.
func NotFound(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusNotFound, Fail("NOT_FOUND", message, details))
}

// MethodNotAllowed writes a 405 error.
func MethodNotAllowed(w http.ResponseWriter, method string) {
	JSON(w, http.StatusMethodNotAllowed, Fail(
		"METHOD_NOT_ALLOWED",
		"Method not allowed",
		"Method "+method+" is not supported for this endpoint",
	))
}

// UnprocessableEntity writes a 422 error for well-formed but unusable input.
func UnprocessableEntity(w http.ResponseWriter, code, message string) {
	JSON(w, http.StatusUnprocessableEntity, Fail(code, message, ""))
}

// BadGateway writes a 502 error for a failing upstream.
func BadGateway(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadGateway, Fail(
		"REMOTE_UNAVAILABLE",
		"Quote server unavailable",
		message,
	))
}

// InternalError writes a 500 error without leaking err to the client.
func InternalError(w http.ResponseWriter, _ error) {
	JSON(w, http.StatusInternalServerError, Fail(
		"INTERNAL_ERROR",
		"Internal server error",
		"An unexpected error occurred",
	))
}

// ServiceUnavailable writes a 503 error.
func ServiceUnavailable(w http.ResponseWriter, message string) {
	JSON(w, http.StatusServiceUnavailable, Fail(
		"SERVICE_UNAVAILABLE",
		"Service unavailable",
		message,
	))
}

// ErrorFromType maps quotegen errors to HTTP responses.
func ErrorFromType(w http.ResponseWriter, err error) {
	var importErr *errors.ImportFormatError
	switch {
	case errors.As(err, &importErr):
		UnprocessableEntity(w, "INVALID_IMPORT", importErr.Error())
	case errors.IsNoneAvailable(err):
		NotFound(w, err.Error(), "Add a quote or choose another category")
	case errors.IsNotFound(err):
		NotFound(w, err.Error(), "")
	case errors.IsValidationError(err):
		BadRequest(w, err.Error(), "")
	case errors.IsRemoteUnavailable(err):
		BadGateway(w, err.Error())
	default:
		InternalError(w, err)
	}
}
