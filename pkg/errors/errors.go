// Package errors provides custom error types for the quotegen system.
// Every failure in quotegen degrades to "no-op plus user-visible notice",
// so these types exist to let hosts decide which notice to show with
// errors.Is / errors.As rather than string matching.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are re-exported so callers only need one errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the quotegen system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoneAvailable indicates that the filtered view of the store is empty
	ErrNoneAvailable = errors.New("no quotes available")

	// ErrStorageCorrupt indicates that a persisted snapshot could not be read
	ErrStorageCorrupt = errors.New("storage corrupt")

	// ErrRemoteUnavailable indicates that the remote quote source could not be reached or parsed
	ErrRemoteUnavailable = errors.New("remote unavailable")

	// ErrImportFormat indicates that an imported document is not an array of quotes
	ErrImportFormat = errors.New("invalid import format")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// StorageCorruptError reports a persisted snapshot that could not be decoded.
// It is recovered locally (seed data is used) and only ever logged.
type StorageCorruptError struct {
	Key string
	Err error
}

// Error implements the error interface
func (e *StorageCorruptError) Error() string {
	return fmt.Sprintf("snapshot %q is unreadable: %v", e.Key, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *StorageCorruptError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *StorageCorruptError) Is(target error) bool {
	return target == ErrStorageCorrupt
}

// NewStorageCorruptError creates a new StorageCorruptError
func NewStorageCorruptError(key string, err error) *StorageCorruptError {
	return &StorageCorruptError{Key: key, Err: err}
}

// RemoteUnavailableError represents a failed fetch or push against the remote source.
type RemoteUnavailableError struct {
	Operation string // "fetch" or "push"
	Endpoint  string
	Err       error
}

// Error implements the error interface
func (e *RemoteUnavailableError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("remote %s failed (%s): %v", e.Operation, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("remote %s failed: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *RemoteUnavailableError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *RemoteUnavailableError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}

// NewRemoteUnavailableError creates a new RemoteUnavailableError
func NewRemoteUnavailableError(operation, endpoint string, err error) *RemoteUnavailableError {
	return &RemoteUnavailableError{Operation: operation, Endpoint: endpoint, Err: err}
}

// ImportFormatError represents an imported document that is not a valid quote array.
// Index is the offending entry, or -1 when the document itself is malformed.
type ImportFormatError struct {
	Format  string
	Index   int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ImportFormatError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid %s import at entry %d: %s", e.Format, e.Index, e.Message)
	}
	return fmt.Sprintf("invalid %s import: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ImportFormatError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ImportFormatError) Is(target error) bool {
	return target == ErrImportFormat
}

// NewImportFormatError creates a new ImportFormatError for the whole document
func NewImportFormatError(format, message string, err error) *ImportFormatError {
	return &ImportFormatError{Format: format, Index: -1, Message: message, Err: err}
}

// APIError represents a non-success response from the remote source
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new APIError
func NewAPIError(endpoint string, statusCode int, message string) *APIError {
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    message,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// SyncError represents an error during a sync cycle
type SyncError struct {
	Stage string // "fetch", "merge", "persist"
	Err   error
}

// Error implements the error interface
func (e *SyncError) Error() string {
	return fmt.Sprintf("sync error during %s: %v", e.Stage, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *SyncError) Unwrap() error {
	return e.Err
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", "toml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "create", "update", "delete", "fetch"
	Resource  string // "store", "quote", "storage", "remote"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNoneAvailable checks if a pick found an empty filtered view
func IsNoneAvailable(err error) bool {
	return errors.Is(err, ErrNoneAvailable)
}

// IsRemoteUnavailable checks if an error came from an unreachable remote source
func IsRemoteUnavailable(err error) bool {
	return errors.Is(err, ErrRemoteUnavailable)
}

// IsImportFormat checks if an error is an import format error
func IsImportFormat(err error) bool {
	return errors.Is(err, ErrImportFormat)
}

// IsStorageCorrupt checks if an error reports an unreadable snapshot
func IsStorageCorrupt(err error) bool {
	return errors.Is(err, ErrStorageCorrupt)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapRemote wraps an error as a RemoteUnavailableError
func WrapRemote(operation, endpoint string, err error) error {
	if err == nil {
		return nil
	}
	return NewRemoteUnavailableError(operation, endpoint, err)
}
