package transport

import (
	"net/http"
	"strings"

	"github.com/agentstation/quotegen/pkg/errors"
)

// Authenticator applies a credential to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request, token string)
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request, _ string) {}

// BearerAuth implements Bearer token authentication.
type BearerAuth struct{}

// Apply implements the Authenticator interface for BearerAuth.
func (a *BearerAuth) Apply(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}

// HeaderAuth sends the token in a custom header.
type HeaderAuth struct {
	Header string
}

// Apply implements the Authenticator interface for HeaderAuth.
func (a *HeaderAuth) Apply(req *http.Request, token string) {
	req.Header.Set(a.Header, token)
}

// QueryAuth sends the token as a query parameter.
type QueryAuth struct {
	Param string
}

// Apply implements the Authenticator interface for QueryAuth.
func (a *QueryAuth) Apply(req *http.Request, token string) {
	if req.URL == nil {
		return
	}
	query := req.URL.Query()
	query.Set(a.Param, token)
	req.URL.RawQuery = query.Encode()
}

// ParseAuthenticator builds an authenticator from a config value:
// "bearer" (the default), "none", "header:<name>" or "query:<param>".
func ParseAuthenticator(s string) (Authenticator, error) {
	scheme, arg, _ := strings.Cut(strings.TrimSpace(s), ":")
	switch strings.ToLower(scheme) {
	case "", "bearer":
		return &BearerAuth{}, nil
	case "none":
		return &NoAuth{}, nil
	case "header":
		if arg == "" {
			return nil, errors.NewValidationError("remote_auth", s, "header scheme needs a header name")
		}
		return &HeaderAuth{Header: arg}, nil
	case "query":
		if arg == "" {
			return nil, errors.NewValidationError("remote_auth", s, "query scheme needs a parameter name")
		}
		return &QueryAuth{Param: arg}, nil
	default:
		return nil, errors.NewValidationError("remote_auth", s, "must be bearer, none, header:<name> or query:<param>")
	}
}
