package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/logging"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// DecodeResponse decodes a JSON response into target. Any 2xx status is a
// success; other statuses return an APIError carrying the body.
func DecodeResponse(resp *http.Response, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	endpoint := ""
	if resp.Request != nil && resp.Request.URL != nil {
		endpoint = resp.Request.Method + " " + resp.Request.URL.Redacted()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &errors.APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", endpoint, err)
	}
	return nil
}
