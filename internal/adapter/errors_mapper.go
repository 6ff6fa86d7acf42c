package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx classifier response into a sentinel error.
// 4xx means the classifier could not work with the samples, anything else
// means it is unavailable.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	reason := errorReason(resp.Body())
	if reason == "" {
		reason = http.StatusText(status)
	}

	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrClassifierRejected, status, reason)
	}
	return fmt.Errorf("%w: http %d: %s", ErrClassifierUnavailable, status, reason)
}

// errorReason extracts the "error" field of a JSON body, or returns the
// trimmed body as is.
func errorReason(body []byte) string {
	var payload predictionResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}
