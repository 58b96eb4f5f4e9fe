package todoapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todoapp/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// unreachableMessage is shown for transport failures and an open breaker.
const unreachableMessage = "unable to reach the todo API"

// problemDetail is the subset of an RFC 9457 body the client reads.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// APIError is a non-success response from the todo API. Its message is the
// server's problem detail, or the status text when the body carries none, so
// it can be shown to the user as is.
//
// APIError unwraps to the matching domain error: errors.Is(err,
// domain.ErrNotFound) holds for a 404, and errors.As reaches a
// *domain.ValidationError for a 400 that lists fields.
type APIError struct {
	Status int
	Detail string
	cause  error
}

func (e *APIError) Error() string {
	return e.Detail
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// UnreachableError reports that no response was obtained: the connection
// failed, the request timed out, or the circuit breaker is open.
type UnreachableError struct {
	Err error
}

func (e *UnreachableError) Error() string {
	return unreachableMessage
}

// Unwrap exposes both domain.ErrUnavailable and the transport cause.
func (e *UnreachableError) Unwrap() []error {
	return []error{domain.ErrUnavailable, e.Err}
}

// TranslateHTTPError maps an error response to an *APIError. The body is
// parsed as problem+json when the content type says so.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	if detail == "" {
		detail = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}

	apiErr := &APIError{Status: resp.StatusCode, Detail: detail}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		apiErr.cause = domain.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			apiErr.cause = toValidationError(pd.Errors)
		} else {
			apiErr.cause = domain.ErrValidation
		}
	case resp.StatusCode == http.StatusConflict:
		apiErr.cause = domain.ErrConflict
	case resp.StatusCode >= http.StatusInternalServerError:
		apiErr.cause = domain.ErrUnavailable
	}

	return apiErr
}

// parseProblemDetail reads an RFC 9457 body. Returns the zero value when the
// body is missing, not problem+json, or unparseable.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError strips the "body." prefix the server puts on locations.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		fields[strings.TrimPrefix(d.Location, "body.")] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}

// IsUnreachable reports whether err means the API could not be reached.
func IsUnreachable(err error) bool {
	var ue *UnreachableError
	return errors.As(err, &ue)
}
