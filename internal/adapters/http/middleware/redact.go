package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

const redacted = "[REDACTED]"

// credentialHeaders are matched case-insensitively.
var credentialHeaders = map[string]struct{}{
	"authorization":       {},
	"proxy-authorization": {},
	"x-api-key":           {},
	"cookie":              {},
	"set-cookie":          {},
}

// RedactHeaders turns headers into log attributes sorted by name, masking
// credential-bearing headers. Repeated values are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := strings.Join(headers[name], ",")
		if _, ok := credentialHeaders[strings.ToLower(name)]; ok {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
