// Package middleware holds the todo server's request pipeline. cmd/server
// installs it on the chi router outermost first:
//
//	Recovery, RequestID, CorrelationID, CORS, OpenTelemetry, Logging, Timeout
//
// Recovery, OpenTelemetry and Logging share the status-recording writer below.
package middleware

import "net/http"

// responseWriter remembers the status and body size of a todo response so
// the access log, the span and the request metrics can report them.
// headerWritten tells Recovery whether a 500 problem can still be sent.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader keeps the first status; handlers that write twice are ignored
// the second time, as net/http would.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

// Write counts body bytes. A body without WriteHeader is an implicit 200.
func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
