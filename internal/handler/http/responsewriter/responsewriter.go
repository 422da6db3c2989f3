// Package responsewriter wraps http.ResponseWriter so the logging and
// metrics middleware can observe the status code and body size after the
// handler has run.
package responsewriter

import "net/http"

// ResponseWriter records the status and byte count of a response.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	written int
	wrote   bool
}

// Wrap returns a recording wrapper around w. The status defaults to 200,
// matching what net/http reports when a handler never calls WriteHeader.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code; later calls are ignored, the
// same way net/http treats duplicate WriteHeader calls.
func (w *ResponseWriter) WriteHeader(status int) {
	if w.wrote {
		return
	}
	w.status = status
	w.wrote = true
	w.ResponseWriter.WriteHeader(status)
}

// Write counts body bytes, writing the implicit 200 header first if needed.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

// StatusCode returns the recorded status code.
func (w *ResponseWriter) StatusCode() int {
	return w.status
}

// BytesWritten returns the recorded body size in bytes.
func (w *ResponseWriter) BytesWritten() int {
	return w.written
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
