package webserver

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// AccessHandler is an http.Handler which wraps around another handler and prints
// access logs.
type AccessHandler struct {
	wrapped http.Handler
}

// NewAccessHandler returns an AccessHandler which will call `h` and the log
// information about the http request and response.
func NewAccessHandler(h http.Handler) *AccessHandler {
	return &AccessHandler{
		wrapped: h,
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *AccessHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	started := time.Now()
	ww := newLoggedResponseWriter(w)
	h.wrapped.ServeHTTP(ww, req)

	log.WithFields(log.Fields{
		"dur":        time.Since(started),
		"status":     ww.code,
		"userAgent":  req.Header.Get("User-Agent"),
		"remoteAddr": req.RemoteAddr,
	}).Infof("%s %s", req.Method, req.URL.RequestURI())
}

type loggedResponseWriter struct {
	http.ResponseWriter
	code int
}

func newLoggedResponseWriter(w http.ResponseWriter) *loggedResponseWriter {
	return &loggedResponseWriter{
		ResponseWriter: w,
		code:           http.StatusOK,
	}
}

func (w *loggedResponseWriter) WriteHeader(status int) {
	w.code = status
	w.ResponseWriter.WriteHeader(status)
}
