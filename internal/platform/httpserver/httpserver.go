// Package httpserver builds the process's http.Server with the timeouts a
// local single-user API wants: short header/read windows and a write
// timeout above the router's 30s request timeout so the middleware deadline
// fires first and can still write its response.
package httpserver

import (
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 35 * time.Second
	idleTimeout       = 2 * time.Minute
)

// New builds the server; lifecycle (ListenAndServe, Shutdown) stays with
// the caller.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}
