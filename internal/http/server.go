// Package http arma el servidor del servicio.
package http

import (
	"net/http"
	"time"
)

// NewServer construye el http.Server con los timeouts configurados.
func NewServer(addr string, handler http.Handler, readTimeout, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}
