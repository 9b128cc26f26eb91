package api

import (
	"net/http"

	"github.com/coreybb/storyboard/webutil"
)

// SetHeader is a middleware to set a response header.
func SetHeader(key, value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(key, value)
			next.ServeHTTP(w, r)
		})
	}
}

func handleNotFound(w http.ResponseWriter, r *http.Request) error {
	return webutil.ErrNotFound("")
}

func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) error {
	return webutil.ErrMethodNotAllowed()
}
