package webutil

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ERROR: Failed to marshal JSON response: %v", err)
		w.Header().Set(HeaderContentType, ContentTypeJSONUTF8)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"ServerError","message":"Internal Server Error"}`))
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// RespondWithBytes writes a pre-encoded body with an explicit content type.
func RespondWithBytes(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set(HeaderContentType, contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// HasResponseWriterSentHeader reports whether a status line has already been
// written. It needs a writer wrapped by chi's middleware.WrapResponseWriter,
// which MakeHandler provides; for any other writer it reports false.
func HasResponseWriterSentHeader(w http.ResponseWriter) bool {
	if ww, ok := w.(middleware.WrapResponseWriter); ok {
		return ww.Status() != 0
	}
	return false
}
