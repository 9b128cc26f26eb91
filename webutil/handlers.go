package webutil

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// AppHandler represents a handler function that returns an error.
type AppHandler func(w http.ResponseWriter, r *http.Request) error

// errorEnvelope is the JSON body of every error response. Server errors carry
// error "ServerError" and a message; client errors carry the message as error.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func serverErrorEnvelope(message string) errorEnvelope {
	return errorEnvelope{Error: msgServerError, Message: message}
}

// MakeHandler adapts an AppHandler to the standard http.HandlerFunc signature.
// It executes the AppHandler and handles any returned error by logging appropriately
// and sending a standardized JSON error response.
func MakeHandler(handler AppHandler) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		w := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)
		err := handler(w, r)
		if err == nil {
			// The handler has written its own successful response.
			return
		}

		var httpErr *HTTPError
		envelope := serverErrorEnvelope(msgInternalServer)
		statusCode := http.StatusInternalServerError
		reqID := middleware.GetReqID(r.Context())

		if errors.As(err, &httpErr) {
			statusCode = httpErr.Code
			envelope = errorEnvelope{Error: httpErr.Message, Details: httpErr.Details}
			logLevel := slog.LevelWarn // Treat client errors as warnings server-side
			if statusCode >= 500 {
				envelope = serverErrorEnvelope(httpErr.Message)
				logLevel = slog.LevelError
			}
			attrs := []any{"code", httpErr.Code, "msg", httpErr.Message, "path", r.URL.Path, "method", r.Method, "request_id", reqID}
			// Log the underlying cause if present and different from the public message
			if cause := errors.Unwrap(httpErr); cause != nil && cause.Error() != httpErr.Message {
				attrs = append(attrs, "cause", cause)
			}
			slog.Log(r.Context(), logLevel, "Client error response", attrs...)
		} else {
			slog.Error("Unhandled internal error", "path", r.URL.Path, "method", r.Method, "request_id", reqID, "error", err)
		}

		if HasResponseWriterSentHeader(w) {
			slog.Warn("Handler returned error after writing response header",
				"path", r.URL.Path,
				"method", r.Method,
				"error", err,
			)
			return
		}

		w.Header().Set(HeaderContentType, ContentTypeJSONUTF8)
		RespondWithJSON(w, statusCode, envelope)
	}
}
