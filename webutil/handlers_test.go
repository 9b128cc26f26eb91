package webutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func serve(h AppHandler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	MakeHandler(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/x", nil))
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v (%q)", err, rec.Body.String())
	}
	return body
}

func TestMakeHandler_ValidationDetails(t *testing.T) {
	details := []map[string]string{{"field": "topic", "message": "too short"}}
	rec := serve(func(w http.ResponseWriter, r *http.Request) error {
		return ErrValidation(errors.New("invalid brief"), details)
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body["error"] != "ValidationError" {
		t.Fatalf("error = %v", body["error"])
	}
	if got, ok := body["details"].([]any); !ok || len(got) != 1 {
		t.Fatalf("details = %v", body["details"])
	}
}

func TestMakeHandler_UnknownErrorIs500(t *testing.T) {
	rec := serve(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("boom")
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body["error"] != "ServerError" || body["message"] != "Internal Server Error" {
		t.Fatalf("body = %v", body)
	}
	if _, ok := body["details"]; ok {
		t.Fatalf("unexpected details in 500 response")
	}
}

func TestMakeHandler_ServerErrorShowsMessageNotCause(t *testing.T) {
	rec := serve(func(w http.ResponseWriter, r *http.Request) error {
		return ErrInternalServerWrap("failed to generate package", errors.New("internal inconsistency (ssml)"))
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body["error"] != "ServerError" || body["message"] != "failed to generate package" {
		t.Fatalf("body = %v", body)
	}
	if strings.Contains(rec.Body.String(), "inconsistency") {
		t.Fatalf("cause leaked to the client: %s", rec.Body.String())
	}
}

func TestMakeHandler_ClientErrorHasNoMessageField(t *testing.T) {
	rec := serve(func(w http.ResponseWriter, r *http.Request) error {
		return ErrNotFound("")
	})
	body := decodeEnvelope(t, rec)
	if body["error"] != "Resource not found" {
		t.Fatalf("error = %v", body["error"])
	}
	if _, ok := body["message"]; ok {
		t.Fatalf("unexpected message in 404 response: %v", body)
	}
}

func TestMakeHandler_ErrorAfterWriteKeepsResponse(t *testing.T) {
	rec := serve(func(w http.ResponseWriter, r *http.Request) error {
		RespondWithJSON(w, http.StatusAccepted, map[string]string{"ok": "yes"})
		return errors.New("late failure")
	})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rec.Code)
	}
	if decodeEnvelope(t, rec)["ok"] != "yes" {
		t.Fatalf("original body was replaced: %q", rec.Body.String())
	}
}

func TestStrongETag(t *testing.T) {
	a, _ := StrongETag([]byte("abc"))
	b, _ := StrongETag([]byte("abc"))
	c, _ := StrongETag([]byte("abd"))
	if a != b || a == c {
		t.Fatalf("etags %s %s %s", a, b, c)
	}
	if len(a) != 66 || a[0] != '"' || a[65] != '"' {
		t.Fatalf("etag %s is not a quoted sha256", a)
	}
}
