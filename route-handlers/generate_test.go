package routehandlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coreybb/storyboard/ebook"
	"github.com/coreybb/storyboard/generation"
	"github.com/coreybb/storyboard/models"
	"github.com/coreybb/storyboard/processing"
	"github.com/coreybb/storyboard/storage"
	"github.com/coreybb/storyboard/webutil"
)

const validBody = `{"topic":"Neural Networks Basics","durationMinutes":5,"style":"educational","audience":"beginner","tone":"friendly","language":"en"}`

func newTestHandler(t *testing.T, maxBody int64) *GenerateHandler {
	t.Helper()
	pp := processing.NewPackageProcessor(
		generation.NewGenerationPipeline(),
		ebook.NewPackageGenerator(),
		storage.NewLocalFileStorer(t.TempDir()),
	)
	return NewGenerateHandler(pp, maxBody)
}

func post(h webutil.AppHandler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	webutil.MakeHandler(h).ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerate_OK(t *testing.T) {
	h := newTestHandler(t, 0)
	rec := post(h.HandleGenerate, validBody, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var result models.GenerationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("body does not decode: %v", err)
	}
	if result.Script.Duration != "00:05:00.000" {
		t.Fatalf("duration = %s", result.Script.Duration)
	}
	if rec.Header().Get(webutil.HeaderPackageID) == "" || rec.Header().Get(webutil.HeaderETag) == "" {
		t.Fatalf("missing package id or etag headers: %v", rec.Header())
	}

	again := post(h.HandleGenerate, validBody, nil)
	if again.Header().Get(webutil.HeaderETag) != rec.Header().Get(webutil.HeaderETag) {
		t.Fatalf("etag differs between identical requests")
	}
}

func TestHandleGenerate_NotModified(t *testing.T) {
	h := newTestHandler(t, 0)
	etag := post(h.HandleGenerate, validBody, nil).Header().Get(webutil.HeaderETag)

	rec := post(h.HandleGenerate, validBody, http.Header{webutil.HeaderIfNoneMatch: {etag}})
	if rec.Code != http.StatusNotModified {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("304 carried a body")
	}
}

func TestHandleGenerate_ValidationError(t *testing.T) {
	h := newTestHandler(t, 0)
	cases := map[string]string{
		"durationMinutes": `{"topic":"Neural Networks","durationMinutes":21,"style":"educational","audience":"beginner","tone":"friendly"}`,
		"topic":           `{"topic":"AI","durationMinutes":5,"style":"educational","audience":"beginner","tone":"friendly"}`,
		"style":           `{"topic":"Neural Networks","durationMinutes":5,"style":"vlog","audience":"beginner","tone":"friendly"}`,
	}
	for field, body := range cases {
		rec := post(h.HandleGenerate, body, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d", field, rec.Code)
		}
		var envelope struct {
			Error   string `json:"error"`
			Details []struct {
				Field string `json:"field"`
			} `json:"details"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("%s: %v", field, err)
		}
		if envelope.Error != "ValidationError" || len(envelope.Details) != 1 || envelope.Details[0].Field != field {
			t.Fatalf("%s: envelope %+v", field, envelope)
		}
	}
}

func TestHandleGenerate_QuotedDurationIsValidationError(t *testing.T) {
	h := newTestHandler(t, 0)
	rec := post(h.HandleGenerate, `{"topic":"Neural Networks","durationMinutes":"5","style":"educational","audience":"beginner","tone":"friendly"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"field":"durationMinutes"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestHandleGenerate_ControlCharactersInTopic(t *testing.T) {
	h := newTestHandler(t, 0)
	rec := post(h.HandleGenerate, `{"topic":"Neural\u0001Networks\b","durationMinutes":5,"style":"educational","audience":"beginner","tone":"friendly"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var result models.GenerationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Input.Topic != "Neural Networks" {
		t.Fatalf("topic = %q", result.Input.Topic)
	}
}

func TestHandleGenerate_BadPayload(t *testing.T) {
	h := newTestHandler(t, 0)
	for _, body := range []string{`{`, `{"topic":"x","unknown":1}`, ``} {
		if rec := post(h.HandleGenerate, body, nil); rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d", body, rec.Code)
		}
	}
}

func TestHandleGenerate_EmptyBody(t *testing.T) {
	h := newTestHandler(t, 0)
	rec := post(h.HandleGenerate, "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Request body is required") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestHandleGenerate_BodyTooLarge(t *testing.T) {
	h := newTestHandler(t, 32)
	if rec := post(h.HandleGenerate, validBody, nil); rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandleGenerateEPUB(t *testing.T) {
	h := newTestHandler(t, 0)
	rec := post(h.HandleGenerateEPUB, validBody, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(webutil.HeaderContentType); ct != "application/epub+zip" {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "PK") {
		t.Fatalf("body is not a zip archive")
	}
	if !strings.Contains(rec.Header().Get(webutil.HeaderContentDisposition), ".epub") {
		t.Fatalf("content disposition = %q", rec.Header().Get(webutil.HeaderContentDisposition))
	}
}

func TestHandleGetOptions(t *testing.T) {
	h := newTestHandler(t, 0)
	rec := httptest.NewRecorder()
	webutil.MakeHandler(h.HandleGetOptions).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/options", nil))

	var opts optionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &opts); err != nil {
		t.Fatal(err)
	}
	if len(opts.Styles) != 6 || len(opts.Audiences) != 3 || len(opts.Tones) != 6 {
		t.Fatalf("options = %+v", opts)
	}
	if opts.MinDurationMinutes != 2 || opts.MaxDurationMinutes != 20 {
		t.Fatalf("duration bounds = %d..%d", opts.MinDurationMinutes, opts.MaxDurationMinutes)
	}
}
