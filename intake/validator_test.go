package intake

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jhillyerd/enmime"

	"github.com/coreybb/storyboard/models"
)

func validRequest() BriefRequest {
	return BriefRequest{
		Topic:           "Neural Networks Basics",
		DurationMinutes: "5",
		Style:           "educational",
		Audience:        "beginner",
		Tone:            "friendly",
	}
}

func issueFields(t *testing.T, err error) []string {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	fields := make([]string, len(ve.Issues))
	for i, issue := range ve.Issues {
		fields[i] = issue.Field
	}
	return fields
}

func TestValidate_Valid(t *testing.T) {
	b, err := Validate(validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.DurationMinutes != 5 || b.Style != models.VideoStyleEducational || b.Language != "en" {
		t.Fatalf("unexpected brief: %+v", b)
	}
}

func TestValidate_NormalizesInput(t *testing.T) {
	req := validRequest()
	req.Topic = "  <b>R&amp;D</b>   Basics  "
	req.Style = "Listicle"
	req.Language = "pt-br"

	b, err := Validate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Topic != "R&D Basics" {
		t.Fatalf("topic = %q", b.Topic)
	}
	if b.Style != models.VideoStyleListicle {
		t.Fatalf("style = %q", b.Style)
	}
	if b.Language != "pt-BR" {
		t.Fatalf("language = %q", b.Language)
	}
}

func TestValidate_DurationBounds(t *testing.T) {
	cases := map[string]bool{"1": false, "2": true, "20": true, "21": false, "5.5": false, "": false, "abc": false}
	for raw, ok := range cases {
		req := validRequest()
		req.DurationMinutes = json.Number(raw)
		_, err := Validate(req)
		if ok && err != nil {
			t.Fatalf("duration %q: unexpected error %v", raw, err)
		}
		if !ok {
			if fields := issueFields(t, err); len(fields) != 1 || fields[0] != "durationMinutes" {
				t.Fatalf("duration %q: issues %v", raw, fields)
			}
		}
	}
}

func TestBriefRequest_DurationMustBeJSONNumber(t *testing.T) {
	cases := map[string]bool{
		`5`:    true,
		`5.0`:  true,
		`"5"`:  false,
		`true`: false,
		`{}`:   false,
		`[5]`:  false,
		`null`: false,
	}
	for raw, ok := range cases {
		body := `{"topic":"Neural Networks","durationMinutes":` + raw + `,"style":"educational","audience":"beginner","tone":"friendly"}`
		var req BriefRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("duration %s: decode error %v", raw, err)
		}
		b, err := Validate(req)
		if ok {
			if err != nil || b.DurationMinutes != 5 {
				t.Fatalf("duration %s: brief %+v, error %v", raw, b, err)
			}
			continue
		}
		if fields := issueFields(t, err); len(fields) != 1 || fields[0] != "durationMinutes" {
			t.Fatalf("duration %s: issues %v", raw, fields)
		}
	}
}

func TestBriefRequest_RejectsUnknownFields(t *testing.T) {
	var req BriefRequest
	if err := json.Unmarshal([]byte(`{"topic":"Neural Networks","durationMinutes":5,"extra":1}`), &req); err == nil {
		t.Fatalf("expected an error for an unknown field")
	}
}

func TestValidate_TopicLength(t *testing.T) {
	req := validRequest()
	req.Topic = "AI"
	if fields := issueFields(t, mustFail(req)); fields[0] != "topic" {
		t.Fatalf("issues %v", fields)
	}

	req.Topic = strings.Repeat("x", models.MaxTopicLength+1)
	if fields := issueFields(t, mustFail(req)); fields[0] != "topic" {
		t.Fatalf("issues %v", fields)
	}

	req.Topic = "<script>alert(1)</script>"
	if fields := issueFields(t, mustFail(req)); fields[0] != "topic" {
		t.Fatalf("markup-only topic accepted, issues %v", fields)
	}
}

func TestValidate_CleansControlCharacters(t *testing.T) {
	cases := map[string]string{
		"Neural\x01Networks":  "Neural Networks",
		"Neural \xffNetworks": "Neural Networks",
		"Backspace\bTopic":    "Backspace Topic",
		"Tab\tand\r\nnewline": "Tab and newline",
		"Odd\uFFFEchar":       "Odd char",
		"Del\x7fete \u0085me": "Del ete me",
	}
	for raw, want := range cases {
		req := validRequest()
		req.Topic = raw
		b, err := Validate(req)
		if err != nil {
			t.Fatalf("topic %q: unexpected error %v", raw, err)
		}
		if b.Topic != want {
			t.Fatalf("topic %q = %q, want %q", raw, b.Topic, want)
		}
	}

	req := validRequest()
	req.Topic = "\x01\x02\x03\x04"
	if fields := issueFields(t, mustFail(req)); len(fields) != 1 || fields[0] != "topic" {
		t.Fatalf("control-only topic: issues %v", fields)
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	req := BriefRequest{
		Topic:           "ok topic",
		DurationMinutes: "5",
		Style:           "vlog",
		Audience:        "expert",
		Tone:            "sarcastic",
		Language:        "not a tag!",
	}
	fields := issueFields(t, mustFail(req))
	want := []string{"style", "audience", "tone", "language"}
	if strings.Join(fields, ",") != strings.Join(want, ",") {
		t.Fatalf("issues %v, want %v", fields, want)
	}
}

func TestFromEnvelope(t *testing.T) {
	raw := "From: producer@example.com\r\n" +
		"To: briefs@example.com\r\n" +
		"Subject: Home Espresso for Beginners\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"Duration: 8 minutes\r\n" +
		"Style: tutorial\r\n" +
		"Audience: beginner\r\n" +
		"Tone: casual\r\n" +
		"Thanks!\r\n"
	env, err := enmime.ReadEnvelope(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}

	req, err := FromEnvelope(env)
	if err != nil {
		t.Fatalf("FromEnvelope: %v", err)
	}
	b, err := Validate(req)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if b.Topic != "Home Espresso for Beginners" || b.DurationMinutes != 8 || b.Style != models.VideoStyleTutorial || b.Tone != models.ToneCasual {
		t.Fatalf("unexpected brief: %+v", b)
	}
}

func mustFail(req BriefRequest) error {
	_, err := Validate(req)
	return err
}
