package intake

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/language"

	"github.com/coreybb/storyboard/models"
)

// BriefRequest is the raw, unvalidated brief as it arrives from a caller.
// DurationMinutes stays a json.Number so fractional or out-of-range values
// can be reported instead of silently truncated.
type BriefRequest struct {
	Topic           string      `json:"topic"`
	DurationMinutes json.Number `json:"durationMinutes"`
	Style           string      `json:"style"`
	Audience        string      `json:"audience"`
	Tone            string      `json:"tone"`
	Language        string      `json:"language,omitempty"`

	// durationNotNumber records a JSON durationMinutes that was a string,
	// boolean or object rather than a number literal.
	durationNotNumber bool
}

// UnmarshalJSON decodes a brief and rejects unknown fields. A durationMinutes
// given as anything but a JSON number, such as "5", is kept for Validate to
// report instead of being read as a number.
func (r *BriefRequest) UnmarshalJSON(data []byte) error {
	type briefFields BriefRequest
	aux := struct {
		*briefFields
		DurationMinutes json.RawMessage `json:"durationMinutes"`
	}{briefFields: (*briefFields)(r)}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&aux); err != nil {
		return err
	}

	r.DurationMinutes = ""
	r.durationNotNumber = false
	raw := bytes.TrimSpace(aux.DurationMinutes)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var n json.Number
	if raw[0] == '"' || json.Unmarshal(raw, &n) != nil {
		r.durationNotNumber = true
		return nil
	}
	r.DurationMinutes = n
	return nil
}

// FieldIssue names one failing field and why it failed.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed validation.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Field + ": " + issue.Message
	}
	return "invalid brief: " + strings.Join(parts, "; ")
}

var topicPolicy = bluemonday.StripTagsPolicy()

// Validate checks a raw request against the Brief constraints and returns
// the normalized Brief. All failing fields are reported together.
func Validate(req BriefRequest) (models.Brief, error) {
	var issues []FieldIssue
	add := func(field, format string, args ...any) {
		issues = append(issues, FieldIssue{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	topic := normalizeTopic(req.Topic)
	if n := utf8.RuneCountInString(topic); n < models.MinTopicLength || n > models.MaxTopicLength {
		add("topic", "must be between %d and %d characters", models.MinTopicLength, models.MaxTopicLength)
	}

	var minutes int
	if req.durationNotNumber {
		add("durationMinutes", "must be a number, not a string or other JSON value")
	} else if m, err := parseMinutes(req.DurationMinutes); err != nil {
		add("durationMinutes", "%v", err)
	} else {
		minutes = m
	}

	style, ok := models.IsValidVideoStyle(strings.TrimSpace(req.Style))
	if !ok {
		add("style", "must be one of %s", joinValues(models.VideoStyles))
	}
	audience, ok := models.IsValidAudienceLevel(strings.TrimSpace(req.Audience))
	if !ok {
		add("audience", "must be one of %s", joinValues(models.AudienceLevels))
	}
	tone, ok := models.IsValidTone(strings.TrimSpace(req.Tone))
	if !ok {
		add("tone", "must be one of %s", joinValues(models.Tones))
	}

	lang, err := normalizeLanguage(req.Language)
	if err != nil {
		add("language", "%v", err)
	}

	if len(issues) > 0 {
		return models.Brief{}, &ValidationError{Issues: issues}
	}
	return models.Brief{
		Topic:           topic,
		DurationMinutes: minutes,
		Style:           style,
		Audience:        audience,
		Tone:            tone,
		Language:        lang,
	}, nil
}

// normalizeTopic drops any markup and control characters and collapses
// whitespace.
func normalizeTopic(raw string) string {
	plain := topicPolicy.Sanitize(strings.ToValidUTF8(raw, " "))
	return models.CleanText(html.UnescapeString(plain))
}

func parseMinutes(raw json.Number) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("is required")
	}
	f, err := raw.Float64()
	if err != nil || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, fmt.Errorf("must be a whole number of minutes")
	}
	if f < models.MinDurationMinutes || f > models.MaxDurationMinutes {
		return 0, fmt.Errorf("must be between %d and %d", models.MinDurationMinutes, models.MaxDurationMinutes)
	}
	return int(f), nil
}

// normalizeLanguage canonicalizes a BCP-47 tag, defaulting to English.
func normalizeLanguage(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.DefaultLanguage, nil
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%q is not a valid language tag", raw)
	}
	return tag.String(), nil
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
