package intake

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jhillyerd/enmime"
)

// Body keys recognized in an emailed brief, one "key: value" per line.
var envelopeKeys = map[string]func(*BriefRequest, string){
	"duration":        setDuration,
	"durationminutes": setDuration,
	"minutes":         setDuration,
	"style":           func(r *BriefRequest, v string) { r.Style = v },
	"audience":        func(r *BriefRequest, v string) { r.Audience = v },
	"tone":            func(r *BriefRequest, v string) { r.Tone = v },
	"language":        func(r *BriefRequest, v string) { r.Language = v },
	"lang":            func(r *BriefRequest, v string) { r.Language = v },
	"topic":           func(r *BriefRequest, v string) { r.Topic = v },
}

// setDuration keeps the leading number so "5 minutes" reads as 5.
func setDuration(r *BriefRequest, v string) {
	r.DurationMinutes = json.Number(strings.Fields(v)[0])
}

// FromEnvelope reads a brief out of a parsed email. The subject is the topic
// unless the body sets one; the plain-text body (or the HTML body stripped of
// markup) carries the remaining fields. Unknown lines are ignored.
func FromEnvelope(env *enmime.Envelope) (BriefRequest, error) {
	if env == nil {
		return BriefRequest{}, fmt.Errorf("email envelope is nil")
	}

	req := BriefRequest{Topic: env.GetHeader("Subject")}

	body := env.Text
	if strings.TrimSpace(body) == "" && env.HTML != "" {
		body = topicPolicy.Sanitize(strings.NewReplacer("<br>", "\n", "<br/>", "\n", "</p>", "\n", "</div>", "\n").Replace(env.HTML))
	}

	scanner := bufio.NewScanner(strings.NewReader(body))
	matched := 0
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if set, known := envelopeKeys[key]; known && value != "" {
			set(&req, value)
			matched++
		}
	}
	if err := scanner.Err(); err != nil {
		return BriefRequest{}, fmt.Errorf("failed to read email body: %w", err)
	}

	log.Printf("INFO (FromEnvelope): Read %d brief fields from email body. Subject: '%s'", matched, req.Topic)
	return req, nil
}
