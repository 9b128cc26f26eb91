package models

import (
	"strings"
	"unicode"
)

// VideoStyle defines the set of allowed narrative styles for a Brief.
type VideoStyle string

const (
	VideoStyleEducational  VideoStyle = "educational"
	VideoStyleStorytelling VideoStyle = "storytelling"
	VideoStyleCinematic    VideoStyle = "cinematic"
	VideoStyleListicle     VideoStyle = "listicle"
	VideoStyleTutorial     VideoStyle = "tutorial"
	VideoStyleNews         VideoStyle = "news"
)

// AudienceLevel defines the set of allowed audience levels for a Brief.
type AudienceLevel string

const (
	AudienceBeginner     AudienceLevel = "beginner"
	AudienceIntermediate AudienceLevel = "intermediate"
	AudienceAdvanced     AudienceLevel = "advanced"
)

// Tone defines the set of allowed narration tones for a Brief.
type Tone string

const (
	ToneFriendly      Tone = "friendly"
	ToneAuthoritative Tone = "authoritative"
	ToneHumorous      Tone = "humorous"
	ToneInspiring     Tone = "inspiring"
	ToneCasual        Tone = "casual"
	ToneFormal        Tone = "formal"
)

const (
	MinTopicLength     = 3
	MaxTopicLength     = 160
	MinDurationMinutes = 2
	MaxDurationMinutes = 20
	DefaultLanguage    = "en"
)

var (
	VideoStyles    = []VideoStyle{VideoStyleEducational, VideoStyleStorytelling, VideoStyleCinematic, VideoStyleListicle, VideoStyleTutorial, VideoStyleNews}
	AudienceLevels = []AudienceLevel{AudienceBeginner, AudienceIntermediate, AudienceAdvanced}
	Tones          = []Tone{ToneFriendly, ToneAuthoritative, ToneHumorous, ToneInspiring, ToneCasual, ToneFormal}
)

// Brief is the validated input describing the desired video.
// It is only ever built by the intake boundary; the pipeline trusts it as-is.
type Brief struct {
	Topic           string        `json:"topic"`
	DurationMinutes int           `json:"durationMinutes"`
	Style           VideoStyle    `json:"style"`
	Audience        AudienceLevel `json:"audience"`
	Tone            Tone          `json:"tone"`
	Language        string        `json:"language,omitempty"`
}

// IsValidVideoStyle checks if the provided string is a valid VideoStyle.
// It returns the typed VideoStyle and true if valid, otherwise an empty VideoStyle and false.
func IsValidVideoStyle(s string) (VideoStyle, bool) {
	vs := VideoStyle(strings.ToLower(s))
	switch vs {
	case VideoStyleEducational, VideoStyleStorytelling, VideoStyleCinematic,
		VideoStyleListicle, VideoStyleTutorial, VideoStyleNews:
		return vs, true
	default:
		return "", false
	}
}

// IsValidAudienceLevel checks if the provided string is a valid AudienceLevel.
func IsValidAudienceLevel(s string) (AudienceLevel, bool) {
	al := AudienceLevel(strings.ToLower(s))
	switch al {
	case AudienceBeginner, AudienceIntermediate, AudienceAdvanced:
		return al, true
	default:
		return "", false
	}
}

// IsValidTone checks if the provided string is a valid Tone.
func IsValidTone(s string) (Tone, bool) {
	t := Tone(strings.ToLower(s))
	switch t {
	case ToneFriendly, ToneAuthoritative, ToneHumorous, ToneInspiring, ToneCasual, ToneFormal:
		return t, true
	default:
		return "", false
	}
}

// CleanText replaces invalid UTF-8, control characters and the noncharacters
// U+FFFE and U+FFFF with spaces, then collapses whitespace runs. The result is
// safe to place in XML character data unchanged.
func CleanText(s string) string {
	s = strings.ToValidUTF8(s, " ")
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == 0xFFFE || r == 0xFFFF {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
