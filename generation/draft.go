package generation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/coreybb/storyboard/models"
)

// draft carries everything a single pipeline run derives up front from the
// brief. It is allocated per call and never shared.
type draft struct {
	brief    models.Brief
	style    styleProfile
	tone     toneProfile
	audience audienceProfile
	v        variety
	lang     language.Tag

	topic      string // as written by the user
	topicTitle string // title cased for headings
}

func newDraft(b models.Brief) *draft {
	lang := language.Make(languageOrDefault(b.Language))
	topic := models.CleanText(b.Topic)
	return &draft{
		brief:      b,
		style:      styleProfiles[b.Style],
		tone:       toneProfiles[b.Tone],
		audience:   audienceProfiles[b.Audience],
		v:          newVariety(b),
		lang:       lang,
		topic:      topic,
		topicTitle: cases.Title(lang, cases.NoLower).String(topic),
	}
}

func languageOrDefault(tag string) string {
	if tag == "" {
		return models.DefaultLanguage
	}
	return tag
}

func (d *draft) upper(s string) string {
	return cases.Upper(d.lang).String(s)
}

// fill substitutes every %s placeholder. Templates may omit the placeholder.
func fill(template, value string) string {
	return strings.ReplaceAll(template, "%s", value)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// truncateWords shortens s to at most max runes, cutting on a word boundary.
func truncateWords(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:max])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,:;-")
}
