package generation

import (
	"encoding/xml"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/coreybb/storyboard/models"
)

const (
	ssmlNamespace   = "http://www.w3.org/2001/10/synthesis"
	plainSeparator  = "\n\n"
	markNameDivider = "@"
)

// renderVoiceover joins segment narration into plain text and an SSML document
// carrying the same words plus prosody, emphasis, pauses between segments and
// one <mark> per segment named "<segmentID>@<start>".
func renderVoiceover(d *draft, script models.Script) models.Voiceover {
	lines := make([]string, 0, len(script.Segments))
	for _, seg := range script.Segments {
		lines = append(lines, seg.Voiceover)
	}

	lang := languageOrDefault(d.brief.Language)

	var b strings.Builder
	fmt.Fprintf(&b, "<speak version=\"1.1\" xmlns=\"%s\" xml:lang=\"%s\">\n", ssmlNamespace, escapeXML(lang))
	fmt.Fprintf(&b, "<prosody rate=\"%s\">\n", d.tone.rate)
	for i, seg := range script.Segments {
		if i > 0 {
			fmt.Fprintf(&b, "<break time=\"%dms\"/>\n", d.tone.breakMs)
		}
		fmt.Fprintf(&b, "<mark name=\"%s\"/>\n", escapeXML(seg.ID+markNameDivider+seg.Start))

		lead, rest := splitFirstSentence(seg.Voiceover)
		fmt.Fprintf(&b, "<p><emphasis level=\"%s\">%s</emphasis>", d.tone.emphasis, escapeXML(lead))
		if rest != "" {
			b.WriteString(" " + escapeXML(rest))
		}
		b.WriteString("</p>\n")
	}
	b.WriteString("</prosody>\n</speak>")

	return models.Voiceover{
		Language: lang,
		Plain:    strings.Join(lines, plainSeparator),
		SSML:     b.String(),
	}
}

// splitFirstSentence returns the first sentence and the remainder, both trimmed.
func splitFirstSentence(text string) (string, string) {
	text = strings.TrimSpace(text)
	cut := -1
	for _, end := range []string{". ", "! ", "? "} {
		if i := strings.Index(text, end); i >= 0 && (cut < 0 || i < cut) {
			cut = i
		}
	}
	if cut < 0 {
		return text, ""
	}
	return text[:cut+1], strings.TrimSpace(text[cut+1:])
}

func escapeXML(s string) string {
	var b strings.Builder
	// Writing to a strings.Builder cannot fail.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// StripMarkup removes every SSML annotation and returns the narration text
// with whitespace collapsed. It is the inverse used to check that the SSML
// form adds no words to the plain narration.
func StripMarkup(ssml string) string {
	p := bluemonday.StripTagsPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return NormalizeSpace(html.UnescapeString(p.Sanitize(ssml)))
}

// NormalizeSpace collapses all whitespace runs to single spaces.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
