package generation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/coreybb/storyboard/models"
	"github.com/coreybb/storyboard/timecode"
)

const (
	maxTags            = 15
	thumbnailTextWords = 4
	hashtagCount       = 3
)

// Words too common to be useful as tags.
var tagStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "for": {}, "from": {}, "how": {}, "in": {},
	"is": {}, "it": {}, "of": {}, "on": {}, "or": {}, "the": {}, "to": {}, "what": {},
	"why": {}, "with": {}, "your": {}, "you": {},
}

// composeMetadata derives publish metadata. Chapters come from the script's
// segment starts and nothing else.
func composeMetadata(d *draft, idea models.Idea, script models.Script, images models.Images) (models.Metadata, error) {
	chapters, err := chaptersFromScript(script)
	if err != nil {
		return models.Metadata{}, err
	}

	tags := buildTags(d)
	checklist := make([]string, len(uploadChecklist))
	for i, item := range uploadChecklist {
		checklist[i] = fill(item, idea.Title)
	}

	return models.Metadata{
		Title:           idea.Title,
		Description:     buildDescription(idea, chapters, tags),
		Tags:            tags,
		Keywords:        buildKeywords(d),
		Chapters:        chapters,
		ThumbnailText:   thumbnailText(d, idea.Title),
		ThumbnailPrompt: images.Thumbnail.Prompt,
		UploadChecklist: checklist,
	}, nil
}

func chaptersFromScript(script models.Script) ([]models.Chapter, error) {
	chapters := make([]models.Chapter, 0, len(script.Segments))
	for _, seg := range script.Segments {
		start, err := timecode.Parse(seg.Start)
		if err != nil {
			return nil, fmt.Errorf("segment %s start: %w", seg.ID, err)
		}
		chapters = append(chapters, models.Chapter{
			Time:  timecode.Chapter(start),
			Title: chapterTitle(seg),
		})
	}
	return chapters, nil
}

func chapterTitle(seg models.ScriptSegment) string {
	switch seg.Type {
	case models.SegmentTypeIntro:
		return "Intro"
	case models.SegmentTypeOutro:
		return "Wrap-up"
	default:
		return seg.OnScreenText
	}
}

func buildDescription(idea models.Idea, chapters []models.Chapter, tags []string) string {
	var b strings.Builder
	b.WriteString(idea.Hook)
	b.WriteString("\n\n")
	b.WriteString(idea.Angle)
	b.WriteString("\n\nIn this video you will:\n")
	for _, vp := range idea.ValueProps {
		b.WriteString("- " + vp + "\n")
	}
	b.WriteString("\nChapters:\n")
	for _, ch := range chapters {
		b.WriteString(ch.Time + " " + ch.Title + "\n")
	}

	hashtags := make([]string, 0, hashtagCount)
	for _, t := range tags {
		if len(hashtags) == hashtagCount {
			break
		}
		hashtags = append(hashtags, "#"+strings.ReplaceAll(t, " ", ""))
	}
	if len(hashtags) > 0 {
		b.WriteString("\n" + strings.Join(hashtags, " "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// buildTags lower-cases and de-duplicates topic tokens plus the brief's
// style, audience and tone vocabulary.
func buildTags(d *draft) []string {
	candidates := []string{strings.ToLower(d.topic)}
	candidates = append(candidates, topicTokens(d.topic)...)
	candidates = append(candidates,
		string(d.brief.Style),
		string(d.brief.Style)+" video",
		strings.ToLower(d.audience.label),
		strings.ToLower(d.topic)+" for "+strings.ToLower(d.audience.label)+"s",
		string(d.brief.Tone),
	)
	return dedupeFold(candidates, maxTags)
}

func buildKeywords(d *draft) []string {
	topic := strings.ToLower(d.topic)
	return dedupeFold([]string{
		topic,
		topic + " explained",
		topic + " " + string(d.brief.Style),
		"learn " + topic,
		strings.ToLower(d.audience.label) + " " + topic,
	}, 0)
}

func topicTokens(topic string) []string {
	words := strings.FieldsFunc(strings.ToLower(topic), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := tagStopwords[w]; stop || len([]rune(w)) < 2 {
			continue
		}
		out = append(out, w)
	}
	return out
}

// dedupeFold keeps the first occurrence of each case-insensitively equal,
// non-empty value. limit <= 0 means no limit.
func dedupeFold(values []string, limit int) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func thumbnailText(d *draft, title string) string {
	words := strings.Fields(strings.Trim(title, ":"))
	if len(words) > thumbnailTextWords {
		words = words[:thumbnailTextWords]
	}
	return d.upper(strings.TrimRight(strings.Join(words, " "), ":,"))
}
