package generation

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/coreybb/storyboard/models"
	"github.com/coreybb/storyboard/timecode"
)

// InternalInconsistencyError reports a production package whose artifacts
// disagree with each other. It is never expected for a validated brief.
type InternalInconsistencyError struct {
	Check  string
	Detail string
}

func (e *InternalInconsistencyError) Error() string {
	return fmt.Sprintf("internal inconsistency (%s): %s", e.Check, e.Detail)
}

func inconsistent(check, format string, args ...any) error {
	return &InternalInconsistencyError{Check: check, Detail: fmt.Sprintf(format, args...)}
}

// Verify checks the cross-artifact invariants of a generated package: the
// script covers the requested duration without gaps, and every derived
// artifact (timeline, chapters, gallery, SSML marks) lines up with it.
func Verify(r *models.GenerationResult) error {
	checks := []func(*models.GenerationResult) error{
		verifyScript,
		verifyTimeline,
		verifyChapters,
		verifyImages,
		verifyVoiceover,
		verifyTags,
	}
	for _, check := range checks {
		if err := check(r); err != nil {
			return err
		}
	}
	return nil
}

func verifyScript(r *models.GenerationResult) error {
	segs := r.Script.Segments
	total := timecode.FromMinutes(r.Input.DurationMinutes)

	if r.Script.Duration != timecode.Format(total) {
		return inconsistent("duration", "script duration %s, want %s", r.Script.Duration, timecode.Format(total))
	}
	if len(segs) != len(r.Outline)+2 {
		return inconsistent("segments", "%d segments for %d outline sections", len(segs), len(r.Outline))
	}

	var cursor int64
	for i, seg := range segs {
		wantType, wantIndex := models.SegmentTypeSection, i-1
		switch i {
		case 0:
			wantType, wantIndex = models.SegmentTypeIntro, models.IntroSectionIndex
		case len(segs) - 1:
			wantType, wantIndex = models.SegmentTypeOutro, models.OutroSectionIndex
		}
		if seg.Type != wantType || seg.SectionIndex != wantIndex {
			return inconsistent("order", "segment %d is %s/%d, want %s/%d", i, seg.Type, seg.SectionIndex, wantType, wantIndex)
		}

		start, err := timecode.Parse(seg.Start)
		if err != nil {
			return inconsistent("timecode", "segment %s: %v", seg.ID, err)
		}
		end, err := timecode.Parse(seg.End)
		if err != nil {
			return inconsistent("timecode", "segment %s: %v", seg.ID, err)
		}
		if start != cursor {
			return inconsistent("contiguity", "segment %s starts at %s, previous ended at %s", seg.ID, seg.Start, timecode.Format(cursor))
		}
		if end <= start {
			return inconsistent("contiguity", "segment %s is empty or reversed", seg.ID)
		}
		cursor = end
	}
	if cursor != total {
		return inconsistent("duration", "last segment ends at %s, want %s", timecode.Format(cursor), timecode.Format(total))
	}
	return nil
}

func verifyTimeline(r *models.GenerationResult) error {
	events := r.Editing.Timeline
	if len(events) != len(r.Script.Segments) {
		return inconsistent("timeline", "%d events for %d segments", len(events), len(r.Script.Segments))
	}
	for i, ev := range events {
		seg := r.Script.Segments[i]
		if ev.SegmentID != seg.ID || ev.Start != seg.Start || ev.End != seg.End {
			return inconsistent("timeline", "event %d (%s %s-%s) does not match segment %s %s-%s",
				i, ev.SegmentID, ev.Start, ev.End, seg.ID, seg.Start, seg.End)
		}
		if len(ev.Video) == 0 || len(ev.Audio) == 0 {
			return inconsistent("timeline", "event %d has no video or audio actions", i)
		}
	}
	return nil
}

func verifyChapters(r *models.GenerationResult) error {
	chapters := r.Metadata.Chapters
	if len(chapters) != len(r.Script.Segments) {
		return inconsistent("chapters", "%d chapters for %d segments", len(chapters), len(r.Script.Segments))
	}
	prev := int64(-1)
	for i, ch := range chapters {
		start, err := timecode.Parse(r.Script.Segments[i].Start)
		if err != nil {
			return inconsistent("chapters", "segment %d: %v", i, err)
		}
		if want := timecode.Chapter(start); ch.Time != want {
			return inconsistent("chapters", "chapter %d at %s, segment starts at %s", i, ch.Time, want)
		}
		sec := start / 1000
		if sec <= prev {
			return inconsistent("chapters", "chapter %d at %s is not after the previous chapter", i, ch.Time)
		}
		prev = sec
	}
	if chapters[0].Time != "0:00" {
		return inconsistent("chapters", "first chapter at %s", chapters[0].Time)
	}
	return nil
}

func verifyImages(r *models.GenerationResult) error {
	if r.Images.Thumbnail.Purpose != models.ImagePurposeThumbnail {
		return inconsistent("images", "thumbnail has purpose %s", r.Images.Thumbnail.Purpose)
	}
	if len(r.Images.Gallery) != len(r.Script.Segments) {
		return inconsistent("images", "%d gallery prompts for %d segments", len(r.Images.Gallery), len(r.Script.Segments))
	}
	for i, p := range r.Images.Gallery {
		if p.Purpose == models.ImagePurposeThumbnail {
			return inconsistent("images", "gallery prompt %s is a second thumbnail", p.ID)
		}
		if p.SegmentID != r.Script.Segments[i].ID {
			return inconsistent("images", "gallery prompt %d pairs with %s, want %s", i, p.SegmentID, r.Script.Segments[i].ID)
		}
		if p.Alt == "" || p.Alt == p.Prompt {
			return inconsistent("images", "gallery prompt %s has no independent alt text", p.ID)
		}
	}
	if r.Metadata.ThumbnailPrompt != r.Images.Thumbnail.Prompt {
		return inconsistent("images", "metadata thumbnail prompt differs from the thumbnail image prompt")
	}
	return nil
}

func verifyVoiceover(r *models.GenerationResult) error {
	marks, err := ssmlMarks(r.Voiceover.SSML)
	if err != nil {
		return inconsistent("ssml", "not well-formed: %v", err)
	}
	if len(marks) != len(r.Script.Segments) {
		return inconsistent("ssml", "%d marks for %d segments", len(marks), len(r.Script.Segments))
	}
	for i, seg := range r.Script.Segments {
		if want := seg.ID + markNameDivider + seg.Start; marks[i] != want {
			return inconsistent("ssml", "mark %d is %q, want %q", i, marks[i], want)
		}
	}
	if got, want := StripMarkup(r.Voiceover.SSML), NormalizeSpace(r.Voiceover.Plain); got != want {
		return inconsistent("ssml", "stripped SSML text differs from the plain narration")
	}
	return nil
}

// ssmlMarks parses the document and returns the mark names in order.
func ssmlMarks(ssml string) ([]string, error) {
	dec := xml.NewDecoder(strings.NewReader(ssml))
	var marks []string
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return marks, nil
		}
		if err != nil {
			return nil, err
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "mark" {
			continue
		}
		for _, attr := range el.Attr {
			if attr.Name.Local == "name" {
				marks = append(marks, attr.Value)
			}
		}
	}
}

func verifyTags(r *models.GenerationResult) error {
	seen := make(map[string]struct{}, len(r.Metadata.Tags))
	for _, t := range r.Metadata.Tags {
		key := strings.ToLower(t)
		if _, dup := seen[key]; dup {
			return inconsistent("tags", "duplicate tag %q", t)
		}
		seen[key] = struct{}{}
	}
	return nil
}
