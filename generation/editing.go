package generation

import (
	"fmt"

	"github.com/coreybb/storyboard/models"
)

// shortFormMaxMinutes is the longest listicle cut as a vertical short.
const shortFormMaxMinutes = 3

// aspectRatioFor reads the style table, with one documented override:
// listicles of shortFormMaxMinutes or less are framed vertically.
func aspectRatioFor(b models.Brief) models.AspectRatio {
	if b.Style == models.VideoStyleListicle && b.DurationMinutes <= shortFormMaxMinutes {
		return models.AspectRatioPortrait
	}
	return styleProfiles[b.Style].aspect
}

// buildEditing maps the brief onto editing settings through the lookup tables
// and emits one timeline event per script segment with the segment's own
// start and end.
func buildEditing(d *draft, script models.Script) models.EditingInstructions {
	captionStyle := d.audience.captions
	if d.tone.captionStyle != "" {
		captionStyle = d.tone.captionStyle
	}

	timeline := make([]models.TimelineEvent, 0, len(script.Segments))
	for _, seg := range script.Segments {
		timeline = append(timeline, models.TimelineEvent{
			SegmentID: seg.ID,
			Start:     seg.Start,
			End:       seg.End,
			Video:     videoSteps(seg),
			Audio:     audioSteps(d, seg),
		})
	}

	return models.EditingInstructions{
		FPS:         d.style.fps,
		AspectRatio: aspectRatioFor(d.brief),
		Captions: models.Captions{
			Enabled:  d.style.captionsOn,
			Position: d.style.captionPos,
			Style:    captionStyle,
		},
		Music: models.Music{
			Mood:     d.tone.musicMood,
			VolumeDB: d.style.musicDB,
		},
		Timeline: timeline,
	}
}

func videoSteps(seg models.ScriptSegment) []models.VideoStep {
	switch seg.Type {
	case models.SegmentTypeIntro:
		return []models.VideoStep{
			{Action: models.VideoActionCut, Notes: "cold open straight into the hook"},
			{Action: models.VideoActionOverlay, Notes: "title card: " + seg.OnScreenText},
		}
	case models.SegmentTypeOutro:
		return []models.VideoStep{
			{Action: models.VideoActionHold, Notes: "hold on the recap frame"},
			{Action: models.VideoActionOverlay, Notes: "end screen with subscribe prompt and next-video card"},
		}
	}

	camera := models.VideoStep{Action: models.VideoActionZoom, Notes: "slow push-in on the key visual"}
	if seg.SectionIndex%2 == 1 {
		camera = models.VideoStep{Action: models.VideoActionPan, Notes: "gentle lateral pan across the scene"}
	}
	steps := []models.VideoStep{
		{Action: models.VideoActionCut, Notes: "cut in on the section title"},
	}
	if len(seg.BrollSuggestions) > 0 {
		steps = append(steps, models.VideoStep{Action: models.VideoActionBroll, Notes: seg.BrollSuggestions[0]})
	}
	return append(steps,
		camera,
		models.VideoStep{Action: models.VideoActionOverlay, Notes: "lower third: " + seg.OnScreenText},
	)
}

func audioSteps(d *draft, seg models.ScriptSegment) []models.AudioStep {
	switch seg.Type {
	case models.SegmentTypeIntro:
		return []models.AudioStep{
			{Action: models.AudioActionMusic, Notes: d.tone.musicMood + " bed at full level, then duck for the hook"},
			{Action: models.AudioActionVO, Notes: "read the hook"},
			{Action: models.AudioActionSFX, Notes: seg.SoundDesign[len(seg.SoundDesign)-1]},
		}
	case models.SegmentTypeOutro:
		return []models.AudioStep{
			{Action: models.AudioActionVO, Notes: "closing line and call to action"},
			{Action: models.AudioActionMusic, Notes: "swell to full level, then fade out"},
		}
	}
	return []models.AudioStep{
		{Action: models.AudioActionVO, Notes: fmt.Sprintf("narrate section %d", seg.SectionIndex+1)},
		{Action: models.AudioActionMusic, Notes: fmt.Sprintf("duck to %d dB under narration", d.style.musicDB)},
		{Action: models.AudioActionSFX, Notes: seg.SoundDesign[len(seg.SoundDesign)-1]},
	}
}
