package generation

import (
	"fmt"
	"strings"

	"github.com/coreybb/storyboard/models"
	"github.com/coreybb/storyboard/timecode"
)

const (
	maxBookendMs   int64 = 15000
	bookendDivisor int64 = 10
	minSectionMs   int64 = 30000
)

const (
	saltLeadBase     = 200
	saltSectionBroll = 300
	saltSectionSting = 400
	brollPerSegment  = 2
)

var bulletConnectives = []string{"First, we'll", "Then we'll", "Finally, we'll"}

// bookendLengths returns the intro and outro lengths: each min(15s, 10% of total).
func bookendLengths(totalMs int64) (intro, outro int64) {
	l := totalMs / bookendDivisor
	if l > maxBookendMs {
		l = maxBookendMs
	}
	return l, l
}

// allocation is the integer-millisecond partition of the total duration.
type allocation struct {
	total    int64
	intro    int64
	sections []int64
	outro    int64
}

// allocate splits totalMs into intro, n equal sections and outro. The
// remainder of the equal split is handed out one millisecond at a time to the
// first sections, so the parts always sum to totalMs exactly.
func allocate(totalMs int64, n int) allocation {
	intro, outro := bookendLengths(totalMs)
	body := totalMs - intro - outro
	base := body / int64(n)
	extra := body % int64(n)

	sections := make([]int64, n)
	for i := range sections {
		sections[i] = base
		if int64(i) < extra {
			sections[i]++
		}
	}
	return allocation{total: totalMs, intro: intro, sections: sections, outro: outro}
}

// bounds returns [start, end) offsets for every segment in order
// intro, sections..., outro. The last end is pinned to the total.
func (a allocation) bounds() [][2]int64 {
	lengths := make([]int64, 0, len(a.sections)+2)
	lengths = append(lengths, a.intro)
	lengths = append(lengths, a.sections...)
	lengths = append(lengths, a.outro)

	out := make([][2]int64, len(lengths))
	var cursor int64
	for i, l := range lengths {
		out[i] = [2]int64{cursor, cursor + l}
		cursor += l
	}
	out[len(out)-1][1] = a.total
	return out
}

// composeScript expands the outline into timed segments covering the whole
// requested duration.
func composeScript(d *draft, idea models.Idea, outline []models.OutlineSection) models.Script {
	total := timecode.FromMinutes(d.brief.DurationMinutes)
	spans := allocate(total, len(outline)).bounds()

	segments := make([]models.ScriptSegment, 0, len(spans))
	segments = append(segments, introSegment(d, idea, spans[0]))
	for i, section := range outline {
		segments = append(segments, sectionSegment(d, i, section, spans[i+1]))
	}
	segments = append(segments, outroSegment(d, idea, len(spans)-1, spans[len(spans)-1]))

	return models.Script{
		Segments: segments,
		Duration: timecode.Format(total),
	}
}

func segmentID(position int, kind models.SegmentType) string {
	return fmt.Sprintf("seg-%02d-%s", position, kind)
}

func introSegment(d *draft, idea models.Idea, span [2]int64) models.ScriptSegment {
	onScreen := idea.Title
	if d.style.introOnScreen != "" {
		onScreen = d.style.introOnScreen + ": " + idea.Title
	}
	broll := fillAll(d.v.pickN(d.style.broll, brollPerSegment, saltIntroBroll), d.topic)
	broll = append(broll, "title card: "+idea.Title)

	return models.ScriptSegment{
		ID:               segmentID(0, models.SegmentTypeIntro),
		Type:             models.SegmentTypeIntro,
		SectionIndex:     models.IntroSectionIndex,
		Start:            timecode.Format(span[0]),
		End:              timecode.Format(span[1]),
		OnScreenText:     onScreen,
		Voiceover:        idea.Hook + " This is " + lowerFirst(idea.Angle),
		BrollSuggestions: broll,
		SoundDesign: []string{
			d.tone.musicMood + " music bed fades in",
			d.tone.stings[0],
		},
	}
}

func sectionSegment(d *draft, index int, section models.OutlineSection, span [2]int64) models.ScriptSegment {
	salt := uint64(index)
	lead := fill(d.v.pick(d.tone.leads, saltLeadBase+salt), section.Title)

	var vo strings.Builder
	vo.WriteString(upperFirst(lead))
	for i, bullet := range section.Bullets {
		c := min(i, len(bulletConnectives)-1)
		if i == len(section.Bullets)-1 {
			c = len(bulletConnectives) - 1
		}
		fmt.Fprintf(&vo, " %s %s.", bulletConnectives[c], lowerFirst(bullet))
	}

	broll := fillAll(d.v.pickN(d.style.broll, brollPerSegment, saltSectionBroll+salt), d.topic)
	if len(section.Bullets) > 0 {
		broll = append(broll, "cutaway illustrating: "+lowerFirst(section.Bullets[0]))
	}

	return models.ScriptSegment{
		ID:               segmentID(index+1, models.SegmentTypeSection),
		Type:             models.SegmentTypeSection,
		SectionIndex:     index,
		Start:            timecode.Format(span[0]),
		End:              timecode.Format(span[1]),
		OnScreenText:     section.Title,
		Voiceover:        vo.String(),
		BrollSuggestions: broll,
		SoundDesign: []string{
			"music ducked under narration",
			d.v.pick(d.tone.stings, saltSectionSting+salt),
		},
	}
}

func outroSegment(d *draft, idea models.Idea, position int, span [2]int64) models.ScriptSegment {
	return models.ScriptSegment{
		ID:           segmentID(position, models.SegmentTypeOutro),
		Type:         models.SegmentTypeOutro,
		SectionIndex: models.OutroSectionIndex,
		Start:        timecode.Format(span[0]),
		End:          timecode.Format(span[1]),
		OnScreenText: "Thanks for watching",
		Voiceover:    upperFirst(fill(d.tone.outroLine, d.topic)) + " " + d.tone.cta,
		BrollSuggestions: []string{
			"recap montage of earlier shots",
			"end screen with subscribe prompt",
			"title card: " + idea.Title,
		},
		SoundDesign: []string{
			d.tone.musicMood + " music swells to full level",
			"fade to silence over the final second",
		},
	}
}

func fillAll(templates []string, value string) []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = fill(t, value)
	}
	return out
}
