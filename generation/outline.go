package generation

import (
	"fmt"

	"github.com/coreybb/storyboard/models"
	"github.com/coreybb/storyboard/timecode"
)

const (
	secondsPerSection = 75
	minSections       = 2
	maxSections       = 12
	bulletsPerSection = 3
	saltBulletsBase   = 100
)

// sectionCount scales with duration at roughly one section per 75 seconds,
// clamped to [minSections, maxSections] and to the number of sections that
// can each receive at least minSectionMs once intro and outro are reserved.
func sectionCount(durationMinutes int) int {
	total := timecode.FromMinutes(durationMinutes)
	totalSeconds := int(total / 1000)
	n := (totalSeconds + secondsPerSection/2) / secondsPerSection
	if n < minSections {
		n = minSections
	}
	if n > maxSections {
		n = maxSections
	}
	intro, outro := bookendLengths(total)
	if fit := int((total - intro - outro) / minSectionMs); n > fit {
		n = fit
	}
	if n < minSections {
		n = minSections
	}
	return n
}

// buildOutline derives the ordered narrative sections. The final section is
// always the style's closing beat.
func buildOutline(d *draft) []models.OutlineSection {
	n := sectionCount(d.brief.DurationMinutes)
	sections := make([]models.OutlineSection, 0, n)
	for i := 0; i < n; i++ {
		beat := d.style.closingBeat
		if i < n-1 {
			beat = d.style.beats[i]
		}
		title := fill(beat, d.topicTitle)
		if d.brief.Style == models.VideoStyleListicle {
			title = fmt.Sprintf("#%d: %s", n-i, title)
		}

		bullets := d.v.pickN(d.audience.bullets, bulletsPerSection, saltBulletsBase+uint64(i))
		for j, b := range bullets {
			bullets[j] = upperFirst(fill(b, d.topic))
		}

		sections = append(sections, models.OutlineSection{
			ID:      fmt.Sprintf("section-%02d", i+1),
			Title:   title,
			Bullets: bullets,
		})
	}
	return sections
}
