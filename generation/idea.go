package generation

import "github.com/coreybb/storyboard/models"

const (
	maxTitleLength  = 100
	valuePropsCount = 3
)

const (
	saltTitle uint64 = iota + 1
	saltHook
	saltValueProps
	saltIntroBroll
	saltOutroBroll
)

// composeIdea derives the concept: title, hook, angle and value propositions.
func composeIdea(d *draft) models.Idea {
	title := truncateWords(fill(d.v.pick(d.style.titles, saltTitle), d.topicTitle), maxTitleLength)

	props := d.v.pickN(d.audience.valueProps, valuePropsCount, saltValueProps)
	for i, p := range props {
		props[i] = fill(p, d.topic)
	}

	return models.Idea{
		Title:      title,
		Hook:       upperFirst(fill(d.v.pick(d.tone.hooks, saltHook), d.topic)),
		Angle:      fill(d.style.angle, d.topic) + ", " + d.audience.depth + ".",
		ValueProps: props,
	}
}
