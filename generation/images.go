package generation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/coreybb/storyboard/models"
)

const stockSearchBase = "https://unsplash.com/s/photos/"

// generateImages produces exactly one thumbnail prompt and a gallery with one
// prompt per script segment, in segment order.
func generateImages(d *draft, idea models.Idea, outline []models.OutlineSection, script models.Script) models.Images {
	aspect := aspectRatioFor(d.brief)

	thumbnail := models.ImagePrompt{
		ID:      "img-thumbnail",
		Purpose: models.ImagePurposeThumbnail,
		Prompt: fmt.Sprintf("Eye-catching video thumbnail for \"%s\": one bold central subject that represents %s, %s, %s, strong focal point, clean negative space for a short headline, no text, no logos, %s aspect ratio",
			idea.Title, d.topic, d.style.look, d.tone.thumbAccent, aspect),
		Alt:             fmt.Sprintf("Thumbnail artwork for a video about %s", d.topic),
		SuggestedSource: stockSearchURL(d.topic),
	}

	gallery := make([]models.ImagePrompt, 0, len(script.Segments))
	for i, seg := range script.Segments {
		p := models.ImagePrompt{
			ID:        fmt.Sprintf("img-%02d", i),
			SegmentID: seg.ID,
		}
		switch seg.Type {
		case models.SegmentTypeIntro:
			p.Purpose = models.ImagePurposeBackground
			p.Prompt = fmt.Sprintf("Opening background plate for a video titled \"%s\": %s, subtle texture that supports a title overlay, no text", idea.Title, d.style.look)
			p.Alt = fmt.Sprintf("Opening background for the video about %s", d.topic)
			p.SuggestedSource = stockSearchURL(d.topic + " background")
		case models.SegmentTypeOutro:
			p.Purpose = models.ImagePurposeBackground
			p.Prompt = fmt.Sprintf("End screen background for a video about %s: %s, uncluttered areas for subscribe and next-video cards, no text", d.topic, d.style.look)
			p.Alt = fmt.Sprintf("Closing end-screen background for the video about %s", d.topic)
			p.SuggestedSource = stockSearchURL(d.topic + " abstract")
		default:
			section := outline[seg.SectionIndex]
			p.Purpose = models.ImagePurposeScene
			kind := "Scene illustration"
			if seg.SectionIndex%2 == 1 {
				p.Purpose = models.ImagePurposeBroll
				kind = "B-roll still"
			}
			detail := seg.OnScreenText
			if len(section.Bullets) > 0 {
				detail = lowerFirst(section.Bullets[0])
			}
			p.Prompt = fmt.Sprintf("%s for the section \"%s\" of a video about %s, visual focus: %s, %s, no text", kind, section.Title, d.topic, detail, d.style.look)
			p.Alt = fmt.Sprintf("Illustration for the section \"%s\" of a video about %s", section.Title, d.topic)
			p.SuggestedSource = stockSearchURL(d.topic + " " + stripListNumber(section.Title))
		}
		gallery = append(gallery, p)
	}

	return models.Images{Thumbnail: thumbnail, Gallery: gallery}
}

// stockSearchURL builds a stock-photo search query URL. It is a search hint,
// not a reference to an existing asset.
func stockSearchURL(query string) string {
	words := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return ""
	}
	return stockSearchBase + url.PathEscape(strings.Join(words, "-"))
}

// stripListNumber drops a "#n: " countdown prefix from listicle titles.
func stripListNumber(title string) string {
	if strings.HasPrefix(title, "#") {
		if _, after, ok := strings.Cut(title, ": "); ok {
			return after
		}
	}
	return title
}
