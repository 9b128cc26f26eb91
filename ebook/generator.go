package ebook

import (
	"bytes"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	epub "github.com/go-shiori/go-epub"
	"github.com/microcosm-cc/bluemonday"

	"github.com/coreybb/storyboard/models"
)

const defaultAuthor = "Storyboard"

// chapter is one EPUB section of a production package.
type chapter struct {
	title string
	file  string
	body  func(r *models.GenerationResult) string
}

var chapters = []chapter{
	{"Idea", "idea.xhtml", ideaHTML},
	{"Outline", "outline.xhtml", outlineHTML},
	{"Script", "script.xhtml", scriptHTML},
	{"Voiceover", "voiceover.xhtml", voiceoverHTML},
	{"Image Prompts", "images.xhtml", imagesHTML},
	{"Editing", "editing.xhtml", editingHTML},
	{"Metadata", "metadata.xhtml", metadataHTML},
}

// PackageGenerator renders a production package as an EPUB handbook, one
// chapter per artifact.
type PackageGenerator struct {
	policy *bluemonday.Policy
}

func NewPackageGenerator() *PackageGenerator {
	log.Println("INFO (PackageGenerator): Using go-epub for EPUB generation")
	return &PackageGenerator{policy: bluemonday.UGCPolicy()}
}

// Render builds the EPUB in memory and returns its bytes.
func (pg *PackageGenerator) Render(result *models.GenerationResult, packageID string) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("generation result cannot be nil")
	}
	if packageID == "" {
		return nil, fmt.Errorf("package ID cannot be empty")
	}

	startTime := time.Now()

	title := result.Metadata.Title
	if title == "" {
		title = result.Idea.Title
	}

	e, err := epub.NewEpub(title)
	if err != nil {
		return nil, fmt.Errorf("failed to create epub: %w", err)
	}
	e.SetAuthor(defaultAuthor)
	e.SetIdentifier("urn:uuid:" + packageID)
	e.SetDescription(result.Idea.Hook)
	lang := result.Voiceover.Language
	if lang == "" {
		lang = models.DefaultLanguage
	}
	e.SetLang(lang)

	for _, ch := range chapters {
		body := "<h1>" + html.EscapeString(ch.title) + "</h1>" + pg.policy.Sanitize(ch.body(result))
		if _, err := e.AddSection(body, ch.title, ch.file, ""); err != nil {
			return nil, fmt.Errorf("failed to add %s section to epub: %w", ch.title, err)
		}
	}

	var buf bytes.Buffer
	if _, err := e.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write epub: %w", err)
	}

	log.Printf("INFO (PackageGenerator): Rendered EPUB for package %s (Size: %d bytes, Took: %s)",
		packageID, buf.Len(), time.Since(startTime))
	return buf.Bytes(), nil
}

func esc(s string) string {
	return html.EscapeString(s)
}

func list(tag string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<" + tag + ">")
	for _, it := range items {
		b.WriteString("<li>" + esc(it) + "</li>")
	}
	b.WriteString("</" + tag + ">")
	return b.String()
}

func ideaHTML(r *models.GenerationResult) string {
	return fmt.Sprintf("<h2>%s</h2><p><b>Hook:</b> %s</p><p><b>Angle:</b> %s</p><h3>Value</h3>%s",
		esc(r.Idea.Title), esc(r.Idea.Hook), esc(r.Idea.Angle), list("ul", r.Idea.ValueProps))
}

func outlineHTML(r *models.GenerationResult) string {
	var b strings.Builder
	b.WriteString("<ol>")
	for _, s := range r.Outline {
		b.WriteString("<li><b>" + esc(s.Title) + "</b>" + list("ul", s.Bullets) + "</li>")
	}
	b.WriteString("</ol>")
	return b.String()
}

func scriptHTML(r *models.GenerationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Total duration: %s</p>", esc(r.Script.Duration))
	for _, seg := range r.Script.Segments {
		fmt.Fprintf(&b, "<h2>%s to %s: %s</h2>", esc(seg.Start), esc(seg.End), esc(seg.OnScreenText))
		fmt.Fprintf(&b, "<p>%s</p>", esc(seg.Voiceover))
		b.WriteString("<h3>B-roll</h3>" + list("ul", seg.BrollSuggestions))
		b.WriteString("<h3>Sound</h3>" + list("ul", seg.SoundDesign))
	}
	return b.String()
}

func voiceoverHTML(r *models.GenerationResult) string {
	var b strings.Builder
	for _, para := range strings.Split(r.Voiceover.Plain, "\n\n") {
		b.WriteString("<p>" + esc(para) + "</p>")
	}
	b.WriteString("<h2>SSML</h2><pre>" + esc(r.Voiceover.SSML) + "</pre>")
	return b.String()
}

func imagePromptHTML(p models.ImagePrompt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h3>%s (%s)</h3><p>%s</p><p><i>Alt:</i> %s</p>", esc(p.ID), esc(string(p.Purpose)), esc(p.Prompt), esc(p.Alt))
	if p.SuggestedSource != "" {
		fmt.Fprintf(&b, `<p><a href="%s">Stock search</a></p>`, esc(p.SuggestedSource))
	}
	return b.String()
}

func imagesHTML(r *models.GenerationResult) string {
	var b strings.Builder
	b.WriteString("<h2>Thumbnail</h2>" + imagePromptHTML(r.Images.Thumbnail))
	b.WriteString("<h2>Gallery</h2>")
	for _, p := range r.Images.Gallery {
		b.WriteString(imagePromptHTML(p))
	}
	return b.String()
}

func editingHTML(r *models.GenerationResult) string {
	ed := r.Editing
	var b strings.Builder
	fmt.Fprintf(&b, "<p>%d fps, %s, captions %t (%s, %s), music %s at %d dB</p>",
		ed.FPS, esc(string(ed.AspectRatio)), ed.Captions.Enabled, esc(string(ed.Captions.Position)),
		esc(string(ed.Captions.Style)), esc(ed.Music.Mood), ed.Music.VolumeDB)
	b.WriteString("<table><tr><th>Segment</th><th>Start</th><th>End</th><th>Video</th><th>Audio</th></tr>")
	for _, ev := range ed.Timeline {
		video := make([]string, len(ev.Video))
		for i, v := range ev.Video {
			video[i] = string(v.Action) + ": " + v.Notes
		}
		audio := make([]string, len(ev.Audio))
		for i, a := range ev.Audio {
			audio[i] = string(a.Action) + ": " + a.Notes
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			esc(ev.SegmentID), esc(ev.Start), esc(ev.End), list("ul", video), list("ul", audio))
	}
	b.WriteString("</table>")
	return b.String()
}

func metadataHTML(r *models.GenerationResult) string {
	m := r.Metadata
	chapterLines := make([]string, len(m.Chapters))
	for i, c := range m.Chapters {
		chapterLines[i] = c.Time + " " + c.Title
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2><pre>%s</pre>", esc(m.Title), esc(m.Description))
	b.WriteString("<h3>Tags</h3><p>" + esc(strings.Join(m.Tags, ", ")) + "</p>")
	b.WriteString("<h3>Keywords</h3><p>" + esc(strings.Join(m.Keywords, ", ")) + "</p>")
	b.WriteString("<h3>Chapters</h3>" + list("ol", chapterLines))
	fmt.Fprintf(&b, "<h3>Thumbnail</h3><p><b>%s</b></p><p>%s</p>", esc(m.ThumbnailText), esc(m.ThumbnailPrompt))
	b.WriteString("<h3>Upload checklist</h3>" + list("ol", m.UploadChecklist))
	return b.String()
}
