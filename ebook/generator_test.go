package ebook

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/coreybb/storyboard/generation"
	"github.com/coreybb/storyboard/models"
)

func TestPackageGenerator_Render(t *testing.T) {
	result, err := generation.NewGenerationPipeline().Generate(models.Brief{
		Topic:           "Sourdough <Starters> & Levain",
		DurationMinutes: 4,
		Style:           models.VideoStyleTutorial,
		Audience:        models.AudienceIntermediate,
		Tone:            models.ToneCasual,
		Language:        "en",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := NewPackageGenerator().Render(result, "3f1c2e9a-0000-5000-8000-000000000001")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}
	if zr.File[0].Name != "mimetype" {
		t.Fatalf("first entry = %q, want mimetype", zr.File[0].Name)
	}

	found := map[string]string{}
	for _, f := range zr.File {
		for _, ch := range chapters {
			if strings.HasSuffix(f.Name, ch.file) {
				rc, err := f.Open()
				if err != nil {
					t.Fatal(err)
				}
				body, _ := io.ReadAll(rc)
				rc.Close()
				found[ch.file] = string(body)
			}
		}
	}
	if len(found) != len(chapters) {
		t.Fatalf("found %d chapter files, want %d", len(found), len(chapters))
	}
	if !strings.Contains(found["script.xhtml"], result.Script.Segments[0].Start) {
		t.Fatalf("script chapter does not list segment times")
	}
	if strings.Contains(found["idea.xhtml"], "<Starters>") {
		t.Fatalf("topic markup was not escaped")
	}
}

func TestPackageGenerator_RenderRejectsEmptyInput(t *testing.T) {
	g := NewPackageGenerator()
	if _, err := g.Render(nil, "id"); err == nil {
		t.Fatalf("expected error for nil result")
	}
	if _, err := g.Render(&models.GenerationResult{}, ""); err == nil {
		t.Fatalf("expected error for empty package id")
	}
}
