package processing

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"testing"

	"github.com/google/uuid"

	"github.com/coreybb/storyboard/ebook"
	"github.com/coreybb/storyboard/generation"
	"github.com/coreybb/storyboard/models"
	"github.com/coreybb/storyboard/storage"
)

func testBrief() models.Brief {
	return models.Brief{
		Topic:           "Urban Beekeeping",
		DurationMinutes: 6,
		Style:           models.VideoStyleStorytelling,
		Audience:        models.AudienceBeginner,
		Tone:            models.ToneInspiring,
		Language:        "en",
	}
}

func newTestProcessor(t *testing.T) (*PackageProcessor, *storage.LocalFileStorer) {
	t.Helper()
	storer := storage.NewLocalFileStorer(t.TempDir())
	return NewPackageProcessor(generation.NewGenerationPipeline(), ebook.NewPackageGenerator(), storer), storer
}

func TestPackageID_StableAndVersion5(t *testing.T) {
	a, b := PackageID(testBrief()), PackageID(testBrief())
	if a != b {
		t.Fatalf("PackageID not stable: %s vs %s", a, b)
	}
	id, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("PackageID is not a UUID: %v", err)
	}
	if id.Version() != 5 {
		t.Fatalf("PackageID version = %d", id.Version())
	}

	other := testBrief()
	other.DurationMinutes = 7
	if PackageID(other) == a {
		t.Fatalf("different briefs share a package ID")
	}
}

func TestPackageProcessor_Export(t *testing.T) {
	pp, storer := newTestProcessor(t)
	ctx := context.Background()

	pkg, err := pp.Generate(ctx, testBrief())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	exports, err := pp.Export(ctx, pkg)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(exports) != len(models.ExportFormats) {
		t.Fatalf("got %d exports", len(exports))
	}

	data, err := storer.Load(pkg.ID, models.ExportFormatJSON)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var decoded models.GenerationResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("stored JSON does not decode: %v", err)
	}
	if decoded.Script.Duration != "00:06:00.000" {
		t.Fatalf("stored duration = %s", decoded.Script.Duration)
	}
	for _, e := range exports {
		if e.PackageID != pkg.ID || e.Size == 0 || len(e.ContentHash) != 64 {
			t.Fatalf("unexpected export record %+v", e)
		}
	}
}

func TestPackageProcessor_CanceledContext(t *testing.T) {
	pp, _ := newTestProcessor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := pp.Generate(ctx, testBrief()); !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate error = %v", err)
	}
}

func TestPackageProcessor_RenderRejectsUnknownFormat(t *testing.T) {
	pp, _ := newTestProcessor(t)
	pkg, err := pp.Generate(context.Background(), testBrief())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pp.Render(pkg, models.ExportFormat("mobi")); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestPackageProcessor_LoadExport(t *testing.T) {
	pp, _ := newTestProcessor(t)
	ctx := context.Background()
	pkg, err := pp.Generate(ctx, testBrief())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := pp.LoadExport(pkg.ID, models.ExportFormatEPUB); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("LoadExport before export: error = %v", err)
	}

	exports, err := pp.Export(ctx, pkg, models.ExportFormatEPUB)
	if err != nil {
		t.Fatal(err)
	}
	data, err := pp.LoadExport(pkg.ID, models.ExportFormatEPUB)
	if err != nil {
		t.Fatalf("LoadExport: %v", err)
	}
	if len(data) != exports[0].Size {
		t.Fatalf("loaded %d bytes, exported %d", len(data), exports[0].Size)
	}
}
