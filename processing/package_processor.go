package processing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/coreybb/storyboard/ebook"
	"github.com/coreybb/storyboard/generation"
	"github.com/coreybb/storyboard/models"
	"github.com/coreybb/storyboard/storage"
	"github.com/coreybb/storyboard/webutil"
)

// packageNamespace scopes name-based package IDs to this service.
var packageNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/coreybb/storyboard/packages"))

// GeneratedPackage pairs a generation result with its stable identifier.
type GeneratedPackage struct {
	ID     string
	Result *models.GenerationResult
}

// PackageProcessor handles everything around a single generation run:
// identifying the package, rendering it to export formats and storing files.
type PackageProcessor struct {
	Pipeline  *generation.GenerationPipeline
	Generator *ebook.PackageGenerator
	Storer    storage.PackageStorer
}

// NewPackageProcessor creates a new PackageProcessor.
func NewPackageProcessor(
	pipeline *generation.GenerationPipeline,
	generator *ebook.PackageGenerator,
	storer storage.PackageStorer,
) *PackageProcessor {
	return &PackageProcessor{
		Pipeline:  pipeline,
		Generator: generator,
		Storer:    storer,
	}
}

// PackageID derives the identifier of the package a brief produces. The same
// brief always yields the same ID.
func PackageID(b models.Brief) string {
	return uuid.NewSHA1(packageNamespace, []byte(generation.CanonicalBrief(b))).String()
}

// Generate runs the pipeline for a validated brief.
func (pp *PackageProcessor) Generate(ctx context.Context, b models.Brief) (*GeneratedPackage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := pp.Pipeline.Generate(b)
	if err != nil {
		return nil, fmt.Errorf("failed to generate package for topic '%s': %w", b.Topic, err)
	}
	return &GeneratedPackage{ID: PackageID(b), Result: result}, nil
}

// Render encodes a generated package in the requested format.
func (pp *PackageProcessor) Render(pkg *GeneratedPackage, format models.ExportFormat) ([]byte, error) {
	switch format {
	case models.ExportFormatJSON:
		data, err := json.MarshalIndent(pkg.Result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode package %s as JSON: %w", pkg.ID, err)
		}
		return data, nil
	case models.ExportFormatEPUB:
		return pp.Generator.Render(pkg.Result, pkg.ID)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// LoadExport reads a file written by an earlier Export. A package that was
// never exported in that format yields an error matching fs.ErrNotExist.
func (pp *PackageProcessor) LoadExport(packageID string, format models.ExportFormat) ([]byte, error) {
	data, err := pp.Storer.Load(packageID, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s export of package %s: %w", format, packageID, err)
	}
	return data, nil
}

// Export renders the package in each format and stores the files. It stops at
// the first failure, returning the exports already written.
func (pp *PackageProcessor) Export(ctx context.Context, pkg *GeneratedPackage, formats ...models.ExportFormat) ([]models.Export, error) {
	if len(formats) == 0 {
		formats = models.ExportFormats
	}

	exports := make([]models.Export, 0, len(formats))
	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			return exports, err
		}

		data, err := pp.Render(pkg, format)
		if err != nil {
			return exports, err
		}
		hash, err := webutil.GenerateHash(string(data))
		if err != nil {
			return exports, fmt.Errorf("failed to hash %s export of package %s: %w", format, pkg.ID, err)
		}
		path, err := pp.Storer.Store(pkg.ID, data, format)
		if err != nil {
			return exports, fmt.Errorf("failed to store %s export of package %s: %w", format, pkg.ID, err)
		}

		exports = append(exports, models.Export{
			PackageID:   pkg.ID,
			Format:      format,
			Path:        path,
			Size:        len(data),
			ContentHash: hash,
			CreatedAt:   time.Now().UTC(),
		})
	}

	log.Printf("INFO (PackageProcessor): Exported package %s in %d format(s)", pkg.ID, len(exports))
	return exports, nil
}
