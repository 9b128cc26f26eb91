package routehandlers

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/coreybb/storyboard/models"
	"github.com/coreybb/storyboard/processing"
	"github.com/coreybb/storyboard/webutil"
)

// PackageHandler serves packages exported earlier, by the CLI or any other
// caller sharing the export directory.
type PackageHandler struct {
	Processor *processing.PackageProcessor
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(processor *processing.PackageProcessor) *PackageHandler {
	return &PackageHandler{Processor: processor}
}

// HandleGetPackage returns GET /api/packages/{packageID}/{format}.
func (h *PackageHandler) HandleGetPackage(w http.ResponseWriter, r *http.Request) error {
	id, err := uuid.Parse(chi.URLParam(r, "packageID"))
	if err != nil {
		return webutil.ErrBadRequest("Invalid package ID format")
	}
	packageID := id.String()
	format, ok := models.IsValidExportFormat(chi.URLParam(r, "format"))
	if !ok {
		return webutil.ErrBadRequest(fmt.Sprintf("Unsupported export format, must be one of %s", joinFormats()))
	}

	body, err := h.Processor.LoadExport(packageID, format)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return webutil.ErrNotFound("Package export not found")
		}
		return webutil.ErrInternalServerWrap("failed to load package", err)
	}
	return writePackage(w, r, packageID, format, body)
}

func joinFormats() string {
	out := ""
	for i, f := range models.ExportFormats {
		if i > 0 {
			out += ", "
		}
		out += string(f)
	}
	return out
}
