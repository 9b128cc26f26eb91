package models

import (
	"strings"
	"time"
)

// ExportFormat defines the set of file formats a package can be exported to.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatEPUB ExportFormat = "epub"
)

var ExportFormats = []ExportFormat{ExportFormatJSON, ExportFormatEPUB}

// IsValidExportFormat checks if the provided string is a valid ExportFormat.
// It returns the typed ExportFormat and true if valid, otherwise an empty ExportFormat and false.
func IsValidExportFormat(s string) (ExportFormat, bool) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case ExportFormatJSON, ExportFormatEPUB:
		return f, true
	default:
		return "", false
	}
}

// ContentType returns the MIME type served for the format.
func (f ExportFormat) ContentType() string {
	if f == ExportFormatEPUB {
		return "application/epub+zip"
	}
	return "application/json; charset=utf-8"
}

// Export records one package file written to storage.
type Export struct {
	PackageID   string       `json:"packageId"`
	Format      ExportFormat `json:"format"`
	Path        string       `json:"path"`
	Size        int          `json:"size"`
	ContentHash string       `json:"contentHash"`
	CreatedAt   time.Time    `json:"createdAt"`
}
