package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/coreybb/storyboard/models"
)

// outputDirForStorage defines the base directory for exported packages.
const outputDirForStorage = "_output"

const packagesDir = "packages"

// PackageStorer defines the interface for persisting exported package files.
type PackageStorer interface {
	// Store saves the content and returns the relative path where it was stored.
	// The format determines the file extension.
	Store(packageID string, content []byte, format models.ExportFormat) (relativeStoragePath string, err error)
	// Load reads back a previously stored file.
	Load(packageID string, format models.ExportFormat) ([]byte, error)
}

// LocalFileStorer implements PackageStorer on the local file system.
type LocalFileStorer struct {
	basePath string
}

// NewLocalFileStorer creates a new LocalFileStorer.
// If basePath is empty, it defaults to outputDirForStorage.
func NewLocalFileStorer(basePath string) *LocalFileStorer {
	if basePath == "" {
		basePath = outputDirForStorage
	}
	return &LocalFileStorer{basePath: basePath}
}

// BasePath returns the directory all relative paths are resolved against.
func (lfs *LocalFileStorer) BasePath() string {
	return lfs.basePath
}

// Store writes content to <basePath>/packages/<packageID>.<format> and returns
// packages/<packageID>.<format>. Re-exporting the same package overwrites it.
func (lfs *LocalFileStorer) Store(packageID string, content []byte, format models.ExportFormat) (string, error) {
	relativePath, err := relativePackagePath(packageID, format)
	if err != nil {
		return "", err
	}

	fullStorageDir := filepath.Join(lfs.basePath, packagesDir)
	fullStoragePath := filepath.Join(lfs.basePath, relativePath)

	if err := os.MkdirAll(fullStorageDir, os.ModePerm); err != nil {
		log.Printf("ERROR (LocalFileStorer): Failed to create storage directory '%s': %v", fullStorageDir, err)
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	if err := os.WriteFile(fullStoragePath, content, 0644); err != nil {
		log.Printf("ERROR (LocalFileStorer): Failed to write package to '%s': %v", fullStoragePath, err)
		return "", fmt.Errorf("failed to save package: %w", err)
	}

	log.Printf("INFO (LocalFileStorer): Saved package to: %s (Format: %s, Size: %d bytes)", fullStoragePath, format, len(content))
	return relativePath, nil
}

// Load reads back a file written by Store.
func (lfs *LocalFileStorer) Load(packageID string, format models.ExportFormat) ([]byte, error) {
	relativePath, err := relativePackagePath(packageID, format)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(filepath.Join(lfs.basePath, relativePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read package %s (%s): %w", packageID, format, err)
	}
	return content, nil
}

func relativePackagePath(packageID string, format models.ExportFormat) (string, error) {
	if packageID == "" {
		return "", fmt.Errorf("packageID cannot be empty for storing content")
	}
	if _, ok := models.IsValidExportFormat(string(format)); !ok {
		return "", fmt.Errorf("unsupported export format %q", format)
	}
	if filepath.Base(packageID) != packageID {
		return "", fmt.Errorf("packageID %q must not contain path separators", packageID)
	}
	return filepath.Join(packagesDir, packageID+"."+string(format)), nil
}
