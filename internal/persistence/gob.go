// Package persistence reads and writes gob snapshots of directory data.
package persistence

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// SaveGob encodes object with gob and writes it to filePath.
// The snapshot is written to a temporary file in the same directory and renamed into place,
// so readers never observe a partial file. Missing directories are created.
func SaveGob(filePath string, object interface{}) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(filePath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", filePath, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpPath)
	}()

	if err := gob.NewEncoder(tmp).Encode(object); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to gob encode to file %s: %w", filePath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for %s: %w", filePath, err)
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("failed to move snapshot into %s: %w", filePath, err)
	}
	return nil
}

// LoadGob decodes a gob-encoded file from filePath into the provided object pointer.
// The object must be a pointer to the type that was originally encoded.
// If the file does not exist, it returns os.ErrNotExist.
func LoadGob(filePath string, objectPointer interface{}) error {
	file, err := os.Open(filePath) // #nosec G304 -- filePath comes from operator configuration
	if err != nil {
		if os.IsNotExist(err) {
			return os.ErrNotExist
		}
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("failed to close snapshot file", slog.String("path", filePath), slog.String("error", closeErr.Error()))
		}
	}()

	if err := gob.NewDecoder(file).Decode(objectPointer); err != nil {
		return fmt.Errorf("failed to gob decode from file %s: %w", filePath, err)
	}
	return nil
}
