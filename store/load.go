package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gcbaptista/go-directory/internal/errors"
	"github.com/gcbaptista/go-directory/internal/persistence"
)

//go:embed seed/directory.yaml
var seedYAML []byte

// LoadSeed builds a Dataset from the demonstration data compiled into the binary.
func LoadSeed() (*Dataset, error) {
	data, err := DecodeYAML(seedYAML)
	if err != nil {
		return nil, fmt.Errorf("decoding embedded seed: %w", err)
	}
	return New(data), nil
}

// LoadFile builds a Dataset from a data file. The decoder is chosen by extension:
// .yaml and .yml are YAML, .json is JSON, and .gob is a snapshot written by SaveSnapshot.
func LoadFile(path string) (*Dataset, error) {
	var data Data
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err := os.ReadFile(path) // #nosec G304 -- path comes from operator configuration
		if err != nil {
			return nil, fmt.Errorf("reading data file %s: %w", path, err)
		}
		if data, err = DecodeYAML(raw); err != nil {
			return nil, fmt.Errorf("decoding data file %s: %w", path, err)
		}
	case ".json":
		raw, err := os.ReadFile(path) // #nosec G304 -- path comes from operator configuration
		if err != nil {
			return nil, fmt.Errorf("reading data file %s: %w", path, err)
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decoding data file %s: %w", path, err)
		}
	case ".gob":
		if err := persistence.LoadGob(path, &data); err != nil {
			return nil, fmt.Errorf("loading snapshot %s: %w", path, err)
		}
	default:
		return nil, errors.NewUnsupportedFormatError(path)
	}
	return New(data), nil
}

// Load returns the dataset from path, or the embedded seed when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return LoadSeed()
	}
	return LoadFile(path)
}

// SaveSnapshot writes the dataset to path as a gob snapshot readable by LoadFile.
func SaveSnapshot(path string, ds *Dataset) error {
	if err := persistence.SaveGob(path, ds.Data()); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// DecodeYAML decodes directory data, rejecting keys the data model does not know.
func DecodeYAML(raw []byte) (Data, error) {
	var data Data
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return Data{}, err
	}
	return data, nil
}
