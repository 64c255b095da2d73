package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ygrebnov/errorc"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/injgraph/internal/diag"
)

// Load reads and parses the manifest at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errorc.With(fmt.Errorf("failed to read manifest: %w", err), errorc.String(diag.KeyPath, path))
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errorc.With(err, errorc.String(diag.KeyPath, path))
	}

	return doc, nil
}

// Parse decodes a manifest. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyManifest
		}

		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &doc, nil
}

// Marshal encodes the document back to YAML.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}
