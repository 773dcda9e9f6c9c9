// Package manifest loads launcher fields from a YAML file.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"kilometers.ai/deskgen/internal/core/desktop"
)

// ErrEmptyManifest is returned for a manifest with no YAML document.
var ErrEmptyManifest = errors.New("manifest is empty")

// Manifest mirrors the YAML document. Icon is a pointer so that a present
// but empty icon key is distinguishable from an absent one.
type Manifest struct {
	Exec    string  `yaml:"exec"`
	Name    string  `yaml:"name"`
	Icon    *string `yaml:"icon"`
	Version string  `yaml:"version"`
	Comment string  `yaml:"comment"`
}

// Fields converts the manifest into generator fields.
func (m Manifest) Fields() desktop.Fields {
	fields := desktop.Fields{
		Exec:    m.Exec,
		Name:    m.Name,
		Version: m.Version,
		Comment: m.Comment,
	}
	if m.Icon != nil {
		fields.Icon = desktop.SomePath(*m.Icon)
	}
	return fields
}

// Load reads a manifest file. Unknown keys are rejected.
func Load(path string) (desktop.Fields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return desktop.Fields{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return desktop.Fields{}, fmt.Errorf("%s: %w", path, ErrEmptyManifest)
		}
		return desktop.Fields{}, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return m.Fields(), nil
}
