// File: manifest.go
// Title: Factory Manifest Loading and Validation
// Description: Implements declarative factory manifests that describe the
//              expected contents of a factory: its name, case policy, and
//              item names. Manifests are loaded from TOML or YAML files with
//              automatic format detection and validated both standalone
//              (Lint) and against a live factory (Verify).
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation with TOML/YAML support

package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	lferror "github.com/msto63/lazyfactory/core/error"
	lfstringx "github.com/msto63/lazyfactory/utils/stringx"
)

// Format represents the manifest file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Manifest declares the expected contents of a factory.
//
// A manifest never instantiates anything; it only names the items a factory
// is expected to carry so that configuration and code can be checked for
// parity at startup.
type Manifest struct {
	// Name identifies the factory this manifest describes
	Name string `toml:"name" yaml:"name"`

	// CaseInsensitive declares the factory's case policy
	CaseInsensitive bool `toml:"case-insensitive" yaml:"case-insensitive"`

	// Items lists the names expected to be registered
	Items []string `toml:"items" yaml:"items"`
}

// Inventory is the read surface a manifest verifies against. Both
// *factory.Factory[T] and *factory.Synced[T] satisfy it.
type Inventory interface {
	CaseInsensitive() bool
	HasItem(name string) bool
	ItemNames() []string
}

// Load loads a manifest from a file, detecting the format by extension
func Load(path string) (*Manifest, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat loads a manifest from a file in the given format.
// The loaded manifest is linted before it is returned.
func LoadWithFormat(path string, format Format) (*Manifest, error) {
	if lfstringx.IsBlank(path) {
		return nil, lferror.New("manifest file path cannot be empty").
			WithCode(lferror.CodeInvalidInput).
			WithOperation("manifest.Load")
	}

	if format == FormatAuto {
		detected, err := detectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, lferror.Wrap(err, "failed to read manifest file").
			WithCode(lferror.CodeInvalidManifest).
			WithOperation("manifest.Load").
			WithDetail("path", path)
	}

	var m Manifest
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &m); err != nil {
			return nil, lferror.Wrap(err, "failed to parse YAML manifest").
				WithCode(lferror.CodeInvalidManifest).
				WithOperation("manifest.Load").
				WithDetail("path", path)
		}
	default:
		if err := toml.Unmarshal(content, &m); err != nil {
			return nil, lferror.Wrap(err, "failed to parse TOML manifest").
				WithCode(lferror.CodeInvalidManifest).
				WithOperation("manifest.Load").
				WithDetail("path", path)
		}
	}

	if err := m.Lint(); err != nil {
		return nil, err
	}

	return &m, nil
}

// detectFormat determines the manifest format from the file extension
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatTOML, lferror.Newf("unsupported manifest file extension: %s", filepath.Ext(path)).
			WithCode(lferror.CodeInvalidInput).
			WithOperation("manifest.Load").
			WithDetail("path", path)
	}
}

// Lint validates the manifest standalone: a non-blank name, non-blank item
// names, and no item collisions under the declared case policy. The
// collision rules mirror the factory's own mapping-form bulk validation.
func (m *Manifest) Lint() error {
	if lfstringx.IsBlank(m.Name) {
		return lferror.New("manifest name cannot be blank").
			WithCode(lferror.CodeInvalidManifest).
			WithOperation("manifest.Lint")
	}

	seen := make(map[string]struct{}, len(m.Items))
	folded := make(map[string]struct{}, len(m.Items))
	for i, name := range m.Items {
		if lfstringx.IsBlank(name) {
			return lferror.Newf("manifest %s declares a blank item name at position %d", m.Name, i).
				WithCode(lferror.CodeInvalidManifest).
				WithOperation("manifest.Lint")
		}

		if _, dup := seen[name]; dup {
			return lferror.Newf("manifest %s lists item %s more than once", m.Name, name).
				WithCode(lferror.CodeDuplicateItem).
				WithOperation("manifest.Lint").
				WithDetail("itemName", name)
		}
		seen[name] = struct{}{}

		if m.CaseInsensitive {
			key := lfstringx.FoldName(name)
			if _, dup := folded[key]; dup {
				return lferror.Newf("manifest %s contains item names that differ only in case "+
					"while case sensitivity is disabled", m.Name).
					WithCode(lferror.CodeDuplicateItem).
					WithOperation("manifest.Lint").
					WithDetail("itemName", key)
			}
			folded[key] = struct{}{}
		}
	}

	return nil
}

// Verify checks a live factory against the manifest: the case policies must
// match and every declared item must be registered. Extra registered items
// are allowed; a manifest declares a minimum inventory, not a maximum.
func (m *Manifest) Verify(inv Inventory) error {
	if inv.CaseInsensitive() != m.CaseInsensitive {
		return lferror.Newf("manifest %s declares case-insensitive=%v but the factory uses case-insensitive=%v",
			m.Name, m.CaseInsensitive, inv.CaseInsensitive()).
			WithCode(lferror.CodeInvalidManifest).
			WithOperation("manifest.Verify")
	}

	var missing []string
	for _, name := range m.Items {
		if !inv.HasItem(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return lferror.Newf("factory is missing items declared in manifest %s: %s",
			m.Name, strings.Join(missing, ", ")).
			WithCode(lferror.CodeItemNotFound).
			WithOperation("manifest.Verify").
			WithDetail("missingItems", missing)
	}

	return nil
}
