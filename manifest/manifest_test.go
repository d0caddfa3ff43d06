// File: manifest_test.go
// Title: Factory Manifest Unit Tests
// Description: Unit tests for manifest loading (TOML/YAML, format
//              auto-detection), standalone linting, and verification
//              against live factories.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial test suite

package manifest

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	lferror "github.com/msto63/lazyfactory/core/error"
	lflog "github.com/msto63/lazyfactory/core/log"
	"github.com/msto63/lazyfactory/factory"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		expectErr bool
		errCode   lferror.Code
		checkFunc func(*Manifest) bool
	}{
		{
			name: "TOML manifest",
			file: "vehicles.toml",
			content: `name = "vehicles"
case-insensitive = true
items = ["Sedan", "Truck"]
`,
			checkFunc: func(m *Manifest) bool {
				return m.Name == "vehicles" && m.CaseInsensitive && len(m.Items) == 2
			},
		},
		{
			name: "YAML manifest",
			file: "vehicles.yaml",
			content: `name: vehicles
case-insensitive: false
items:
  - Sedan
  - Truck
`,
			checkFunc: func(m *Manifest) bool {
				return m.Name == "vehicles" && !m.CaseInsensitive && len(m.Items) == 2
			},
		},
		{
			name: "YML extension detected as YAML",
			file: "vehicles.yml",
			content: `name: vehicles
items: [Sedan]
`,
			checkFunc: func(m *Manifest) bool {
				return len(m.Items) == 1
			},
		},
		{
			name:      "Unsupported extension",
			file:      "vehicles.json",
			content:   `{}`,
			expectErr: true,
			errCode:   lferror.CodeInvalidInput,
		},
		{
			name:      "Invalid TOML",
			file:      "broken.toml",
			content:   `name = [unclosed`,
			expectErr: true,
			errCode:   lferror.CodeInvalidManifest,
		},
		{
			name: "Lint runs on load",
			file: "dupes.toml",
			content: `name = "vehicles"
items = ["Sedan", "Sedan"]
`,
			expectErr: true,
			errCode:   lferror.CodeDuplicateItem,
		},
		{
			name: "Blank manifest name",
			file: "unnamed.toml",
			content: `items = ["Sedan"]
`,
			expectErr: true,
			errCode:   lferror.CodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.file, tt.content)
			m, err := Load(path)

			if tt.expectErr {
				if err == nil {
					t.Fatal("Expected error but got none")
				}
				if !lferror.HasCode(err, tt.errCode) {
					t.Errorf("Expected code %v, got %v", tt.errCode, lferror.GetCode(err))
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if m == nil {
				t.Fatal("Expected manifest but got nil")
			}
			if tt.checkFunc != nil && !tt.checkFunc(m) {
				t.Errorf("Manifest check function failed: %+v", m)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !lferror.HasCode(err, lferror.CodeInvalidManifest) {
		t.Errorf("Expected CodeInvalidManifest, got %v", err)
	}
}

func TestLoadBlankPath(t *testing.T) {
	_, err := Load("  ")
	if !lferror.HasCode(err, lferror.CodeInvalidInput) {
		t.Errorf("Expected CodeInvalidInput, got %v", err)
	}
}

func TestLint(t *testing.T) {
	tests := []struct {
		name      string
		manifest  Manifest
		expectErr bool
		errCode   lferror.Code
	}{
		{
			name:     "Valid manifest",
			manifest: Manifest{Name: "vehicles", Items: []string{"Sedan", "Truck"}},
		},
		{
			name:     "Empty item list is valid",
			manifest: Manifest{Name: "vehicles"},
		},
		{
			name:      "Blank name",
			manifest:  Manifest{Name: " ", Items: []string{"Sedan"}},
			expectErr: true,
			errCode:   lferror.CodeInvalidManifest,
		},
		{
			name:      "Blank item name",
			manifest:  Manifest{Name: "vehicles", Items: []string{"Sedan", " "}},
			expectErr: true,
			errCode:   lferror.CodeInvalidManifest,
		},
		{
			name:      "Exact duplicate item",
			manifest:  Manifest{Name: "vehicles", Items: []string{"Sedan", "Sedan"}},
			expectErr: true,
			errCode:   lferror.CodeDuplicateItem,
		},
		{
			name: "Case collision while insensitive",
			manifest: Manifest{
				Name:            "vehicles",
				CaseInsensitive: true,
				Items:           []string{"Sedan", "SEDAN"},
			},
			expectErr: true,
			errCode:   lferror.CodeDuplicateItem,
		},
		{
			name: "Case variants allowed while sensitive",
			manifest: Manifest{
				Name:  "vehicles",
				Items: []string{"Sedan", "SEDAN"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.manifest.Lint()

			if tt.expectErr {
				if err == nil {
					t.Fatal("Expected error but got none")
				}
				if !lferror.HasCode(err, tt.errCode) {
					t.Errorf("Expected code %v, got %v", tt.errCode, lferror.GetCode(err))
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

type vehicle interface {
	Drive() string
}

type sedan struct{}

func (s *sedan) Drive() string { return "sedan driving" }

func testFactory(t *testing.T, caseInsensitive bool, names ...string) *factory.Factory[vehicle] {
	t.Helper()
	f, err := factory.New(factory.Options[vehicle]{
		CaseInsensitive: caseInsensitive,
		Logger: lflog.NewWithConfig(lflog.Config{
			Level:  lflog.LevelError,
			Output: io.Discard,
		}),
	})
	if err != nil {
		t.Fatalf("Failed to create factory: %v", err)
	}
	for _, name := range names {
		item := factory.NewItem(name, func() vehicle { return &sedan{} })
		if err := f.RegisterNamed(name, item); err != nil {
			t.Fatalf("Failed to register %q: %v", name, err)
		}
	}
	return f
}

func TestVerify(t *testing.T) {
	t.Run("All declared items registered", func(t *testing.T) {
		m := Manifest{Name: "vehicles", CaseInsensitive: true, Items: []string{"sedan", "TRUCK"}}
		f := testFactory(t, true, "Sedan", "Truck")

		if err := m.Verify(f); err != nil {
			t.Errorf("Verify failed: %v", err)
		}
	})

	t.Run("Extra registered items are allowed", func(t *testing.T) {
		m := Manifest{Name: "vehicles", Items: []string{"Sedan"}}
		f := testFactory(t, false, "Sedan", "Truck")

		if err := m.Verify(f); err != nil {
			t.Errorf("Verify failed: %v", err)
		}
	})

	t.Run("Missing item reported", func(t *testing.T) {
		m := Manifest{Name: "vehicles", Items: []string{"Sedan", "Bus"}}
		f := testFactory(t, false, "Sedan")

		err := m.Verify(f)
		if !lferror.HasCode(err, lferror.CodeItemNotFound) {
			t.Errorf("Expected CodeItemNotFound, got %v", err)
		}
	})

	t.Run("Case policy mismatch reported", func(t *testing.T) {
		m := Manifest{Name: "vehicles", CaseInsensitive: true, Items: []string{"Sedan"}}
		f := testFactory(t, false, "Sedan")

		err := m.Verify(f)
		if !lferror.HasCode(err, lferror.CodeInvalidManifest) {
			t.Errorf("Expected CodeInvalidManifest, got %v", err)
		}
	})
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatTOML, "toml"},
		{FormatYAML, "yaml"},
		{FormatAuto, "auto"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
