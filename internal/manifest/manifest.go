package manifest

import (
	"fmt"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"

	"form-binder/internal/diagnostic"
)

// CurrentVersion is the manifest format version.
const CurrentVersion = "1"

// File is a generator manifest.
type File struct {
	Version string `yaml:"version"`
	// FileName is the generated file name; defaults to formbind_gen.go.
	FileName string `yaml:"file_name,omitempty"`
	// Header replaces the "Code generated" line of generated files.
	Header string `yaml:"header,omitempty"`
	// PropertyImport overrides the import path of the property package.
	PropertyImport string         `yaml:"property_import,omitempty"`
	Packages       []PackageEntry `yaml:"packages"`
}

// PackageEntry names the struct types of one package.
type PackageEntry struct {
	Path  string   `yaml:"path"`
	Types []string `yaml:"types"`
}

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.FileName == "" {
		f.FileName = "formbind_gen.go"
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}

// Validate checks the manifest structure. It does not load packages.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported manifest version %q", f.Version), "", "")
	}

	if len(f.Packages) == 0 {
		res.AddError("no_packages", "manifest lists no packages", "", "")
	}

	seenPkgs := map[string]struct{}{}

	for i := range f.Packages {
		p := &f.Packages[i]

		if p.Path == "" {
			res.AddError("missing_path", fmt.Sprintf("packages[%d] has no path", i), "", "")
			continue
		}

		if _, ok := seenPkgs[p.Path]; ok {
			res.AddError("duplicate_package", fmt.Sprintf("duplicate package %q", p.Path), "", "")
			continue
		}

		seenPkgs[p.Path] = struct{}{}

		if len(p.Types) == 0 {
			res.AddWarning("no_types", fmt.Sprintf("package %q lists no types", p.Path), "", "")
		}

		seenTypes := map[string]struct{}{}

		for _, name := range p.Types {
			if !token.IsIdentifier(name) || !token.IsExported(name) {
				res.AddError("invalid_type", fmt.Sprintf("%q is not an exported type name", name), name, "")
				continue
			}

			if _, ok := seenTypes[name]; ok {
				res.AddError("duplicate_type", fmt.Sprintf("type %q listed twice in %q", name, p.Path), name, "")
				continue
			}

			seenTypes[name] = struct{}{}
		}
	}

	return res
}
