package theme

import (
	"fmt"
	"io/fs"

	gotheme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type manifestFile struct {
	Themes []manifestEntry `yaml:"themes"`
}

type manifestEntry struct {
	Name      string                  `yaml:"name"`
	Version   string                  `yaml:"version"`
	Tokens    map[string]string       `yaml:"tokens"`
	Templates map[string]string       `yaml:"templates"`
	Assets    assetsEntry             `yaml:"assets"`
	Variants  map[string]variantEntry `yaml:"variants"`
}

type variantEntry struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    assetsEntry       `yaml:"assets"`
}

type assetsEntry struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

// LoadManifests reads a YAML document listing theme manifests:
//
//	themes:
//	  - name: acme
//	    tokens: {brand: "#123456"}
//	    variants:
//	      dark: {tokens: {brand: "#654321"}}
func LoadManifests(fsys fs.FS, path string) ([]*gotheme.Manifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("theme: read manifests %q: %w", path, err)
	}
	return ParseManifests(data)
}

// ParseManifests decodes the YAML document described by LoadManifests.
func ParseManifests(data []byte) ([]*gotheme.Manifest, error) {
	var doc manifestFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("theme: decode manifests: %w", err)
	}

	out := make([]*gotheme.Manifest, 0, len(doc.Themes))
	for i, entry := range doc.Themes {
		if entry.Name == "" {
			return nil, fmt.Errorf("theme: manifest %d has no name", i)
		}
		manifest := &gotheme.Manifest{
			Name:      entry.Name,
			Version:   entry.Version,
			Tokens:    entry.Tokens,
			Templates: entry.Templates,
			Assets: gotheme.Assets{
				Prefix: entry.Assets.Prefix,
				Files:  entry.Assets.Files,
			},
		}
		if len(entry.Variants) > 0 {
			manifest.Variants = make(map[string]gotheme.Variant, len(entry.Variants))
			for name, variant := range entry.Variants {
				manifest.Variants[name] = gotheme.Variant{
					Tokens:    variant.Tokens,
					Templates: variant.Templates,
					Assets: gotheme.Assets{
						Prefix: variant.Assets.Prefix,
						Files:  variant.Assets.Files,
					},
				}
			}
		}
		out = append(out, manifest)
	}
	return out, nil
}
