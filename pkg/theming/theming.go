// Package theming loads go-theme manifests and resolves the renderer
// configuration (merged tokens, CSS custom properties, partials and asset
// URLs) for a theme name and variant.
package theming

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// DefaultTheme is the name of the embedded manifest.
const DefaultTheme = "confform"

//go:embed default.yaml
var defaultManifest []byte

type manifestFile struct {
	Name      string                 `yaml:"name"`
	Version   string                 `yaml:"version"`
	Tokens    map[string]string      `yaml:"tokens"`
	Templates map[string]string      `yaml:"templates"`
	Assets    assetsFile             `yaml:"assets"`
	Variants  map[string]variantFile `yaml:"variants"`
}

type variantFile struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    assetsFile        `yaml:"assets"`
}

type assetsFile struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

// DecodeManifest reads a YAML theme manifest.
func DecodeManifest(r io.Reader) (*theme.Manifest, error) {
	var file manifestFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("theming: decode manifest: %w", err)
	}
	if strings.TrimSpace(file.Name) == "" {
		return nil, errors.New("theming: manifest name is required")
	}

	manifest := &theme.Manifest{
		Name:      strings.TrimSpace(file.Name),
		Version:   file.Version,
		Tokens:    file.Tokens,
		Templates: file.Templates,
		Assets:    theme.Assets{Prefix: file.Assets.Prefix, Files: file.Assets.Files},
	}
	if len(file.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(file.Variants))
		for name, v := range file.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    v.Tokens,
				Templates: v.Templates,
				Assets:    theme.Assets{Prefix: v.Assets.Prefix, Files: v.Assets.Files},
			}
		}
	}
	return manifest, nil
}

// LoadManifestFile reads a manifest from disk.
func LoadManifestFile(path string) (*theme.Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("theming: open manifest: %w", err)
	}
	defer f.Close()
	return DecodeManifest(f)
}

// DefaultManifest returns the embedded manifest.
func DefaultManifest() *theme.Manifest {
	manifest, err := DecodeManifest(strings.NewReader(string(defaultManifest)))
	if err != nil {
		panic(err)
	}
	return manifest
}

type registrar interface {
	Register(manifest *theme.Manifest) error
}

// Catalog holds registered manifests and implements theme.ThemeSelector.
// Manifests are also registered with a go-theme registry, which validates
// them.
type Catalog struct {
	mu        sync.RWMutex
	registry  registrar
	manifests map[string]*theme.Manifest
	fallback  string
}

var _ theme.ThemeSelector = (*Catalog)(nil)

// NewCatalog returns a catalog seeded with the embedded manifest.
func NewCatalog() *Catalog {
	c := &Catalog{
		registry:  theme.NewRegistry(),
		manifests: make(map[string]*theme.Manifest),
		fallback:  DefaultTheme,
	}
	if err := c.Register(DefaultManifest()); err != nil {
		panic(err)
	}
	return c
}

// Register adds a manifest. Names must be unique.
func (c *Catalog) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return errors.New("theming: manifest is nil")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.manifests[manifest.Name]; exists {
		return fmt.Errorf("theming: theme %q already registered", manifest.Name)
	}
	if err := c.registry.Register(manifest); err != nil {
		return fmt.Errorf("theming: register %q: %w", manifest.Name, err)
	}
	c.manifests[manifest.Name] = manifest
	return nil
}

// Names lists registered theme names.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.manifests))
	for name := range c.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves a theme by name; an empty name selects the embedded
// theme. Unknown variants are an error, an empty variant means the base
// tokens only.
func (c *Catalog) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = c.fallback
	}
	variant = strings.TrimSpace(variant)

	c.mu.RLock()
	manifest, ok := c.manifests[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("theming: theme %q not found", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("theming: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// RendererConfig merges a selection into the configuration renderers use.
// Variant tokens, templates and asset files override the base manifest.
func RendererConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	variant := manifest.Variants[selection.Variant]

	tokens := merge(manifest.Tokens, variant.Tokens)
	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	prefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}
	files := merge(manifest.Assets.Files, variant.Assets.Files)

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: merge(manifest.Templates, variant.Templates),
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if prefix == "" {
				return file
			}
			return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
		},
	}
}

// Resolve selects and merges in one step.
func (c *Catalog) Resolve(name, variant string) (*theme.RendererConfig, error) {
	selection, err := c.Select(name, variant)
	if err != nil {
		return nil, err
	}
	return RendererConfig(selection), nil
}

// StyleAttr renders CSS custom properties as an inline style value in
// name order.
func StyleAttr(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+cfg.CSSVars[key])
	}
	return strings.Join(parts, "; ")
}

func merge(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
