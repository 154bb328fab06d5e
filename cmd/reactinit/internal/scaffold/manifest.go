package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// Scripts are the npm scripts of every generated project. Field order is
// the serialized order.
type Scripts struct {
	Start string `json:"start" yaml:"start"`
	Build string `json:"build" yaml:"build"`
	Test  string `json:"test" yaml:"test"`
	Eject string `json:"eject" yaml:"eject"`
}

// Manifest is the package.json of a generated project.
type Manifest struct {
	Name            string            `json:"name" yaml:"name"`
	Version         string            `json:"version" yaml:"version"`
	Private         bool              `json:"private" yaml:"private"`
	Dependencies    map[string]string `json:"dependencies" yaml:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies" yaml:"devDependencies"`
	Scripts         Scripts           `json:"scripts" yaml:"scripts"`
}

// dependency is one manifest entry gated on the configuration.
type dependency struct {
	name, version string
	dev           bool
	on            func(Config) bool
}

func withRouter(c Config) bool { return c.Features.Router }

func withAxios(c Config) bool { return c.Features.Axios }

func withTailwind(c Config) bool { return c.Features.Tailwind }

func typedRouter(c Config) bool { return typed(c) && c.Features.Router }

var dependencies = []dependency{
	{name: "react", version: "^18.2.0", on: anyConfig},
	{name: "react-dom", version: "^18.2.0", on: anyConfig},
	{name: "react-scripts", version: "5.0.1", on: anyConfig},
	{name: "web-vitals", version: "^2.1.4", on: anyConfig},

	{name: "@reduxjs/toolkit", version: "^1.9.7", on: withRedux},
	{name: "react-redux", version: "^8.1.3", on: withRedux},
	{name: "react-router-dom", version: "^6.22.0", on: withRouter},
	{name: "axios", version: "^1.6.8", on: withAxios},

	{name: "tailwindcss", version: "^3.4.0", dev: true, on: withTailwind},
	{name: "postcss", version: "^8.4.35", dev: true, on: withTailwind},
	{name: "autoprefixer", version: "^10.4.18", dev: true, on: withTailwind},

	{name: "typescript", version: "^5.4.0", dev: true, on: typed},
	{name: "@types/react", version: "^18.2.8", dev: true, on: typed},
	{name: "@types/react-dom", version: "^18.2.4", dev: true, on: typed},
	{name: "@types/react-router-dom", version: "^5.3.3", dev: true, on: typedRouter},
}

// ResolveManifest returns the package manifest for cfg. Scripts are the
// same for every configuration.
func ResolveManifest(cfg Config, name string) (*Manifest, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Manifest{
		Name:            name,
		Version:         "0.1.0",
		Private:         true,
		Dependencies:    make(map[string]string),
		DevDependencies: make(map[string]string),
		Scripts: Scripts{
			Start: "react-scripts start",
			Build: "react-scripts build",
			Test:  "react-scripts test",
			Eject: "react-scripts eject",
		},
	}
	for _, d := range dependencies {
		if !d.on(cfg) {
			continue
		}
		if d.dev {
			m.DevDependencies[d.name] = d.version
		} else {
			m.Dependencies[d.name] = d.version
		}
	}
	return m, nil
}

// Has reports whether pkg is a dependency or devDependency.
func (m *Manifest) Has(pkg string) bool {
	if _, ok := m.Dependencies[pkg]; ok {
		return true
	}
	_, ok := m.DevDependencies[pkg]
	return ok
}

// Validate checks that every version is an exact, caret or tilde semver.
func (m *Manifest) Validate() error {
	for _, deps := range []map[string]string{m.Dependencies, m.DevDependencies} {
		names := make([]string, 0, len(deps))
		for n := range deps {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			v := strings.TrimLeft(deps[n], "^~")
			if !semver.IsValid("v" + v) {
				return fmt.Errorf("dependency %s has invalid version %q", n, deps[n])
			}
		}
	}
	return nil
}

// JSON renders the manifest with two-space indentation and a trailing
// newline. Map keys are sorted.
func (m *Manifest) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Verify checks that every package imported by files is declared in m.
func Verify(files FileSet, m *Manifest) error {
	for _, pkg := range files.Packages() {
		if !m.Has(pkg) {
			return fmt.Errorf("generated sources import %q, which is not in the manifest", pkg)
		}
	}
	return m.Validate()
}
