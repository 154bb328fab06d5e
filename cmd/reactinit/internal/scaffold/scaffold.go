// Package scaffold resolves the files and package manifest of a generated
// React project from a small configuration record.
//
// Everything in this package is side-effect free apart from CheckTarget,
// which only inspects the filesystem it is given.
package scaffold

import "fmt"

// Language selects the flavour of the generated sources.
type Language string

const (
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
)

// Languages lists the supported variants in prompt order.
var Languages = []Language{JavaScript, TypeScript}

// Valid reports whether l is one of the supported variants.
func (l Language) Valid() bool {
	return l == JavaScript || l == TypeScript
}

// Label returns the display name, e.g. "TypeScript".
func (l Language) Label() string {
	if l == TypeScript {
		return "TypeScript"
	}
	return "JavaScript"
}

// ScriptExt is the extension of modules without markup.
func (l Language) ScriptExt() string {
	if l == TypeScript {
		return ".ts"
	}
	return ".js"
}

// MarkupExt is the extension of modules that contain JSX.
func (l Language) MarkupExt() string {
	if l == TypeScript {
		return ".tsx"
	}
	return ".js"
}

// Features holds the optional feature toggles.
type Features struct {
	Redux    bool `yaml:"redux"`    // state via @reduxjs/toolkit
	Context  bool `yaml:"context"`  // theme and notification providers
	Router   bool `yaml:"router"`   // react-router-dom with / and /about
	Tailwind bool `yaml:"tailwind"` // tailwindcss directives and toolchain
	Axios    bool `yaml:"axios"`    // HTTP test button
}

const (
	DefaultProbeURL = "https://httpbin.org/get"
	DefaultAPIURL   = "https://api.example.com"
)

// Config describes one generated project. It is created once per
// invocation and passed by value.
type Config struct {
	Language Language `yaml:"language"`
	Features Features `yaml:"features"`

	// ProbeURL is the endpoint the HTTP test button calls.
	ProbeURL string `yaml:"probe_url"`
	// APIURL is written to .env as REACT_APP_API_URL.
	APIURL string `yaml:"api_url"`
}

// Defaults returns the configuration used when prompts are skipped.
func Defaults() Config {
	return Config{
		Language: JavaScript,
		Features: Features{
			Redux:   true,
			Context: true,
			Router:  true,
		},
		ProbeURL: DefaultProbeURL,
		APIURL:   DefaultAPIURL,
	}
}

// Validate checks the fields that have no usable zero value.
func (c Config) Validate() error {
	if !c.Language.Valid() {
		return fmt.Errorf("invalid language %q", c.Language)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.ProbeURL == "" {
		c.ProbeURL = DefaultProbeURL
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	return c
}
