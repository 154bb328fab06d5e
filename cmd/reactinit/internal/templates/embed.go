// Package templates provides the embedded static files of a generated
// React project.
//
// Files ending in .tmpl are rendered with text/template using "[[" and "]]"
// as delimiters, since JSX uses "{{" for inline style objects. Every other
// file is copied verbatim.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

//go:embed files
var FS embed.FS

const root = "files"

// TemplateData contains the data for template substitution.
type TemplateData struct {
	TypeScript bool   // emit type annotations
	APIURL     string // e.g., "https://api.example.com"
}

// ProcessTemplate processes a template string with the given data.
func ProcessTemplate(name, content string, data TemplateData) (string, error) {
	tmpl, err := template.New(name).Delims("[[", "]]").Option("missingkey=error").Parse(content)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Render reads the named file (relative to the template root) and renders
// it when it is a template.
func Render(name string, data TemplateData) (string, error) {
	content, err := ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}
	if !IsTemplate(name) {
		return string(content), nil
	}
	out, err := ProcessTemplate(name, string(content), data)
	if err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return out, nil
}

// IsTemplate reports whether name is rendered rather than copied.
func IsTemplate(name string) bool {
	return strings.HasSuffix(name, ".tmpl")
}

// ListFiles returns all files in the embedded filesystem under dir,
// relative to the template root.
func ListFiles(dir string) ([]string, error) {
	var files []string

	base := path.Join(root, dir)
	err := fs.WalkDir(FS, base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, strings.TrimPrefix(p, root+"/"))
		}
		return nil
	})

	return files, err
}

// ReadFile reads a file from the embedded filesystem.
func ReadFile(name string) ([]byte, error) {
	return FS.ReadFile(path.Join(root, name))
}
