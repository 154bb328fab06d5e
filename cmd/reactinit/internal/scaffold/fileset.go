package scaffold

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
)

// FileSet maps slash-separated project-relative paths to file contents.
type FileSet map[string]string

// Paths returns the keys in lexical order.
func (f FileSet) Paths() []string {
	paths := make([]string, 0, len(f))
	for p := range f {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Validate rejects keys that could escape the project root.
func (f FileSet) Validate() error {
	for _, p := range f.Paths() {
		if err := validRelPath(p); err != nil {
			return err
		}
	}
	return nil
}

func validRelPath(p string) error {
	if p == "" {
		return fmt.Errorf("empty path in file set")
	}
	if strings.HasPrefix(p, "/") || strings.Contains(p, "\\") || strings.Contains(p, ":") {
		return fmt.Errorf("path %q is not project-relative", p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("path %q has an invalid segment", p)
		}
	}
	return nil
}

var importPattern = regexp.MustCompile(`(?m)^\s*import\s+(?:[^'";]*?\s+from\s+)?['"]([^'"]+)['"]`)

// Imports returns the module specifiers imported by a source file, in
// source order.
func Imports(content string) []string {
	var specs []string
	for _, m := range importPattern.FindAllStringSubmatch(content, -1) {
		specs = append(specs, m[1])
	}
	return specs
}

// sourceExts lists the extensions a bare relative import may resolve to,
// in the order the bundler tries them.
var sourceExts = []string{".js", ".jsx", ".ts", ".tsx"}

// IsSource reports whether p is a script or markup module.
func IsSource(p string) bool {
	ext := path.Ext(p)
	for _, e := range sourceExts {
		if ext == e {
			return true
		}
	}
	return false
}

// ResolveImport maps a relative specifier imported from file to the
// FileSet key it refers to.
func (f FileSet) ResolveImport(file, spec string) (string, bool) {
	base := path.Join(path.Dir(file), spec)
	candidates := []string{base}
	for _, ext := range sourceExts {
		candidates = append(candidates, base+ext)
	}
	for _, ext := range sourceExts {
		candidates = append(candidates, base+"/index"+ext)
	}
	for _, c := range candidates {
		if _, ok := f[c]; ok {
			return c, true
		}
	}
	return "", false
}

// CheckReferences verifies that every relative import resolves inside the
// set.
func (f FileSet) CheckReferences() error {
	for _, p := range f.Paths() {
		if !IsSource(p) {
			continue
		}
		for _, spec := range Imports(f[p]) {
			if !isRelative(spec) {
				continue
			}
			if _, ok := f.ResolveImport(p, spec); !ok {
				return fmt.Errorf("%s imports %q, which is not generated", p, spec)
			}
		}
	}
	return nil
}

// Packages returns the sorted set of npm packages imported by source files.
func (f FileSet) Packages() []string {
	seen := make(map[string]bool)
	for _, p := range f.Paths() {
		if !IsSource(p) {
			continue
		}
		for _, spec := range Imports(f[p]) {
			if isRelative(spec) {
				continue
			}
			seen[packageName(spec)] = true
		}
	}
	pkgs := make([]string, 0, len(seen))
	for name := range seen {
		pkgs = append(pkgs, name)
	}
	sort.Strings(pkgs)
	return pkgs
}

func isRelative(spec string) bool {
	return strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../")
}

// packageName strips the subpath: "react-dom/client" -> "react-dom",
// "@reduxjs/toolkit/query" -> "@reduxjs/toolkit".
func packageName(spec string) string {
	parts := strings.Split(spec, "/")
	if strings.HasPrefix(spec, "@") && len(parts) > 1 {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}
