package scaffold

import (
	"fmt"

	"github.com/go-drift/reactinit/cmd/reactinit/internal/templates"
)

type extKind int

const (
	extNone extKind = iota
	extScript
	extMarkup
)

// staticFile is a file copied or rendered from the embedded templates.
type staticFile struct {
	dest string // destination without extension for extScript/extMarkup
	ext  extKind
	src  string
	on   func(Config) bool
}

func anyConfig(Config) bool { return true }

func withRedux(c Config) bool { return c.Features.Redux }

func withContext(c Config) bool { return c.Features.Context }

func typed(c Config) bool { return c.Language == TypeScript }

var staticFiles = []staticFile{
	{dest: "public/index.html", src: "public/index.html", on: anyConfig},
	{dest: "public/manifest.json", src: "public/manifest.json", on: anyConfig},
	{dest: "src/styles/App.css", src: "src/styles/App.css", on: anyConfig},
	{dest: "src/utils/constants", ext: extScript, src: "src/utils/constants.tmpl", on: anyConfig},
	{dest: ".env", src: "root/env.tmpl", on: anyConfig},
	{dest: ".gitignore", src: "root/gitignore", on: anyConfig},
	{dest: "tsconfig.json", src: "root/tsconfig.json", on: typed},

	{dest: "src/context/ThemeContext", ext: extMarkup, src: "src/context/ThemeContext.tmpl", on: withContext},
	{dest: "src/context/NotificationContext", ext: extMarkup, src: "src/context/NotificationContext.tmpl", on: withContext},
	{dest: "src/components/common/NotificationList", ext: extMarkup, src: "src/components/common/NotificationList.tmpl", on: withContext},

	{dest: "src/store/index", ext: extScript, src: "src/store/index.tmpl", on: withRedux},
	{dest: "src/store/slices/counterSlice", ext: extScript, src: "src/store/slices/counterSlice.tmpl", on: withRedux},
	{dest: "src/hooks/useCounter", ext: extScript, src: "src/hooks/useCounter.tmpl", on: withRedux},
}

var tailwindDirectives = []string{
	"@tailwind base;",
	"@tailwind components;",
	"@tailwind utilities;",
}

// resolver carries one configuration through the per-file generators.
type resolver struct {
	cfg  Config
	lang Language
	f    Features
}

func (r resolver) path(dest string, kind extKind) string {
	switch kind {
	case extScript:
		return dest + r.lang.ScriptExt()
	case extMarkup:
		return dest + r.lang.MarkupExt()
	}
	return dest
}

// Resolve returns every file of the project described by cfg. The result
// depends only on cfg: equal configs give equal file sets.
func Resolve(cfg Config) (FileSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	r := resolver{cfg: cfg, lang: cfg.Language, f: cfg.Features}

	data := templates.TemplateData{
		TypeScript: cfg.Language == TypeScript,
		APIURL:     cfg.APIURL,
	}

	files := make(FileSet)
	for _, sf := range staticFiles {
		if !sf.on(cfg) {
			continue
		}
		content, err := templates.Render(sf.src, data)
		if err != nil {
			return nil, err
		}
		files[r.path(sf.dest, sf.ext)] = content
	}

	base, err := templates.Render("src/styles/base.css", data)
	if err != nil {
		return nil, err
	}
	files["src/styles/index.css"] = r.indexCSS(base)

	files[r.path("src/index", extMarkup)] = r.entry()
	files[r.path("src/App", extMarkup)] = r.app()
	files[r.path("src/components/Navbar", extMarkup)] = r.navbar()
	files[r.path("src/components/Home", extMarkup)] = r.home()

	if err := files.Validate(); err != nil {
		return nil, err
	}
	if err := files.CheckReferences(); err != nil {
		return nil, fmt.Errorf("inconsistent file set: %w", err)
	}
	return files, nil
}

// indexCSS prefixes the base rules with the Tailwind directives when
// styling is enabled. The base rules themselves never change.
func (r resolver) indexCSS(base string) string {
	if !r.f.Tailwind {
		return base
	}
	return join(section(tailwindDirectives)) + "\n" + base
}
