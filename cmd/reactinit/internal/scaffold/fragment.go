package scaffold

import "strings"

// fragment is one optional piece of a generated file. Files are built from
// ordered fragment lists; disabled fragments drop out before joining.
type fragment struct {
	on    bool
	lines []string
}

func always(lines ...string) fragment {
	return fragment{on: true, lines: lines}
}

func when(on bool, lines ...string) fragment {
	return fragment{on: on, lines: lines}
}

// block renders the enabled fragments one line each, indented by depth
// levels of two spaces.
func block(depth int, frags ...fragment) []string {
	pad := indent(depth)
	var out []string
	for _, f := range frags {
		if !f.on {
			continue
		}
		for _, l := range f.lines {
			if l == "" {
				out = append(out, "")
				continue
			}
			out = append(out, pad+l)
		}
	}
	return out
}

// section is a group of lines separated from its neighbours by a blank
// line. Empty sections vanish.
type section []string

// join assembles sections into a file with a trailing newline.
func join(sections ...section) string {
	var parts []string
	for _, s := range sections {
		if len(s) == 0 {
			continue
		}
		parts = append(parts, strings.Join(s, "\n"))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// wrapper is an element that encloses its children.
type wrapper struct {
	open, close string
}

// nest encloses leaf in the enabled wrappers, outermost first.
func nest(depth int, leaf []string, wrappers ...wrapperFragment) []string {
	var active []wrapper
	for _, w := range wrappers {
		if w.on {
			active = append(active, w.wrapper)
		}
	}

	var out []string
	for i, w := range active {
		out = append(out, indent(depth+i)+w.open)
	}
	inner := indent(depth + len(active))
	for _, l := range leaf {
		out = append(out, inner+l)
	}
	for i := len(active) - 1; i >= 0; i-- {
		out = append(out, indent(depth+i)+active[i].close)
	}
	return out
}

type wrapperFragment struct {
	on bool
	wrapper
}

func wrapIf(on bool, open, close string) wrapperFragment {
	return wrapperFragment{on: on, wrapper: wrapper{open: open, close: close}}
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// jsString quotes s as a single-quoted JavaScript string literal.
func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}
