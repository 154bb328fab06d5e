// Package ui renders user-facing progress lines and builds the command
// logger.
package ui

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette colors use ANSI 256-color codes for broad terminal support.
var (
	colorSuccess = lipgloss.Color("42")
	colorError   = lipgloss.Color("196")
	colorWarn    = lipgloss.Color("214")
	colorAccent  = lipgloss.Color("39")
	colorFaint   = lipgloss.Color("245")
)

// Printer writes styled status lines. Styling is dropped when the output
// is not a terminal.
type Printer struct {
	out io.Writer

	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warn    lipgloss.Style
	step    lipgloss.Style
	faint   lipgloss.Style
}

// NewPrinter returns a printer writing to out. Colors are enabled only
// when out is a terminal file.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:     out,
		title:   r.NewStyle().Bold(true).Foreground(colorAccent),
		success: r.NewStyle().Bold(true).Foreground(colorSuccess),
		failure: r.NewStyle().Bold(true).Foreground(colorError),
		warn:    r.NewStyle().Foreground(colorWarn),
		step:    r.NewStyle().Foreground(colorAccent),
		faint:   r.NewStyle().Foreground(colorFaint),
	}
}

// Title prints a heading line.
func (p *Printer) Title(format string, args ...any) {
	fmt.Fprintln(p.out, p.title.Render(fmt.Sprintf(format, args...)))
}

// Step announces a unit of work that is about to start.
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.step.Render("→"), fmt.Sprintf(format, args...))
}

// Info prints an indented, de-emphasized detail line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.out, p.faint.Render("  "+fmt.Sprintf(format, args...)))
}

// Success prints a completion line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.success.Render("✔"), fmt.Sprintf(format, args...))
}

// Warn prints a non-fatal problem.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.warn.Render("!"), fmt.Sprintf(format, args...))
}

// Error prints a fatal problem.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.out, "%s %v\n", p.failure.Render("✘ Error:"), err)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

// NextSteps prints the commands that start the generated project.
func (p *Printer) NextSteps(dir, packageManager string, installed bool) {
	p.Blank()
	p.Title("Next steps:")
	fmt.Fprintf(p.out, "  cd %s\n", dir)
	if !installed {
		fmt.Fprintf(p.out, "  %s install\n", packageManager)
	}
	fmt.Fprintf(p.out, "  %s start\n", packageManager)
}

// NewLogger creates the structured logger for a command run. When stderr
// is a terminal it uses slog.TextHandler, otherwise slog.JSONHandler so
// piped output stays machine-readable. Verbose lowers the level to Debug.
func NewLogger(verbose bool) *slog.Logger {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), verbose)
}

func newLogger(w io.Writer, tty, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if tty {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
