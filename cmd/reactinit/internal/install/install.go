// Package install runs the external tools that finish a generated project:
// the package manager and, with Tailwind, its config initializer.
package install

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/go-drift/reactinit/cmd/reactinit/internal/scaffold"
	"github.com/go-drift/reactinit/cmd/reactinit/internal/workspace"
)

// Command is one external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes commands. ExecRunner is the real implementation.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
	// LookPath resolves an executable name the way exec.LookPath does.
	LookPath(name string) (string, error)
}

// ExecRunner runs commands as child processes with inherited console I/O.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner attached to the process's own streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// InstallCommand returns the dependency installation command for pm.
func InstallCommand(pm, dir string) Command {
	return Command{Name: pm, Args: []string{"install"}, Dir: dir}
}

// TailwindInitCommand returns the command that generates tailwind.config.js
// and postcss.config.js with pm's package runner.
func TailwindInitCommand(pm, dir string) Command {
	switch pm {
	case "pnpm":
		return Command{Name: "pnpm", Args: []string{"exec", "tailwindcss", "init", "-p"}, Dir: dir}
	case "yarn":
		return Command{Name: "yarn", Args: []string{"tailwindcss", "init", "-p"}, Dir: dir}
	default:
		return Command{Name: "npx", Args: []string{"tailwindcss", "init", "-p"}, Dir: dir}
	}
}

// TailwindConfigFile is written by the Tailwind initializer.
const TailwindConfigFile = "tailwind.config.js"

// TailwindContent is the content glob list written into TailwindConfigFile.
const TailwindContent = "content: ['./public/index.html','./src/**/*.{js,jsx,ts,tsx}']"

var emptyContent = regexp.MustCompile(`content:\s*\[\s*\]`)

// RewriteTailwindContent replaces the first empty content array in a
// Tailwind config with TailwindContent. It reports whether a replacement
// happened.
func RewriteTailwindContent(src string) (string, bool) {
	loc := emptyContent.FindStringIndex(src)
	if loc == nil {
		return src, false
	}
	return src[:loc[0]] + TailwindContent + src[loc[1]:], true
}

// Installer finishes a workspace written by workspace.Create.
type Installer struct {
	Runner         Runner
	PackageManager string
	// AbsDir is the workspace directory as seen by child processes.
	AbsDir string
	Logger *slog.Logger
}

// Preflight checks that the executables used by Install and, when
// tailwind is set, SetupTailwind are on PATH.
func (i *Installer) Preflight(tailwind bool) error {
	names := []string{i.PackageManager}
	if exe := TailwindInitCommand(i.PackageManager, i.AbsDir).Name; tailwind && exe != i.PackageManager {
		names = append(names, exe)
	}
	for _, name := range names {
		path, err := i.Runner.LookPath(name)
		if err != nil {
			return scaffold.ExternalTool("%s not found in PATH: %w", name, err)
		}
		i.Logger.Debug("found executable", "name", name, "path", path)
	}
	return nil
}

// Install runs the package manager's install command.
func (i *Installer) Install(ctx context.Context) error {
	return i.run(ctx, InstallCommand(i.PackageManager, i.AbsDir))
}

// SetupTailwind runs the Tailwind initializer, then points the generated
// config at the project's sources.
func (i *Installer) SetupTailwind(ctx context.Context, ws *workspace.Workspace) error {
	if err := i.run(ctx, TailwindInitCommand(i.PackageManager, i.AbsDir)); err != nil {
		return err
	}

	data, err := ws.ReadFile(TailwindConfigFile)
	if err != nil {
		return scaffold.ExternalTool("tailwind initializer did not produce %s: %w", TailwindConfigFile, err)
	}
	updated, ok := RewriteTailwindContent(string(data))
	if !ok {
		i.Logger.Warn("tailwind config has no empty content array; leaving it unchanged", "file", TailwindConfigFile)
		return nil
	}
	if err := ws.WriteFile(TailwindConfigFile, []byte(updated)); err != nil {
		return err
	}
	i.Logger.Debug("updated tailwind content globs", "file", TailwindConfigFile)
	return nil
}

func (i *Installer) run(ctx context.Context, c Command) error {
	i.Logger.Debug("running command", "command", c.String(), "dir", c.Dir)
	if err := i.Runner.Run(ctx, c); err != nil {
		return scaffold.ExternalTool("%s failed: %w", c, err)
	}
	return nil
}
