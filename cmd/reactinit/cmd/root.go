// Package cmd implements the reactinit command line.
//
// reactinit has a single root command that creates a project directory,
// so there are no subcommands; flags select between prompting, defaults
// and a dry run.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/go-drift/reactinit/cmd/reactinit/internal/install"
	"github.com/go-drift/reactinit/cmd/reactinit/internal/prompt"
	"github.com/go-drift/reactinit/cmd/reactinit/internal/scaffold"
	"github.com/go-drift/reactinit/cmd/reactinit/internal/ui"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// environment is everything a command run touches outside the process.
type environment struct {
	FS billy.Filesystem // rooted at WorkDir
	// WorkDir is the absolute path of FS's root, used for child processes.
	WorkDir     string
	SearchPaths []string // settings file locations

	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Interactive bool // stdin and stdout are terminals
	// Ask runs the questionnaire when Interactive is set.
	Ask func(ctx context.Context, in io.Reader, out io.Writer, defaults scaffold.Config) (scaffold.Config, error)

	Runner install.Runner
	// NewLogger builds the logger once --verbose is known.
	NewLogger func(verbose bool) *slog.Logger
}

func defaultEnvironment() (*environment, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}

	search := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		search = append(search, filepath.Join(home, ".config", "reactinit"))
	}

	return &environment{
		FS:          osfs.New(wd),
		WorkDir:     wd,
		SearchPaths: search,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: ui.IsTerminal(os.Stdin) && ui.IsTerminal(os.Stdout),
		Ask:         prompt.Run,
		Runner:      install.NewExecRunner(),
		NewLogger:   ui.NewLogger,
	}, nil
}

func newRootCommand(env *environment) *cobra.Command {
	opts := &createOptions{}

	root := &cobra.Command{
		Use:   "reactinit <project-name>",
		Short: "Create a new React application",
		Long: `reactinit creates a React application in a new directory named after
the project.

It asks for the language (JavaScript or TypeScript) and which features to
include: Redux Toolkit, Context API, React Router, Tailwind CSS and Axios.
With --yes the questions are skipped and the defaults are used
(JavaScript with Redux, Context and Router).

Settings are read from reactinit.yaml in the current directory or in
~/.config/reactinit, and from REACTINIT_* environment variables.`,
		Example: `  reactinit my-app
  reactinit my-app -y
  reactinit my-app --dry-run -y
  REACTINIT_PACKAGE_MANAGER=pnpm reactinit my-app`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.Context(), env, opts, args[0])
		},
	}
	root.SetIn(env.Stdin)
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)
	root.SetVersionTemplate("reactinit version {{.Version}}\n")

	flags := root.Flags()
	flags.BoolVarP(&opts.yes, "yes", "y", false, "skip prompts and use the default features")
	flags.StringVar(&opts.configFile, "config", "", "settings file (default: reactinit.yaml)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print the project plan as YAML without writing anything")
	flags.BoolVar(&opts.skipInstall, "skip-install", false, "write files but do not run the package manager")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return root
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	env, err := defaultEnvironment()
	if err != nil {
		return err
	}
	return execute(ctx, env, os.Args[1:])
}

// ExitCode maps an error returned by Execute to a process exit status:
// 0 for nil, a distinct code per scaffolding error kind and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch scaffold.KindOf(err) {
	case scaffold.KindInvalidName:
		return 2
	case scaffold.KindAlreadyExists:
		return 3
	case scaffold.KindExternalTool:
		return 4
	case scaffold.KindWrite:
		return 5
	}
	return 1
}

func execute(ctx context.Context, env *environment, args []string) error {
	root := newRootCommand(env)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		ui.NewPrinter(env.Stderr).Error(err)
	}
	return err
}
