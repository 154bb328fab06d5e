package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/reactinit/cmd/reactinit/internal/config"
	"github.com/go-drift/reactinit/cmd/reactinit/internal/install"
	"github.com/go-drift/reactinit/cmd/reactinit/internal/prompt"
	"github.com/go-drift/reactinit/cmd/reactinit/internal/scaffold"
	"github.com/go-drift/reactinit/cmd/reactinit/internal/ui"
	"github.com/go-drift/reactinit/cmd/reactinit/internal/workspace"
)

type createOptions struct {
	yes         bool
	configFile  string
	dryRun      bool
	skipInstall bool
	verbose     bool
}

// runCreate generates a project named name in the working directory:
// validate the name, collect the configuration, resolve files and
// manifest, write them, then install dependencies.
func runCreate(ctx context.Context, env *environment, opts *createOptions, name string) error {
	logger := env.NewLogger(opts.verbose).With("project", name)
	out := ui.NewPrinter(env.Stdout)

	if err := scaffold.ValidateName(name); err != nil {
		return err
	}
	if err := scaffold.CheckTarget(env.FS, name); err != nil {
		return err
	}

	settings, err := config.Load(config.Options{File: opts.configFile, SearchPaths: env.SearchPaths})
	if err != nil {
		return err
	}
	if settings.File != "" {
		logger.Debug("loaded settings", "file", settings.File)
	}

	cfg, err := collectConfig(ctx, env, opts, logger)
	if err != nil {
		return err
	}
	cfg = settings.Apply(cfg)

	files, err := scaffold.Resolve(cfg)
	if err != nil {
		return err
	}
	manifest, err := scaffold.ResolveManifest(cfg, name)
	if err != nil {
		return err
	}
	if err := scaffold.Verify(files, manifest); err != nil {
		return err
	}

	installing := settings.Install && !opts.skipInstall
	absDir := filepath.Join(env.WorkDir, name)

	if opts.dryRun {
		return writePlan(env.Stdout, newPlan(name, settings, cfg, files, manifest, installing, absDir))
	}

	var inst *install.Installer
	if installing {
		inst = &install.Installer{
			Runner:         env.Runner,
			PackageManager: settings.PackageManager,
			AbsDir:         absDir,
			Logger:         logger,
		}
		if err := inst.Preflight(cfg.Features.Tailwind); err != nil {
			return fmt.Errorf("%w (use --skip-install to only write files)", err)
		}
	}

	out.Title("Creating React app: %s", name)
	ws, err := workspace.Create(env.FS, name, files, manifest, logger)
	if err != nil {
		return err
	}
	for _, rel := range ws.Files {
		out.Info("Created %s", rel)
	}
	out.Success("Wrote %d files", len(ws.Files))

	if installing {
		out.Step("Installing dependencies with %s...", settings.PackageManager)
		if err := inst.Install(ctx); err != nil {
			return err
		}
		if cfg.Features.Tailwind {
			out.Step("Initializing Tailwind CSS...")
			if err := inst.SetupTailwind(ctx, ws); err != nil {
				return err
			}
		}
	} else {
		logger.Debug("skipping dependency installation")
		if cfg.Features.Tailwind {
			out.Warn("Tailwind CSS was not initialized; run %q after installing dependencies",
				install.TailwindInitCommand(settings.PackageManager, absDir).String())
		}
	}

	out.Blank()
	out.Success("Project %s created successfully!", name)
	out.NextSteps(name, settings.PackageManager, installing)
	return nil
}

// collectConfig asks the questionnaire, or returns the defaults when
// prompts are skipped or no terminal is attached.
func collectConfig(ctx context.Context, env *environment, opts *createOptions, logger *slog.Logger) (scaffold.Config, error) {
	defaults := scaffold.Defaults()
	if opts.yes {
		return defaults, nil
	}
	if !env.Interactive {
		logger.Warn("no terminal attached; using default features (pass --yes to silence)")
		return defaults, nil
	}

	cfg, err := env.Ask(ctx, env.Stdin, env.Stdout, defaults)
	if errors.Is(err, prompt.ErrAborted) {
		return scaffold.Config{}, fmt.Errorf("cancelled: %w", err)
	}
	return cfg, err
}

// plan is the --dry-run report.
type plan struct {
	Project  string             `yaml:"project"`
	Settings config.Settings    `yaml:"settings"`
	Config   scaffold.Config    `yaml:"config"`
	Files    []string           `yaml:"files"`
	Manifest *scaffold.Manifest `yaml:"manifest"`
	Commands []string           `yaml:"commands,omitempty"`
}

func newPlan(name string, settings config.Settings, cfg scaffold.Config, files scaffold.FileSet, m *scaffold.Manifest, installing bool, absDir string) plan {
	p := plan{
		Project:  name,
		Settings: settings,
		Config:   cfg,
		Files:    append([]string{workspace.ManifestFile}, files.Paths()...),
		Manifest: m,
	}
	if installing {
		p.Commands = append(p.Commands, install.InstallCommand(settings.PackageManager, absDir).String())
		if cfg.Features.Tailwind {
			p.Commands = append(p.Commands, install.TailwindInitCommand(settings.PackageManager, absDir).String())
		}
	}
	return p
}

func writePlan(w io.Writer, p plan) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return enc.Close()
}
