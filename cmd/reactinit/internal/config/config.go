// Package config loads reactinit's own settings: which package manager to
// drive and the URLs written into generated projects.
//
// Priority order: environment (REACTINIT_*) > settings file > defaults.
// The settings file is optional unless named explicitly with --config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/go-drift/reactinit/cmd/reactinit/internal/scaffold"
)

// EnvPrefix is the prefix of environment overrides, e.g.
// REACTINIT_PACKAGE_MANAGER=pnpm.
const EnvPrefix = "REACTINIT"

// Settings represents reactinit.yaml.
type Settings struct {
	PackageManager string `mapstructure:"package_manager" yaml:"package_manager" validate:"oneof=npm pnpm yarn"`
	Install        bool   `mapstructure:"install" yaml:"install"`
	ProbeURL       string `mapstructure:"probe_url" yaml:"probe_url" validate:"required,url"`
	APIURL         string `mapstructure:"api_url" yaml:"api_url" validate:"required,url"`

	// File is the settings file that was read, if any.
	File string `mapstructure:"-" yaml:"-"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		PackageManager: "npm",
		Install:        true,
		ProbeURL:       scaffold.DefaultProbeURL,
		APIURL:         scaffold.DefaultAPIURL,
	}
}

// Options controls where Load looks.
type Options struct {
	// File is an explicit settings file. When set it must exist.
	File string
	// SearchPaths are directories searched for reactinit.yaml (or
	// reactinit.yml) when File is empty.
	SearchPaths []string
}

// Load resolves settings from defaults, the optional settings file and
// the environment, then validates them.
func Load(opts Options) (Settings, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("package_manager", def.PackageManager)
	v.SetDefault("install", def.Install)
	v.SetDefault("probe_url", def.ProbeURL)
	v.SetDefault("api_url", def.APIURL)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	file := opts.File
	if file == "" {
		found, err := findSettingsFile(opts.SearchPaths)
		if err != nil {
			return Settings{}, err
		}
		file = found
	}
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	s.File = v.ConfigFileUsed()

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// settingsFileNames are looked up, in order, in each search path. Only
// names with a YAML extension count, so an executable called reactinit
// next to the project is never mistaken for settings.
var settingsFileNames = []string{"reactinit.yaml", "reactinit.yml"}

// findSettingsFile returns the first settings file in dirs, or "" when
// there is none.
func findSettingsFile(dirs []string) (string, error) {
	for _, dir := range dirs {
		for _, name := range settingsFileNames {
			path := filepath.Join(dir, name)
			info, err := os.Stat(path)
			switch {
			case err == nil && !info.IsDir():
				return path, nil
			case err != nil && !errors.Is(err, fs.ErrNotExist):
				return "", fmt.Errorf("failed to inspect settings file %s: %w", path, err)
			}
		}
	}
	return "", nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports the first failure by its
// settings key.
func (s Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid setting %s=%q (%s %s)", settingKey(fe.StructField()), fmt.Sprint(fe.Value()), fe.Tag(), fe.Param())
	}
	return fmt.Errorf("invalid settings: %w", err)
}

func settingKey(field string) string {
	switch field {
	case "PackageManager":
		return "package_manager"
	case "ProbeURL":
		return "probe_url"
	case "APIURL":
		return "api_url"
	}
	return strings.ToLower(field)
}

// Apply copies the settings that shape generated files into cfg.
func (s Settings) Apply(cfg scaffold.Config) scaffold.Config {
	cfg.ProbeURL = s.ProbeURL
	cfg.APIURL = s.APIURL
	return cfg
}
