// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mkdflags/mkdflags/internal/config"
	"github.com/mkdflags/mkdflags/internal/issue"
	"github.com/mkdflags/mkdflags/pkg/flagreport"
	"github.com/mkdflags/mkdflags/pkg/mkdflag"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer; every Cobra command handler receives an App.
	App struct {
		Config ConfigProvider
		Logger *log.Logger
		stdout io.Writer
		stderr io.Writer

		// configDir replaces the platform config directory when set.
		configDir string

		// Persistent flags bound by the root command.
		verbose    bool
		configPath string
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
		// ConfigDir overrides the directory searched for config.cue/config.toml.
		ConfigDir string
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates the CLI composition root.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		Logger: log.NewWithOptions(deps.Stderr, log.Options{
			Prefix: config.AppName,
			Level:  log.WarnLevel,
		}),
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		configDir: deps.ConfigDir,
	}, nil
}

func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: a.configPath,
		ConfigDirPath:  a.configDir,
	}
}

// loadConfig loads the configuration and raises the log level when the
// configuration asks for verbose output.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		id := issue.ConfigLoadFailedId
		if errors.Is(err, config.ErrInvalidConfig) {
			id = issue.ConfigInvalidId
		}
		return nil, a.fail(err, id, config.ColorSchemeAuto)
	}

	if cfg.UI.Verbose {
		a.Logger.SetLevel(log.DebugLevel)
	}
	if path, pathErr := config.SourcePath(a.loadOptions()); pathErr == nil && path != "" {
		a.Logger.Debug("configuration loaded", "path", path)
	} else {
		a.Logger.Debug("using default configuration")
	}
	return cfg, nil
}

// buildSet constructs the flag set described by profile.
func (a *App) buildSet(profile config.ProfileConfig, scheme config.ColorScheme) (*mkdflag.Set, error) {
	a.Logger.Debug("building flag set",
		"legacy", fmt.Sprintf("%#010x", profile.Legacy),
		"mode", profile.LegacyMode,
		"blank", profile.Blank,
		"flags", strings.Join(profile.Flags, ","))

	s, err := profile.Build()
	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, config.ErrInvalidLegacyMode):
		return nil, a.fail(err, issue.InvalidLegacyModeId, scheme)
	case errors.Is(err, mkdflag.ErrUnknownFlag):
		return nil, a.fail(err, issue.UnknownFlagId, scheme)
	default:
		return nil, a.fail(err, 0, scheme)
	}
}

// writeReport renders s to stdout in format. The pretty format renders the
// Markdown report through glamour.
func (a *App) writeReport(s *mkdflag.Set, format config.ReportFormat, scheme config.ColorScheme) error {
	if format == config.ReportFormatPretty {
		out, err := glamour.Render(flagreport.String(s, flagreport.ModeMarkdown), scheme.GlamourStyle())
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		_, err = fmt.Fprint(a.stdout, out)
		return err
	}

	mode, err := flagreport.ParseMode(string(format))
	if err != nil {
		return a.fail(&config.InvalidReportFormatError{Value: format}, issue.InvalidReportFormatId, scheme)
	}
	return flagreport.Render(a.stdout, s, mode)
}

// fail renders the issue page for id (when catalogued) to stderr and wraps
// err in an ExitError.
func (a *App) fail(err error, id issue.Id, scheme config.ColorScheme) error {
	if page := issue.Get(id); page != nil {
		rendered, renderErr := page.Render(scheme.GlamourStyle())
		if renderErr != nil {
			a.Logger.Warn("failed to render issue page", "issue", id, "error", renderErr)
		} else {
			fmt.Fprint(a.stderr, rendered)
		}
	}
	return &ExitError{Code: 1, Err: err}
}

// parseMask parses a 32-bit mask in decimal, hex, octal or binary notation.
func (a *App) parseMask(s string, scheme config.ColorScheme) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, a.fail(issue.NewErrorContext().
			WithOperation("parse legacy mask").
			WithResource(s).
			WithSuggestion("Use an unsigned 32-bit value such as 0x02001000").
			Wrap(err).
			BuildError(), issue.InvalidBitmaskId, scheme)
	}
	return uint32(v), nil
}
