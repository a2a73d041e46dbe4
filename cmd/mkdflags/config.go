// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkdflags/mkdflags/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `mkdflags config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mkdflags configuration",
		Long: `Manage mkdflags configuration.

Configuration is read from config.cue or config.toml in:
  - Linux: ~/.config/mkdflags/
  - macOS: ~/Library/Application Support/mkdflags/
  - Windows: %APPDATA%\mkdflags\
  - the current directory

MKDFLAGS_* environment variables override file values, e.g.
MKDFLAGS_REPORT_FORMAT=html.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig(app.configDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.stdout, "%s Configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	var dumpFormat string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}

			switch strings.ToLower(dumpFormat) {
			case "cue":
				fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			case "toml":
				out, err := config.GenerateTOML(cfg)
				if err != nil {
					return err
				}
				fmt.Fprint(app.stdout, out)
			default:
				return fmt.Errorf("unsupported dump format %q (valid: cue, toml)", dumpFormat)
			}
			return nil
		},
	}
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "cue", "output format: cue or toml")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	path, err := config.SourcePath(app.loadOptions())
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	}
	fmt.Fprintln(w)

	flags := SubtitleStyle.Render("(none)")
	if len(cfg.Profile.Flags) > 0 {
		flags = valueStyle.Render(strings.Join(cfg.Profile.Flags, ", "))
	}

	fmt.Fprintf(w, "%s:\n", keyStyle.Render("profile"))
	fmt.Fprintf(w, "  legacy: %s\n", valueStyle.Render(fmt.Sprintf("%#010x", cfg.Profile.Legacy)))
	fmt.Fprintf(w, "  legacy_mode: %s\n", valueStyle.Render(string(cfg.Profile.LegacyMode)))
	fmt.Fprintf(w, "  flags: %s\n", flags)
	fmt.Fprintf(w, "  blank: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.Profile.Blank)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("report"))
	fmt.Fprintf(w, "  format: %s\n", valueStyle.Render(string(cfg.Report.Format)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func showConfigPath(app *App) error {
	cfgDir := app.configDir
	if cfgDir == "" {
		var err error
		if cfgDir, err = config.ConfigDir(); err != nil {
			return err
		}
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)

	path, err := config.SourcePath(app.loadOptions())
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintf(app.stdout, "Config file: %s\n", SubtitleStyle.Render("(none, using defaults)"))
		return nil
	}
	fmt.Fprintf(app.stdout, "Config file: %s\n", path)
	return nil
}
