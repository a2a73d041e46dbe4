// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/mkdflags/mkdflags/internal/config"
	"github.com/mkdflags/mkdflags/internal/issue"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

// profileFlags are the command-line overrides of the configured profile.
type profileFlags struct {
	legacy string
	mode   string
	set    string
	blank  bool
	format string
}

func (p *profileFlags) addSetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.set, "set", "", "flag list applied last, e.g. \"toc,-links,+nohtml\"")
	cmd.Flags().BoolVar(&p.blank, "blank", false, "start from an empty flag set instead of the defaults")
}

func (p *profileFlags) addLegacyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.mode, "mode", "", "legacy mask layout: v2 or native (default from config)")
}

func (p *profileFlags) addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.format, "format", "f", "", "report format: plain, html, markdown or pretty (default from config)")
}

// profile returns the configured profile with the command-line overrides of
// cmd applied. An explicit --blank discards the configured legacy mask and an
// explicit --legacy discards the configured blank start.
func (p *profileFlags) profile(app *App, cmd *cobra.Command, cfg *config.Config) (config.ProfileConfig, error) {
	profile := cfg.Profile
	profile.Flags = slices.Clone(profile.Flags)
	flags := cmd.Flags()

	if flags.Changed("blank") {
		profile.Blank = p.blank
		profile.Legacy = 0
	}
	if flags.Changed("legacy") {
		mask, err := app.parseMask(p.legacy, cfg.UI.ColorScheme)
		if err != nil {
			return profile, err
		}
		profile.Legacy = mask
		profile.Blank = false
	}
	if flags.Changed("mode") {
		profile.LegacyMode = config.LegacyMode(p.mode)
		if valid, errs := profile.LegacyMode.IsValid(); !valid {
			return profile, app.fail(errs[0], issue.InvalidLegacyModeId, cfg.UI.ColorScheme)
		}
	}
	if p.set != "" {
		profile.Flags = append(profile.Flags, p.set)
	}
	return profile, nil
}

// reportFormat returns --format when given, else the configured format.
func (p *profileFlags) reportFormat(app *App, cmd *cobra.Command, cfg *config.Config) (config.ReportFormat, error) {
	format := cfg.Report.Format
	if cmd.Flags().Changed("format") {
		format = config.ReportFormat(p.format)
	}
	if valid, errs := format.IsValid(); !valid {
		return "", app.fail(errs[0], issue.InvalidReportFormatId, cfg.UI.ColorScheme)
	}
	return format, nil
}
