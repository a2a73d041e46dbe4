// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

// newShowCommand creates the `mkdflags show` command.
func newShowCommand(app *App) *cobra.Command {
	var pf profileFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a flag set",
		Long: `Show a flag set.

The set starts from the configured profile. --legacy replaces the profile's
legacy mask and is read in --mode; a v2 mask of 0 gives the defaults and a
native mask of 0 gives an empty set. --blank starts from an empty set, and
--set applies a flag list last. Disabled features are marked in the report.`,
		Example: `  mkdflags show
  mkdflags show --set "toc fencedcode -links"
  mkdflags show --legacy 0x00800010 --format html
  mkdflags show --blank --set +nohtml --format pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			profile, err := pf.profile(app, cmd, cfg)
			if err != nil {
				return err
			}
			format, err := pf.reportFormat(app, cmd, cfg)
			if err != nil {
				return err
			}
			s, err := app.buildSet(profile, cfg.UI.ColorScheme)
			if err != nil {
				return err
			}
			return app.writeReport(s, format, cfg.UI.ColorScheme)
		},
	}

	cmd.Flags().StringVar(&pf.legacy, "legacy", "", "legacy flag word to start from, e.g. 0x02001000")
	pf.addLegacyFlags(cmd)
	pf.addSetFlags(cmd)
	pf.addFormatFlag(cmd)

	return cmd
}
