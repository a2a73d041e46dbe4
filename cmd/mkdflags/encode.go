// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/mkdflags/mkdflags/pkg/legacy"
	"github.com/mkdflags/mkdflags/pkg/mkdflag"

	"github.com/spf13/cobra"
)

// newEncodeCommand creates the `mkdflags encode` command.
func newEncodeCommand(app *App) *cobra.Command {
	var pf profileFlags

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a flag set as a legacy v2 flag word",
		Long: `Encode a flag set as a legacy v2 flag word.

The set is built the same way as for 'mkdflags show'. Flags that have no v2
bit cannot be represented and are listed after the word.`,
		Example: `  mkdflags encode --set toc,fencedcode
  mkdflags encode --blank --set latex`,
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
			s, err := app.buildSet(profile, cfg.UI.ColorScheme)
			if err != nil {
				return err
			}

			mask, lost := legacy.Encode(s)
			fmt.Fprintf(app.stdout, "%#010x\n", mask)
			if len(lost) > 0 {
				names := make([]string, len(lost))
				for i, id := range lost {
					names[i] = mkdflag.Name(id)
				}
				app.Logger.Debug("flags without a v2 bit", "flags", names)
				fmt.Fprintf(app.stdout, "%s %s\n", WarningStyle.Render("not representable in v2:"), strings.Join(names, " "))
			}
			return nil
		},
	}

	pf.addSetFlags(cmd)

	return cmd
}
