// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/mkdflags/mkdflags/pkg/legacy"

	"github.com/spf13/cobra"
)

// newTranslateCommand creates the `mkdflags translate` command.
func newTranslateCommand(app *App) *cobra.Command {
	var pf profileFlags

	cmd := &cobra.Command{
		Use:   "translate MASK",
		Short: "Explain and translate a legacy flag word",
		Long: `Explain and translate a legacy flag word.

Each set bit is listed with what it does to the flag set, followed by the
report of the resulting set. MASK accepts decimal, 0x hex, 0o octal and 0b
binary notation.`,
		Example: `  mkdflags translate 0x02001000
  mkdflags translate 0x00800000 --format markdown
  mkdflags translate --mode native 4096`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			mask, err := app.parseMask(args[0], cfg.UI.ColorScheme)
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

			tr, err := profile.LegacyMode.Translator()
			if err != nil {
				return err
			}
			writeSteps(app, tr, mask)
			fmt.Fprintln(app.stdout)

			return app.writeReport(tr.Translate(mask), format, cfg.UI.ColorScheme)
		},
	}

	pf.addLegacyFlags(cmd)
	pf.addFormatFlag(cmd)

	return cmd
}

// writeSteps prints one line per set bit of mask.
func writeSteps(app *App, tr *legacy.Translator, mask uint32) {
	w := app.stdout
	fmt.Fprintf(w, "%s %s\n", TitleStyle.Render(tr.Mode().String()+" flag word"), CmdStyle.Render(fmt.Sprintf("%#010x", mask)))

	steps := tr.Explain(mask)
	if len(steps) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(no bits set)"))
		return
	}
	for _, step := range steps {
		writeStep(w, tr.Mode(), step)
		if step.Action.Op == legacy.OpNone {
			app.Logger.Debug("ignoring legacy bit", "bit", step.Pos, "name", step.Bit)
		}
	}
}

func writeStep(w io.Writer, mode legacy.Mode, step legacy.Step) {
	action := step.Action.String()
	switch step.Action.Op {
	case legacy.OpNone:
		action = SubtitleStyle.Render(action)
	case legacy.OpClear:
		action = WarningStyle.Render(action)
	}

	if mode == legacy.ModeNative {
		fmt.Fprintf(w, "  bit %2d  %s\n", step.Pos, action)
		return
	}
	fmt.Fprintf(w, "  bit %2d  %s %s\n", step.Pos, CmdStyle.Render(fmt.Sprintf("%-16s", step.Bit)), action)
}
