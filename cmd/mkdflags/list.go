// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mkdflags/mkdflags/pkg/legacy"
	"github.com/mkdflags/mkdflags/pkg/mkdflag"

	"github.com/spf13/cobra"
)

// newListCommand creates the `mkdflags list` command.
func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every registered flag",
		Long: `List every registered flag in report order.

Negated flags disable a feature when set; their report name is the feature
and flag lists accept both spellings (links, nolinks). The v2 column lists
the legacy bits that set the flag; a leading '!' marks a bit that clears it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeRegistry(app)
			return nil
		},
	}
}

func writeRegistry(app *App) {
	w := app.stdout
	defaults := mkdflag.New()
	v2Bits := legacyBitsByFlag()

	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("%-3s %-18s %-8s %-8s %s", "ID", "NAME", "NEGATED", "DEFAULT", "V2 BITS")))
	for _, e := range mkdflag.Registry() {
		negated := ""
		if e.Negated {
			negated = "yes"
		}
		def := ""
		if defaults.IsSet(e.ID) {
			def = "set"
		}
		bits := strings.Join(v2Bits[e.ID], ",")
		if bits == "" {
			bits = disabledStyle.Render("-")
		}
		fmt.Fprintf(w, "%-3d %s %-8s %-8s %s\n", e.ID, CmdStyle.Render(fmt.Sprintf("%-18s", e.Name)), negated, def, bits)
	}
}

// legacyBitsByFlag indexes the v2 table by destination flag.
func legacyBitsByFlag() map[mkdflag.ID][]string {
	m := make(map[mkdflag.ID][]string)
	for pos, a := range legacy.Table() {
		switch a.Op {
		case legacy.OpSet:
			m[a.Flag] = append(m[a.Flag], strconv.Itoa(pos))
		case legacy.OpClear:
			m[a.Flag] = append(m[a.Flag], "!"+strconv.Itoa(pos))
		}
	}
	return m
}
