// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mkdflags/mkdflags/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the mkdflags command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mkdflags",
		Short: "Inspect, translate and report Markdown processor flags",
		Long: TitleStyle.Render("mkdflags") + SubtitleStyle.Render(" - Markdown processor flag sets") + `

mkdflags builds flag sets from names, current bitmaps or legacy v2 flag
words, and prints them as plain text, HTML or Markdown.

` + SubtitleStyle.Render("Examples:") + `
  mkdflags show                      Show the configured flag set
  mkdflags show --set toc,-links     Adjust it by name
  mkdflags translate 0x02001000      Explain a legacy v2 flag word
  mkdflags encode --set fencedcode   Encode a flag set as a v2 word
  mkdflags list                      List every registered flag`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if app.verbose {
				app.Logger.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default is $HOME/.config/mkdflags/config.cue)")

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.AddCommand(newShowCommand(app))
	rootCmd.AddCommand(newTranslateCommand(app))
	rootCmd.AddCommand(newEncodeCommand(app))
	rootCmd.AddCommand(newListCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			var ae *issue.ActionableError
			if errors.As(err, &ae) {
				fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, app.verbose))
				return
			}
			fang.DefaultErrorHandler(w, styles, err)
		}),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
