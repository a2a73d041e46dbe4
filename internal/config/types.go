// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mkdflags/mkdflags/pkg/legacy"
	"github.com/mkdflags/mkdflags/pkg/mkdflag"
)

const (
	// LegacyModeV2 reads profile.legacy with the v2 bit layout.
	LegacyModeV2 LegacyMode = "v2"
	// LegacyModeNative reads profile.legacy as a current flag bitmap.
	LegacyModeNative LegacyMode = "native"

	// ReportFormatPlain prints one line of names.
	ReportFormatPlain ReportFormat = "plain"
	// ReportFormatHTML prints an HTML table.
	ReportFormatHTML ReportFormat = "html"
	// ReportFormatMarkdown prints a Markdown table.
	ReportFormatMarkdown ReportFormat = "markdown"
	// ReportFormatPretty renders the Markdown table for the terminal.
	ReportFormatPretty ReportFormat = "pretty"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidLegacyMode is returned when a LegacyMode value is not recognized.
	ErrInvalidLegacyMode = errors.New("invalid legacy mode")
	// ErrInvalidReportFormat is returned when a ReportFormat value is not recognized.
	ErrInvalidReportFormat = errors.New("invalid report format")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidProfileConfig is the sentinel error wrapped by InvalidProfileConfigError.
	ErrInvalidProfileConfig = errors.New("invalid profile config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LegacyMode selects how the profile's legacy mask is read.
	LegacyMode string

	// InvalidLegacyModeError is returned when a LegacyMode value is not recognized.
	// It wraps ErrInvalidLegacyMode for errors.Is() compatibility.
	InvalidLegacyModeError struct {
		Value LegacyMode
	}

	// ReportFormat is the default output format of flag reports.
	ReportFormat string

	// InvalidReportFormatError is returned when a ReportFormat value is not recognized.
	// It wraps ErrInvalidReportFormat for errors.Is() compatibility.
	InvalidReportFormatError struct {
		Value ReportFormat
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidProfileConfigError collects field-level errors of a ProfileConfig.
	// It wraps ErrInvalidProfileConfig for errors.Is() compatibility.
	InvalidProfileConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError collects field-level errors from all sub-components.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Profile describes the flag set commands start from.
		Profile ProfileConfig `json:"profile" mapstructure:"profile" toml:"profile"`
		// Report configures report output.
		Report ReportConfig `json:"report" mapstructure:"report" toml:"report"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
	}

	// ProfileConfig describes a flag set. Blank with a zero Legacy mask starts
	// all clear; otherwise Legacy is translated in LegacyMode, so a zero mask
	// gives the defaults in v2 mode and an empty set in native mode. Flags are
	// then applied in order.
	ProfileConfig struct {
		Legacy     uint32     `json:"legacy" mapstructure:"legacy" toml:"legacy"`
		LegacyMode LegacyMode `json:"legacy_mode" mapstructure:"legacy_mode" toml:"legacy_mode"`
		Flags      []string   `json:"flags" mapstructure:"flags" toml:"flags"`
		Blank      bool       `json:"blank" mapstructure:"blank" toml:"blank"`
	}

	// ReportConfig configures report output.
	ReportConfig struct {
		Format ReportFormat `json:"format" mapstructure:"format" toml:"format"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme selects the glamour style for pretty output.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Profile: ProfileConfig{
			LegacyMode: LegacyModeV2,
			Flags:      []string{},
		},
		Report: ReportConfig{Format: ReportFormatPlain},
		UI:     UIConfig{ColorScheme: ColorSchemeAuto},
	}
}

// Error implements the error interface for InvalidLegacyModeError.
func (e *InvalidLegacyModeError) Error() string {
	return fmt.Sprintf("invalid legacy mode %q (valid: v2, native)", e.Value)
}

// Unwrap returns ErrInvalidLegacyMode for errors.Is() compatibility.
func (e *InvalidLegacyModeError) Unwrap() error { return ErrInvalidLegacyMode }

// IsValid returns whether the LegacyMode is a known value. The zero value means v2.
func (m LegacyMode) IsValid() (bool, []error) {
	switch m {
	case "", LegacyModeV2, LegacyModeNative:
		return true, nil
	default:
		return false, []error{&InvalidLegacyModeError{Value: m}}
	}
}

// Translator returns the legacy translator for the mode.
func (m LegacyMode) Translator() (*legacy.Translator, error) {
	mode, err := legacy.ParseMode(string(m))
	if err != nil {
		return nil, &InvalidLegacyModeError{Value: m}
	}
	return legacy.NewTranslator(mode)
}

// Error implements the error interface for InvalidReportFormatError.
func (e *InvalidReportFormatError) Error() string {
	return fmt.Sprintf("invalid report format %q (valid: plain, html, markdown, pretty)", e.Value)
}

// Unwrap returns ErrInvalidReportFormat for errors.Is() compatibility.
func (e *InvalidReportFormatError) Unwrap() error { return ErrInvalidReportFormat }

// IsValid returns whether the ReportFormat is a known value.
func (f ReportFormat) IsValid() (bool, []error) {
	switch f {
	case ReportFormatPlain, ReportFormatHTML, ReportFormatMarkdown, ReportFormatPretty:
		return true, nil
	default:
		return false, []error{&InvalidReportFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the ColorScheme is a known value.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// GlamourStyle maps the scheme onto a glamour standard style name.
func (c ColorScheme) GlamourStyle() string {
	switch c {
	case ColorSchemeDark, ColorSchemeLight:
		return string(c)
	default:
		return "auto"
	}
}

// IsValid returns whether the profile's mode and flag names are valid.
func (p ProfileConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := p.LegacyMode.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if err := mkdflag.Parse(mkdflag.Blank(), strings.Join(p.Flags, ",")); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidProfileConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Build constructs the flag set the profile describes.
func (p ProfileConfig) Build() (*mkdflag.Set, error) {
	tr, err := p.LegacyMode.Translator()
	if err != nil {
		return nil, err
	}

	s := tr.Translate(p.Legacy)
	if p.Blank && p.Legacy == 0 {
		s = mkdflag.Blank()
	}

	if err := mkdflag.Parse(s, strings.Join(p.Flags, ",")); err != nil {
		return nil, err
	}
	return s, nil
}

// Error implements the error interface for InvalidProfileConfigError.
func (e *InvalidProfileConfigError) Error() string {
	return fmt.Sprintf("invalid profile config: %s", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidProfileConfig followed by the field errors, so
// errors.Is matches both the sentinel and the underlying causes.
func (e *InvalidProfileConfigError) Unwrap() []error {
	return append([]error{ErrInvalidProfileConfig}, e.FieldErrors...)
}

// IsValid returns whether every section of the Config is valid.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Profile.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Report.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig followed by the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
