// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mkdflags/mkdflags/internal/issue"
	"github.com/mkdflags/mkdflags/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "mkdflags"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// EnvPrefix prefixes environment overrides (MKDFLAGS_REPORT_FORMAT).
	EnvPrefix = "MKDFLAGS"

	extCUE  = ".cue"
	extTOML = ".toml"
)

//go:embed config_schema.cue
var configSchema []byte

// ConfigDir returns the mkdflags configuration directory: %APPDATA% on
// Windows, ~/Library/Application Support on macOS, $XDG_CONFIG_HOME
// (default ~/.config) elsewhere.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, AppName), nil
}

// SourcePath returns the file Load would read for opts, or "" when the
// defaults would be used.
func SourcePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", err
		}
	}

	for _, base := range []string{dir, "."} {
		for _, ext := range []string{extCUE, extTOML} {
			p := filepath.Join(base, ConfigFileName+ext)
			if fileExists(p) {
				return p, nil
			}
		}
	}
	return "", nil
}

// loadWithOptions reads defaults, the resolved config file and environment
// overrides, in increasing priority, and validates the result.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := newViper()

	path, err := SourcePath(opts)
	if err != nil {
		return nil, "", err
	}
	if opts.ConfigFilePath != "" && !fileExists(path) {
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Run 'mkdflags config init' to create a default configuration").
			Wrap(fmt.Errorf("config file not found: %s", path)).
			BuildError()
	}

	if path != "" {
		if err := mergeFile(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid " + strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), "."))).
				WithSuggestion("Compare it with the output of 'mkdflags config dump'").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Run 'mkdflags list' for the registered flag names").
			Wrap(errs[0]).
			BuildError()
	}

	return &cfg, path, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	d := DefaultConfig()
	v.SetDefault("profile.legacy", d.Profile.Legacy)
	v.SetDefault("profile.legacy_mode", string(d.Profile.LegacyMode))
	v.SetDefault("profile.flags", d.Profile.Flags)
	v.SetDefault("profile.blank", d.Profile.Blank)
	v.SetDefault("report.format", string(d.Report.Format))
	v.SetDefault("ui.color_scheme", string(d.UI.ColorScheme))
	v.SetDefault("ui.verbose", d.UI.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// mergeFile decodes a CUE or TOML file and merges it over v's defaults.
func mergeFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var m map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case extTOML:
		m, err = decodeTOML(data, path)
	default:
		m, err = decodeCUE(data, path)
	}
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(m); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// decodeCUE validates data against #Config. Fields are optional, so the
// document is not required to be concrete.
func decodeCUE(data []byte, path string) (map[string]any, error) {
	res, err := cueutil.ParseAndDecode[map[string]any](configSchema, data, "#Config",
		cueutil.WithFilename(path),
		cueutil.WithConcrete(false),
	)
	if err != nil {
		return nil, err
	}
	return *res.Value, nil
}

// decodeTOML rejects unknown keys and mistyped values by decoding strictly
// into Config before returning the generic map viper merges.
func decodeTOML(data []byte, path string) (map[string]any, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return nil, err
	}

	var typed Config
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&typed); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, len(strict.Errors))
			for i, e := range strict.Errors {
				keys[i] = strings.Join(e.Key(), ".")
			}
			return nil, fmt.Errorf("%s: unknown keys %s: %w", path, strings.Join(keys, ", "), err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes config.cue with the default configuration into
// dir (ConfigDir when empty) unless a config file already exists there. It
// returns the path of the file.
func CreateDefaultConfig(dir string) (string, error) {
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	for _, ext := range []string{extCUE, extTOML} {
		if p := filepath.Join(dir, ConfigFileName+ext); fileExists(p) {
			return p, nil
		}
	}

	path := filepath.Join(dir, ConfigFileName+extCUE)
	if err := os.WriteFile(path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}

// GenerateCUE renders cfg as a CUE document accepted by the schema.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// mkdflags configuration\n\n")

	sb.WriteString("profile: {\n")
	fmt.Fprintf(&sb, "\tlegacy:      %#010x\n", cfg.Profile.Legacy)
	fmt.Fprintf(&sb, "\tlegacy_mode: %q\n", legacyModeOrDefault(cfg.Profile.LegacyMode))
	sb.WriteString("\tflags: [")
	for i, f := range cfg.Profile.Flags {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q", f)
	}
	sb.WriteString("]\n")
	fmt.Fprintf(&sb, "\tblank: %v\n", cfg.Profile.Blank)
	sb.WriteString("}\n")

	sb.WriteString("\nreport: {\n")
	fmt.Fprintf(&sb, "\tformat: %q\n", cfg.Report.Format)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}

// GenerateTOML renders cfg as a TOML document.
func GenerateTOML(cfg *Config) (string, error) {
	out := *cfg
	out.Profile.LegacyMode = legacyModeOrDefault(out.Profile.LegacyMode)
	if out.Profile.Flags == nil {
		out.Profile.Flags = []string{}
	}
	b, err := toml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to encode config as TOML: %w", err)
	}
	return string(b), nil
}

func legacyModeOrDefault(m LegacyMode) LegacyMode {
	if m == "" {
		return LegacyModeV2
	}
	return m
}
