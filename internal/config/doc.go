// SPDX-License-Identifier: MPL-2.0

// Package config loads the mkdflags configuration using Viper, with CUE or
// TOML as the file format.
//
// The configuration names a flag profile (a legacy mask, its interpretation
// mode and a flag list), the default report format, and UI preferences. It is
// read from the file given with --config, else config.cue or config.toml in
// the platform config directory (~/.config/mkdflags on Linux), else the
// current directory. Environment variables prefixed MKDFLAGS_ override file
// values, e.g. MKDFLAGS_REPORT_FORMAT=html.
//
// CUE files are validated against the embedded config_schema.cue; TOML files
// are decoded with go-toml and checked by Config.IsValid.
package config
