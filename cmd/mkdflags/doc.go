// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the mkdflags CLI commands.
//
// The root command is executed through fang. Every command receives the App
// composition root, which carries the configuration provider, the logger and
// the output writers, so tests can drive commands without touching the
// process streams.
package cmd
