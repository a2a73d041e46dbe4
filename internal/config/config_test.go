// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mkdflags/mkdflags/internal/issue"
	"github.com/mkdflags/mkdflags/pkg/mkdflag"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func load(t *testing.T, opts LoadOptions) (*Config, error) {
	t.Helper()
	return NewProvider().Load(context.Background(), opts)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Parallel()

	cfg, err := load(t, LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load without file mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCUE(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "config.cue", `
profile: {
	legacy: 0x00001010
	flags: ["fencedcode", "-links"]
}
report: format: "html"
ui: verbose: true
`)

	cfg, err := load(t, LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := DefaultConfig()
	want.Profile.Legacy = 0x1010
	want.Profile.Flags = []string{"fencedcode", "-links"}
	want.Report.Format = ReportFormatHTML
	want.UI.Verbose = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "flags.toml", `
[profile]
legacy = 0x80000000
legacy_mode = "v2"
flags = ["toc"]

[ui]
color_scheme = "dark"
`)

	cfg, err := load(t, LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Profile.Legacy != 0x80000000 {
		t.Errorf("Legacy = %#x, want 0x80000000", cfg.Profile.Legacy)
	}
	if diff := cmp.Diff([]string{"toc"}, cfg.Profile.Flags); diff != "" {
		t.Errorf("Flags mismatch (-want +got):\n%s", diff)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("ColorScheme = %q, want dark", cfg.UI.ColorScheme)
	}
	if cfg.Report.Format != ReportFormatPlain {
		t.Errorf("Report.Format = %q, want default plain", cfg.Report.Format)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		content  string
		wantText string
	}{
		{name: "cue schema violation", file: "a.cue", content: `report: format: "pdf"`, wantText: "report.format"},
		{name: "cue unknown field", file: "b.cue", content: `colour: "red"`, wantText: "colour"},
		{name: "cue legacy out of range", file: "c.cue", content: `profile: legacy: 0x100000000`, wantText: "profile.legacy"},
		{name: "toml unknown key", file: "d.toml", content: "[report]\nstyle = \"x\"\n", wantText: "style"},
		{name: "toml bad syntax", file: "e.toml", content: "[profile\n", wantText: "e.toml"},
		{name: "unknown flag name", file: "f.cue", content: `profile: flags: ["wibble"]`, wantText: "wibble"},
		{name: "toml invalid format", file: "g.toml", content: "[report]\nformat = \"pdf\"\n", wantText: "pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			_, err := load(t, LoadOptions{ConfigFilePath: path})
			if err == nil {
				t.Fatal("expected an error")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error is not actionable: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("error %q does not mention %q", err, tt.wantText)
			}
		})
	}
}

func TestLoadUnknownFlagIsDetectable(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "config.cue", `profile: flags: ["+bogus"]`)
	_, err := load(t, LoadOptions{ConfigFilePath: path})
	if !errors.Is(err, mkdflag.ErrUnknownFlag) {
		t.Errorf("error = %v, want it to wrap ErrUnknownFlag", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want it to wrap ErrInvalidConfig", err)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := load(t, LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "nope.cue")})
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("error = %v, want config file not found", err)
	}
}

func TestLoadCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load with canceled context = %v", err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MKDFLAGS_REPORT_FORMAT", "markdown")

	cfg, err := load(t, LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Report.Format != ReportFormatMarkdown {
		t.Errorf("Report.Format = %q, want markdown from environment", cfg.Report.Format)
	}
}

func TestSourcePathPrefersCUE(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "config.toml", "")
	cuePath := writeFile(t, dir, "config.cue", "")

	got, err := SourcePath(LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("SourcePath error: %v", err)
	}
	if got != cuePath {
		t.Errorf("SourcePath = %q, want %q", got, cuePath)
	}
}

func TestConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if got != dir {
		t.Errorf("ConfigDir() = %q, want %q", got, dir)
	}
}

func TestCreateDefaultConfigRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := CreateDefaultConfig(dir)
	if err != nil {
		t.Fatalf("CreateDefaultConfig error: %v", err)
	}
	if filepath.Base(path) != "config.cue" {
		t.Errorf("created %q, want config.cue", path)
	}

	cfg, err := load(t, LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loading generated config: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("generated config mismatch (-want +got):\n%s", diff)
	}

	again, err := CreateDefaultConfig(dir)
	if err != nil || again != path {
		t.Errorf("second CreateDefaultConfig = %q, %v; want existing %q", again, err, path)
	}
}

func TestGenerateCUEParses(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Profile.Legacy = 0x80800010
	cfg.Profile.LegacyMode = LegacyModeNative
	cfg.Profile.Flags = []string{"toc", "-links"}
	cfg.Report.Format = ReportFormatPretty

	dir := t.TempDir()
	writeFile(t, dir, "config.cue", GenerateCUE(cfg))
	got, err := load(t, LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loading generated CUE: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("CUE round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateTOMLParses(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Profile.Legacy = 0x10
	cfg.Profile.Flags = []string{"+nohtml"}
	cfg.UI.ColorScheme = ColorSchemeLight

	out, err := GenerateTOML(cfg)
	if err != nil {
		t.Fatalf("GenerateTOML error: %v", err)
	}
	path := writeFile(t, t.TempDir(), "config.toml", out)
	got, err := load(t, LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("loading generated TOML: %v\n%s", err, out)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("TOML round trip mismatch (-want +got):\n%s", diff)
	}
}
