// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestDefaultGlobalConfig(t *testing.T) {
	got := defaultGlobalConfig()
	if got.Prompt != "> " {
		t.Errorf("defaultGlobalConfig().Prompt = %q; want %q", got.Prompt, "> ")
	}
	if got.Mode != expressionMode {
		t.Errorf("defaultGlobalConfig().Mode = %q; want %q", got.Mode, expressionMode)
	}
	if got.Format != textFormat {
		t.Errorf("defaultGlobalConfig().Format = %q; want %q", got.Format, textFormat)
	}
	if err := got.validate(); err != nil {
		t.Errorf("defaultGlobalConfig().validate() = %v; want <nil>", err)
	}
}

func TestGlobalConfigMergeFiles(t *testing.T) {
	dir := t.TempDir()
	var paths [3]string
	paths[0] = filepath.Join(dir, "config1.jwcc")
	config1 := `{
		// Comments and trailing commas are permitted.
		"debug": true,
		"mode": "block",
		"prompt": "lua> ",
	}` + "\n"
	if err := os.WriteFile(paths[0], []byte(config1), 0o666); err != nil {
		t.Fatal(err)
	}
	paths[1] = filepath.Join(dir, "missing.jwcc")
	paths[2] = filepath.Join(dir, "config2.jwcc")
	if err := os.WriteFile(paths[2], []byte(`{"format": "json", "mode": "expression", "unknown": [1, 2]}`+"\n"), 0o666); err != nil {
		t.Fatal(err)
	}

	g := defaultGlobalConfig()
	if err := g.mergeFiles(slices.Values(paths[:])); err != nil {
		t.Error("mergeFiles:", err)
	}
	if !g.Debug {
		t.Error("g.Debug = false; want true (config1.jwcc ignored)")
	}
	if got, want := g.Prompt, "lua> "; got != want {
		t.Errorf("g.Prompt = %q; want %q", got, want)
	}
	if got, want := g.Mode, expressionMode; got != want {
		t.Errorf("g.Mode = %q; want %q", got, want)
	}
	if got, want := g.Format, jsonFormat; got != want {
		t.Errorf("g.Format = %q; want %q", got, want)
	}
}

func TestGlobalConfigMergeFilesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "NotObject", content: `[]`},
		{name: "BadMode", content: `{"mode": "statement"}`},
		{name: "BadFormat", content: `{"format": "yaml"}`},
		{name: "BadSyntax", content: `{"debug": }`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.jwcc")
			if err := os.WriteFile(path, []byte(test.content), 0o666); err != nil {
				t.Fatal(err)
			}
			g := defaultGlobalConfig()
			if err := g.mergeFiles(slices.Values([]string{path})); err == nil {
				t.Errorf("mergeFiles(%q) = <nil>; want error", test.content)
			}
		})
	}
}

func TestGlobalConfigMergeEnvironment(t *testing.T) {
	t.Setenv("NOMLUA_HISTORY", "/tmp/nomlua-history")
	g := defaultGlobalConfig()
	if err := g.mergeEnvironment(); err != nil {
		t.Fatal(err)
	}
	if got, want := g.HistoryFile, "/tmp/nomlua-history"; got != want {
		t.Errorf("g.HistoryFile = %q; want %q", got, want)
	}
}

func TestGlobalConfigValidate(t *testing.T) {
	g := defaultGlobalConfig()
	g.Mode = "statement"
	if err := g.validate(); err == nil {
		t.Error("validate() with unknown mode = <nil>; want error")
	}

	g = defaultGlobalConfig()
	g.HistoryFile = "relative/history"
	if err := g.validate(); err == nil {
		t.Error("validate() with relative history file = <nil>; want error")
	}
}

func TestConfigFiles(t *testing.T) {
	got := slices.Collect(configFiles("/etc/extra.jwcc"))
	if len(got) == 0 || got[len(got)-1] != "/etc/extra.jwcc" {
		t.Errorf("configFiles(\"/etc/extra.jwcc\") = %q; want last element to be the extra file", got)
	}
	for _, path := range got[:len(got)-1] {
		if filepath.Base(path) != "config.jwcc" {
			t.Errorf("configFiles(...) includes %q; want config.jwcc files", path)
		}
	}
}
