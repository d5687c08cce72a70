// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/tailscale/hujson"
)

type globalConfig struct {
	Debug       bool         `json:"debug"`
	Prompt      string       `json:"prompt"`
	HistoryFile string       `json:"historyFile"`
	Mode        parseMode    `json:"mode"`
	Format      outputFormat `json:"format"`
}

// defaultGlobalConfig returns the configuration used
// when no file or environment variable overrides it.
func defaultGlobalConfig() *globalConfig {
	g := &globalConfig{
		Prompt: "> ",
		Mode:   expressionMode,
		Format: textFormat,
	}
	if dir := dataDir(); dir != "" {
		g.HistoryFile = filepath.Join(dir, "nomlua", "history")
	}
	return g
}

func (g *globalConfig) mergeEnvironment() error {
	if path := os.Getenv("NOMLUA_HISTORY"); path != "" {
		g.HistoryFile = path
	}
	return nil
}

// configFiles returns the configuration file paths
// in increasing order of preference.
// extra is an additional file to read last, if not empty.
func configFiles(extra string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for dir := range systemConfigDirs() {
			if !yield(filepath.Join(dir, "nomlua", "config.jwcc")) {
				return
			}
		}
		if extra != "" {
			yield(extra)
		}
	}
}

func (g *globalConfig) mergeFiles(paths iter.Seq[string]) error {
	for path := range paths {
		huJSONData, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		jsonData, err := hujson.Standardize(huJSONData)
		if err != nil {
			return fmt.Errorf("read %s: %v", path, err)
		}
		if err := jsonv2.Unmarshal(jsonData, g, jsonv2.RejectUnknownMembers(false)); err != nil {
			return fmt.Errorf("read %s: %v", path, err)
		}
	}

	return nil
}

// UnmarshalJSONFrom unmarshals the configuration object from the JSON decoder,
// merging any fields in the JSON object with existing values.
func (g *globalConfig) UnmarshalJSONFrom(in *jsontext.Decoder) error {
	tok, err := in.ReadToken()
	if err != nil {
		return err
	}
	if got := tok.Kind(); got != '{' {
		return fmt.Errorf("config must be an object not a %v", got)
	}

	for {
		keyToken, err := in.ReadToken()
		if err != nil {
			return err
		}
		switch kind := keyToken.Kind(); kind {
		case '}':
			return nil
		case '"':
			// Keep going.
		default:
			return fmt.Errorf("unexpected non-string key (%v) in object", kind)
		}

		switch k := keyToken.String(); k {
		case "debug":
			if err := jsonv2.UnmarshalDecode(in, &g.Debug); err != nil {
				return fmt.Errorf("unmarshal config.debug: %w", err)
			}
		case "prompt":
			if err := jsonv2.UnmarshalDecode(in, &g.Prompt); err != nil {
				return fmt.Errorf("unmarshal config.prompt: %w", err)
			}
		case "historyFile":
			if err := jsonv2.UnmarshalDecode(in, &g.HistoryFile); err != nil {
				return fmt.Errorf("unmarshal config.historyFile: %w", err)
			}
		case "mode":
			if err := jsonv2.UnmarshalDecode(in, &g.Mode); err != nil {
				return fmt.Errorf("unmarshal config.mode: %w", err)
			}
		case "format":
			if err := jsonv2.UnmarshalDecode(in, &g.Format); err != nil {
				return fmt.Errorf("unmarshal config.format: %w", err)
			}
		default:
			if reject, _ := jsonv2.GetOption(in.Options(), jsonv2.RejectUnknownMembers); reject {
				return fmt.Errorf("unmarshal config: unknown field %q", k)
			}
			if err := in.SkipValue(); err != nil {
				return err
			}
		}
	}
}

func (g *globalConfig) validate() error {
	if err := g.Mode.Set(string(g.Mode)); err != nil {
		return err
	}
	if err := g.Format.Set(string(g.Format)); err != nil {
		return err
	}
	if g.HistoryFile != "" && !filepath.IsAbs(g.HistoryFile) {
		return fmt.Errorf("history file %q is not absolute", g.HistoryFile)
	}
	return nil
}
