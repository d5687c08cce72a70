// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

// nomlua parses Lua 5.3 source and prints its syntax tree.
package main

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"
	"zombiezen.com/go/bass/sigterm"
	"zombiezen.com/go/log"
)

func main() {
	rootCommand := &cobra.Command{
		Use:           "nomlua",
		Short:         "Lua 5.3 syntax tree explorer",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	g := defaultGlobalConfig()
	configPath := rootCommand.PersistentFlags().String("config", os.Getenv("NOMLUA_CONFIG"), "read additional configuration from `path`")
	showDebug := rootCommand.PersistentFlags().Bool("debug", false, "show debugging output")
	rootCommand.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := g.mergeFiles(configFiles(*configPath)); err != nil {
			return err
		}
		if err := g.mergeEnvironment(); err != nil {
			return err
		}
		if cmd.Flags().Changed("debug") {
			g.Debug = *showDebug
		}
		initLogging(g.Debug)
		log.Debugf(cmd.Context(), "mode=%s format=%s history=%s", g.Mode, g.Format, g.HistoryFile)
		return g.validate()
	}

	replCommand := newREPLCommand(g)
	rootCommand.RunE = replCommand.RunE
	rootCommand.AddCommand(
		replCommand,
		newParseCommand(g),
		newGrammarCommand(),
	)

	ignoreSIGPIPE()
	ctx, cancel := signal.NotifyContext(context.Background(), sigterm.Signals()...)
	err := rootCommand.ExecuteContext(ctx)
	cancel()
	if err != nil {
		initLogging(g.Debug)
		log.Errorf(context.Background(), "%v", err)
		os.Exit(1)
	}
}

var initLogOnce sync.Once

func initLogging(showDebug bool) {
	initLogOnce.Do(func() {
		minLogLevel := log.Info
		if showDebug {
			minLogLevel = log.Debug
		}
		log.SetDefault(&log.LevelFilter{
			Min:    minLogLevel,
			Output: log.New(os.Stderr, "nomlua: ", log.StdFlags, nil),
		})
	})
}
