// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"nomlua.256lights.llc/pkg/luaparse"
	"zombiezen.com/go/log"
)

func newGrammarCommand() *cobra.Command {
	c := &cobra.Command{
		Use:                   "grammar [--check]",
		Short:                 "print the EBNF grammar of the accepted language",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	check := c.Flags().Bool("check", false, "verify the grammar instead of printing it")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		return runGrammar(cmd.Context(), cmd.OutOrStdout(), *check)
	}
	return c
}

func runGrammar(ctx context.Context, stdout io.Writer, check bool) error {
	if !check {
		_, err := io.WriteString(stdout, luaparse.Grammar)
		return err
	}
	g, err := luaparse.ParseGrammar()
	if err != nil {
		return err
	}
	log.Infof(ctx, "Grammar OK (%d productions, start %s)", len(g), luaparse.GrammarStart)
	return nil
}
