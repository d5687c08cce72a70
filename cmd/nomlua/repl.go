// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"nomlua.256lights.llc/pkg/ast"
	"nomlua.256lights.llc/pkg/luaparse"
	"zombiezen.com/go/log"
)

const continuationPrompt = ">> "

func newREPLCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "repl",
		Short:                 "parse lines read from standard input",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
			return runInteractiveREPL(cmd.Context(), g)
		}
		return runREPL(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), g)
	}
	return c
}

// runREPL parses each line of r as a chunk
// and writes the result and a prompt to w.
func runREPL(ctx context.Context, r io.Reader, w io.Writer, g *globalConfig) error {
	s := bufio.NewScanner(r)
	s.Buffer(nil, 1<<20)
	for s.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(w, evalLine(ctx, g.Mode, s.Bytes())); err != nil {
			return err
		}
		if _, err := io.WriteString(w, g.Prompt); err != nil {
			return err
		}
	}
	return s.Err()
}

// evalLine parses a chunk and formats the result line.
func evalLine(ctx context.Context, mode parseMode, src []byte) string {
	n, err := parseInput(mode, src)
	if err != nil {
		log.Debugf(ctx, "%v", err)
		return "ERROR: Parse Error\n"
	}
	return "EVAL: " + n.String() + "\n"
}

// parseInput parses src to the end with the rule for mode.
func parseInput(mode parseMode, src []byte) (ast.Node, error) {
	if mode == blockMode {
		block, err := luaparse.ParseBlockChunk(src)
		if err != nil {
			return nil, err
		}
		return block, nil
	}
	return luaparse.ParseExpressionChunk(src)
}

func runInteractiveREPL(ctx context.Context, g *globalConfig) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetMultiLineMode(true)

	if g.HistoryFile != "" {
		if f, err := os.Open(g.HistoryFile); err == nil {
			_, err = ln.ReadHistory(f)
			f.Close()
			if err != nil {
				log.Warnf(ctx, "Reading history: %v", err)
			}
		}
		defer func() {
			if err := writeHistory(ln, g.HistoryFile); err != nil {
				log.Warnf(ctx, "Saving history: %v", err)
			}
		}()
	}

	for ctx.Err() == nil {
		src, ok := readChunk(ln, g)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		fmt.Print(evalLine(ctx, g.Mode, []byte(src)))
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
	return ctx.Err()
}

// readChunk reads lines until they form a complete chunk
// or fail for a reason other than reaching the end of input.
// It reports false when the user ends the session.
func readChunk(ln *liner.State, g *globalConfig) (string, bool) {
	sb := new(strings.Builder)
	for {
		prompt := g.Prompt
		if sb.Len() > 0 {
			prompt = continuationPrompt
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			sb.Reset()
			continue
		}
		if err != nil {
			return "", false
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)

		src := sb.String()
		if _, err := parseInput(g.Mode, []byte(src)); luaparse.IsIncomplete(err) && strings.TrimSpace(line) != "" {
			continue
		}
		return src, true
	}
}

func writeHistory(ln *liner.State, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = ln.WriteHistory(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
