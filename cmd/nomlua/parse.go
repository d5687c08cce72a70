// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"nomlua.256lights.llc/pkg/ast"
	"nomlua.256lights.llc/pkg/internal/lualex"
	"nomlua.256lights.llc/pkg/luaparse"
	"zombiezen.com/go/log"
)

type parseOptions struct {
	mode   parseMode
	format outputFormat
	exprs  []string
	files  []string
}

func newParseCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "parse [options] [FILE [...]]",
		Short:                 "print the syntax tree of Lua source",
		Args:                  cobra.ArbitraryArgs,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	opts := new(parseOptions)
	block := c.Flags().Bool("block", false, "parse statements instead of a single expression")
	c.Flags().Var(&opts.format, "format", "output `format` (text, json, or dot)")
	c.Flags().StringArrayVarP(&opts.exprs, "expr", "e", nil, "parse the Lua source `code` instead of reading a file")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		opts.files = args
		opts.mode = g.Mode
		if cmd.Flags().Changed("block") {
			opts.mode = expressionMode
			if *block {
				opts.mode = blockMode
			}
		}
		if !cmd.Flags().Changed("format") {
			opts.format = g.Format
		}
		return runParse(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	}
	return c
}

// parseSource is a named piece of Lua source.
type parseSource struct {
	name string
	// read returns the source text.
	read func() ([]byte, error)
}

type parseResult struct {
	tree ast.Node
	err  error
}

func runParse(ctx context.Context, stdin io.Reader, stdout io.Writer, opts *parseOptions) error {
	var sources []parseSource
	for i, expr := range opts.exprs {
		sources = append(sources, parseSource{
			name: fmt.Sprintf("-e #%d", i+1),
			read: func() ([]byte, error) { return []byte(expr), nil },
		})
	}
	files := opts.files
	if len(files) == 0 && len(opts.exprs) == 0 {
		files = []string{"-"}
	}
	readStdin := false
	for _, path := range files {
		if path == "-" {
			if readStdin {
				return fmt.Errorf("standard input given more than once")
			}
			readStdin = true
			sources = append(sources, parseSource{
				name: "<stdin>",
				read: func() ([]byte, error) { return io.ReadAll(stdin) },
			})
			continue
		}
		sources = append(sources, parseSource{
			name: path,
			read: func() ([]byte, error) { return os.ReadFile(path) },
		})
	}

	results := make([]parseResult, len(sources))
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		grp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}
			data, err := src.read()
			if err != nil {
				// I/O failures stop the whole run.
				return err
			}
			results[i].tree, results[i].err = parseSourceText(opts.mode, src.name, data)
			log.Debugf(grpCtx, "Parsed %s (%d bytes)", src.name, len(data))
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	failures := 0
	buf := new(bytes.Buffer)
	for i, result := range results {
		if result.err != nil {
			log.Errorf(ctx, "%v", result.err)
			failures++
			continue
		}
		buf.Reset()
		if err := opts.format.write(buf, result.tree); err != nil {
			return fmt.Errorf("%s: %v", sources[i].name, err)
		}
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d sources failed to parse", failures, len(sources))
	}
	return nil
}

// parseSourceText parses data with the rule for mode
// and annotates a failure with its line and column.
func parseSourceText(mode parseMode, name string, data []byte) (ast.Node, error) {
	tree, err := parseInput(mode, data)
	if err != nil {
		var e *luaparse.Error
		if errors.As(err, &e) {
			return nil, fmt.Errorf("%s:%v: %s", name, lualex.PositionOf(data, e.Offset), e.Msg)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tree, nil
}
