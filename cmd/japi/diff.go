// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newDiffCmd(cfg *Config) *cobra.Command {
	var context int
	var color bool
	cmd := &cobra.Command{
		Use:   "diff A B",
		Short: "Show the line differences between two files",
		Long: `Diff prints the differences between two files as a unified diff,
computed with the Myers algorithm. It exits with an error status if the
files differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := cfg.open(args[0])
			if err != nil {
				return err
			}
			b, err := cfg.open(args[1])
			if err != nil {
				return err
			}
			ds := a.Diffs(b)
			if len(ds) == 0 {
				return nil
			}
			ud := ds.Unified(a.Strings(), b.Strings(), args[0], args[1], context)
			w := cmd.OutOrStdout()
			if color {
				err = writeColorDiff(w, ud, termenv.NewOutput(os.Stdout).Profile)
			} else {
				_, err = io.WriteString(w, ud)
			}
			if err != nil {
				return err
			}
			na, nb := ds.NumChanged()
			return fmt.Errorf("files differ: %d lines removed, %d lines added", na, nb)
		},
	}
	cmd.Flags().IntVarP(&context, "unified", "U", 3, "number of lines of context")
	cmd.Flags().BoolVar(&color, "color", false, "color the output for the terminal")
	return cmd
}

// writeColorDiff writes the unified diff with removed lines in red, added
// lines in green and hunk headers in cyan.
func writeColorDiff(w io.Writer, ud string, p termenv.Profile) error {
	bw := bufio.NewWriter(w)
	for ln := range strings.SplitAfterSeq(ud, "\n") {
		if ln == "" {
			continue
		}
		s := termenv.String(strings.TrimSuffix(ln, "\n"))
		switch {
		case strings.HasPrefix(ln, "---"), strings.HasPrefix(ln, "+++"):
			s = s.Bold()
		case strings.HasPrefix(ln, "@@"):
			s = s.Foreground(p.Color("6"))
		case strings.HasPrefix(ln, "-"):
			s = s.Foreground(p.Color("1"))
		case strings.HasPrefix(ln, "+"):
			s = s.Foreground(p.Color("2"))
		}
		fmt.Fprintln(bw, s)
	}
	return bw.Flush()
}
