// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"japi.dev/core/text/textpos"
)

// parsePos parses a 1-based LINE:COL position into a [textpos.Pos],
// where COL counts bytes.
func parsePos(s string) (textpos.Pos, error) {
	var pos textpos.Pos
	if !pos.FromString(s) {
		return pos, fmt.Errorf("invalid position %q, want LINE:COL", s)
	}
	return pos, nil
}

func newBalanceCmd(cfg *Config) *cobra.Command {
	var match bool
	cmd := &cobra.Command{
		Use:   "balance FILE LINE:COL",
		Short: "Print the innermost pair of brackets enclosing a position",
		Long: `Balance prints the positions of the innermost balanced pair of brackets
enclosing the caret at LINE:COL, ignoring brackets in strings and
comments. With --match, it prints the partner of the bracket at the
position instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, err := cfg.open(args[0])
			if err != nil {
				return err
			}
			pos, err := parsePos(args[1])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if match {
				mp, err := ls.MatchBracket(pos)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, mp)
				return nil
			}
			reg, err := ls.Balance(pos)
			if err != nil {
				return err
			}
			close := reg.End
			close.Char--
			txt, _ := ls.Region(reg)
			fmt.Fprintf(w, "%s %s %d lines\n", reg.Start, close, reg.NumLines())
			if len(txt) > 0 {
				fmt.Fprintf(w, "%s\n", txt)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&match, "match", false, "print the partner of the bracket at the position")
	return cmd
}
