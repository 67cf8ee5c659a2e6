// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"japi.dev/core/text/lines"
)

// LexToken is one lexical element of a line in the lex output.
type LexToken struct {
	Token string `yaml:"token"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Text  string `yaml:"text"`
}

// LexLine is the lex output for one line.
type LexLine struct {
	Line   int        `yaml:"line"`
	State  string     `yaml:"state"`
	Tokens []LexToken `yaml:"tokens,omitempty"`
}

// lexLines returns the lex output for all of the lines.
func lexLines(ls *lines.Lines) []LexLine {
	src := ls.Lines()
	tags := ls.AllTags()
	out := make([]LexLine, len(src))
	for ln, b := range src {
		ll := LexLine{Line: ln + 1, State: ls.StartState(ln).String()}
		if ln < len(tags) {
			for _, lx := range tags[ln] {
				ll.Tokens = append(ll.Tokens, LexToken{Token: lx.Token.String(), Start: lx.Start, End: lx.End, Text: string(lx.Src(b))})
			}
		}
		out[ln] = ll
	}
	return out
}

func newLexCmd(cfg *Config) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "lex FILE",
		Short: "Print the lexical tokens and lexer state of each line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, err := cfg.open(args[0])
			if err != nil {
				return err
			}
			out := lexLines(ls)
			w := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(out); err != nil {
					return err
				}
				return enc.Close()
			case "text":
				return writeLexText(w, ls.Language(), out)
			}
			return fmt.Errorf("unknown format %q", format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")
	return cmd
}

func writeLexText(w io.Writer, lang string, out []LexLine) error {
	if lang == "" {
		lang = "none"
	}
	if _, err := fmt.Fprintf(w, "language: %s\n", lang); err != nil {
		return err
	}
	for _, ll := range out {
		fmt.Fprintf(w, "%d [%s]", ll.Line, ll.State)
		for _, tk := range ll.Tokens {
			fmt.Fprintf(w, " %s:%q", tk.Token, tk.Text)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
