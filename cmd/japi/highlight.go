// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"japi.dev/core/text/highlighting"
)

func newHighlightCmd(cfg *Config) *cobra.Command {
	var html bool
	var styles string
	var profile string
	cmd := &cobra.Command{
		Use:   "highlight FILE",
		Short: "Print a file with syntax highlighting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if styles != "" {
				var ss highlighting.Styles
				if err := ss.OpenJSON(styles); err != nil {
					return err
				}
				highlighting.AddCustomStyles(ss)
			}
			ls, err := cfg.open(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if html {
				return highlighting.WriteHTML(w, filepath.Base(args[0]), ls.Lines(), ls.AllTags(), ls.Highlighter.Style)
			}
			p, err := colorProfile(profile)
			if err != nil {
				return err
			}
			return highlighting.WriteTerminal(w, ls.Lines(), ls.AllTags(), ls.Highlighter.Style, p)
		},
	}
	cmd.Flags().BoolVar(&html, "html", false, "write a standalone HTML document")
	cmd.Flags().StringVar(&styles, "styles", "", "JSON file of additional highlighting styles")
	cmd.Flags().StringVar(&profile, "colors", "auto", "terminal colors: auto, none, ansi, 256 or true")
	return cmd
}

// colorProfile returns the termenv color profile for the name, detecting
// it from standard output for "auto".
func colorProfile(name string) (termenv.Profile, error) {
	switch name {
	case "auto", "":
		return termenv.NewOutput(os.Stdout).Profile, nil
	case "none":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "256":
		return termenv.ANSI256, nil
	case "true":
		return termenv.TrueColor, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown color profile %q", name)
}

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the available highlighting styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, nm := range highlighting.StyleNames() {
				fmt.Fprintln(cmd.OutOrStdout(), nm)
			}
			return nil
		},
	}
}
