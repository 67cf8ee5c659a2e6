// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/lines"
	"japi.dev/core/text/search"
	"japi.dev/core/text/textpos"
)

func newFindCmd(cfg *Config) *cobra.Command {
	var opts lines.FindOptions
	var replace string
	var langs []string
	var exclude []string
	cmd := &cobra.Command{
		Use:   "find PATTERN PATH",
		Short: "Find, and optionally replace, a pattern in a file or directory",
		Long: `Find prints the matches of PATTERN in the file at PATH, or in every
text file under PATH if it is a directory. With --replace, every match in
the file is replaced and the file is saved; $1 and ${name} refer to
submatches of a regular expression.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, path := args[0], args[1]
			st, err := os.Stat(path)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if st.IsDir() {
				if cmd.Flags().Changed("replace") {
					return fmt.Errorf("--replace needs a file, not directory %s", path)
				}
				return findAll(w, path, pattern, opts, langs, exclude)
			}
			ls, err := cfg.open(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("replace") {
				n, err := ls.ReplaceAll(pattern, replace, opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s: %d replaced\n", path, n)
				if n == 0 {
					return nil
				}
				return ls.Save()
			}
			ms, err := ls.Find(pattern, opts)
			if err != nil {
				return err
			}
			writeMatches(w, path, ms)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "ignore case")
	fs.BoolVarP(&opts.Regexp, "regexp", "e", false, "PATTERN is a regular expression")
	fs.BoolVar(&opts.LexItems, "lex-items", false, "only match whole lexical items, such as identifiers")
	fs.StringVar(&replace, "replace", "", "replace each match with this text")
	fs.StringSliceVar(&langs, "langs", nil, "only search files of these languages, in a directory")
	fs.StringSliceVar(&exclude, "exclude", nil, "glob patterns of file and directory names to skip, in a directory")
	return cmd
}

func writeMatches(w io.Writer, path string, ms []textpos.Match) {
	for _, m := range ms {
		fmt.Fprintf(w, "%s:%d:%d: %s\n", path, m.Region.Start.Line+1, m.Region.Start.Char+1, m.Text)
	}
}

func findAll(w io.Writer, root, pattern string, opts lines.FindOptions, langs, exclude []string) error {
	var kns []fileinfo.Known
	for _, l := range langs {
		kn, err := fileinfo.KnownByName(l)
		if err != nil {
			return err
		}
		kns = append(kns, kn)
	}
	res, err := search.All(root, pattern, opts.IgnoreCase, opts.Regexp, kns, exclude...)
	if err != nil {
		return err
	}
	for _, r := range res {
		writeMatches(w, r.Filepath, r.Matches)
	}
	return nil
}
