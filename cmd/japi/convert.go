// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"japi.dev/core/text/encoding"
	"japi.dev/core/text/lines"
)

func newConvertCmd(cfg *Config) *cobra.Command {
	var from, to, eol, out string
	var bom bool
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert the encoding or line ending of a file",
		Long: `Convert reads FILE, detecting its encoding unless --from is given, and
writes it in the encoding of --to and with the line ending of --eol.
It writes to FILE itself unless --output is given. An encoding that
cannot represent the text is an error, and nothing is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, err := openConvert(cfg, args[0], from)
			if err != nil {
				return err
			}
			en := ls.Encoding()
			if to != "" {
				if en, err = encoding.Lookup(to); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("bom") {
				bom = ls.HasBOM()
			}
			if err := ls.SetEncoding(en, bom); err != nil {
				return err
			}
			if eol != "" {
				var le encoding.LineEnding
				if err := le.UnmarshalText([]byte(eol)); err != nil {
					return err
				}
				ls.SetLineEnding(le)
			}
			slog.Info("convert", "file", args[0], "encoding", ls.Encoding(), "bom", ls.HasBOM(), "eol", ls.LineEnding())
			if out == "-" {
				b, err := ls.EncodedBytes()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if out != "" {
				return ls.SaveAs(out)
			}
			return ls.Save()
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&from, "from", "", "encoding of the file, detected if not given")
	fs.StringVar(&to, "to", "", "encoding to write, the same as the file if not given")
	fs.StringVar(&eol, "eol", "", "line ending to write: lf, crlf or cr")
	fs.BoolVar(&bom, "bom", false, "write a byte order mark, for the UTF encodings (default: as read)")
	fs.StringVarP(&out, "output", "o", "", "output file, - for standard output")
	return cmd
}

// openConvert opens the file, decoding it from the named encoding if
// from is not empty.
func openConvert(cfg *Config, filename, from string) (*lines.Lines, error) {
	if from == "" {
		return cfg.open(filename)
	}
	en, err := encoding.Lookup(from)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	bom := en.BOM() != nil && bytes.HasPrefix(b, en.BOM())
	if bom {
		b = b[len(en.BOM()):]
	}
	txt, err := encoding.Decode(b, en)
	if err != nil {
		return nil, err
	}
	ls := lines.NewLinesFromBytes(filename, txt)
	cfg.apply(ls)
	if err := ls.SetEncoding(en, bom); err != nil {
		return nil, err
	}
	return ls, nil
}
