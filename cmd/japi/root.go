// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"japi.dev/core/base/iox/tomlx"
	"japi.dev/core/base/iox/yamlx"
	"japi.dev/core/base/logx"
	"japi.dev/core/text/lines"
	"japi.dev/core/text/parse/lexer"
)

// Config is the configuration of the japi command, set from the
// settings file and the persistent flags.
type Config struct {

	// File is the settings file, empty for the default location.
	File string

	// Settings are the document settings read from the settings file.
	Settings lines.Settings

	// Style overrides the highlighting style of the settings.
	Style string

	// Lang overrides the language detected from the file name.
	Lang string

	Verbose     bool
	VeryVerbose bool
	Quiet       bool

	lexer lexer.Lexer
}

// DefaultConfigFile returns the default settings file,
// ~/.config/japi/settings.toml.
func DefaultConfigFile() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "japi", "settings.toml"), nil
}

// load reads the settings file, choosing the format by its extension.
// A missing default settings file is not an error.
func (c *Config) load() error {
	c.Settings.Defaults()
	fn := c.File
	if fn == "" {
		def, err := DefaultConfigFile()
		if err != nil {
			slog.Debug("no home directory", "err", err)
			return nil
		}
		if _, err := os.Stat(def); err != nil {
			return nil
		}
		fn = def
	} else {
		exp, err := homedir.Expand(fn)
		if err != nil {
			return err
		}
		fn = exp
	}
	var err error
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yamlx.Open(&c.Settings, fn)
	default:
		err = tomlx.Open(&c.Settings, fn)
	}
	if err != nil {
		return fmt.Errorf("reading settings %s: %w", fn, err)
	}
	slog.Debug("read settings", "file", fn)
	return nil
}

// open opens the named file as lines with the configured settings.
func (c *Config) open(filename string) (*lines.Lines, error) {
	ls, err := lines.OpenLines(filename)
	if err != nil {
		return nil, err
	}
	c.apply(ls)
	return ls, nil
}

// apply applies the configured settings to the lines, keeping the
// encoding and line ending detected from its file.
func (c *Config) apply(ls *lines.Lines) {
	st := c.Settings
	st.Encoding = ls.Encoding()
	st.LineEnding = ls.LineEnding()
	ls.Settings = st
	if c.lexer != nil {
		ls.SetLanguage(c.lexer)
	}
	style := c.Style
	if style == "" {
		style = st.Highlighting
	}
	ls.SetStyle(style)
}

func newRootCmd() *cobra.Command {
	cfg := &Config{}
	root := &cobra.Command{
		Use:           "japi",
		Short:         "Japi text core tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel.Set(logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet))
			logx.SetDefaultLogger()
			if err := cfg.load(); err != nil {
				return err
			}
			if err := checkStyle(cfg.Style); err != nil {
				return err
			}
			if cfg.Lang != "" {
				lx, err := lookupLexer(cfg.Lang)
				if err != nil {
					return err
				}
				cfg.lexer = lx
			}
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfg.File, "config", "", "settings file (.toml or .yaml), default ~/.config/japi/settings.toml")
	pf.StringVar(&cfg.Style, "style", "", "highlighting style")
	pf.StringVar(&cfg.Lang, "lang", "", "language, overriding the one detected from the file")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "show info messages")
	pf.BoolVar(&cfg.VeryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&cfg.Quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(
		newDiffCmd(cfg),
		newHighlightCmd(cfg),
		newLexCmd(cfg),
		newBalanceCmd(cfg),
		newConvertCmd(cfg),
		newFindCmd(cfg),
		newWatchCmd(cfg),
		newStylesCmd(),
	)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n%s", err, cmd.UsageString())
	})
	return root
}

// Execute runs the command with the given arguments, printing any error
// to its error output.
func Execute(root *cobra.Command, args []string) error {
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "japi:", err)
	}
	return err
}
