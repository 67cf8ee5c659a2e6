// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"japi.dev/core/text/lines"
)

func newWatchCmd(cfg *Config) *cobra.Command {
	var revert bool
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Report changes made to a file by other programs",
		Long: `Watch prints a line each time FILE is modified or removed by another
program, until interrupted. With --revert, the file is read again on
each modification and its new number of lines is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, err := cfg.open(args[0])
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watch(ctx, cmd, ls, revert)
		},
	}
	cmd.Flags().BoolVar(&revert, "revert", false, "read the file again when it is modified")
	return cmd
}

func watch(ctx context.Context, cmd *cobra.Command, ls *lines.Lines, revert bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	w := cmd.OutOrStdout()
	ops := make(chan lines.WatchOps, 1)
	err := ls.Watch(ctx, func(op lines.WatchOps) {
		select {
		case ops <- op:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return err
	}
	slog.Info("watching", "file", ls.Filename())
	for {
		select {
		case <-ctx.Done():
			return nil
		case op := <-ops:
			fmt.Fprintf(w, "%s: %s\n", ls.Filename(), op)
			switch {
			case op == lines.Removed:
				return nil
			case revert:
				if err := ls.Revert(); err != nil {
					return err
				}
				fmt.Fprintf(w, "%s: %d lines\n", ls.Filename(), ls.NumLines())
			}
		}
	}
}
