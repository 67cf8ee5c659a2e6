// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"sort"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/textpos"
)

// Results is used to report search results.
type Results struct {
	Filepath string
	Matches  []textpos.Match
}

// MaxFileSize is the size above which files are not searched by [All].
var MaxFileSize int64 = 10 << 20

// All returns the results for all files under the given root path,
// of given language(s) if any, that contain the given string or regular
// expression, sorted in descending order by number of occurrences.
// Directories and files whose names match one of the exclude glob
// patterns are skipped, as are binary files and version control
// directories. Files are searched concurrently.
func All(root string, find string, ignoreCase, regExp bool, langs []fileinfo.Known, exclude ...string) ([]Results, error) {
	if find == "" {
		return nil, nil
	}
	var re *regexp.Regexp
	if regExp {
		if ignoreCase {
			find = "(?i)" + find
		}
		var err error
		re, err = regexp.Compile(find)
		if err != nil {
			return nil, err
		}
	}
	excl := make([]glob.Glob, len(exclude))
	for i, ex := range exclude {
		g, err := glob.Compile(ex)
		if err != nil {
			return nil, fmt.Errorf("search: exclude pattern %q: %w", ex, err)
		}
		excl[i] = g
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if slices.ContainsFunc(excl, func(g glob.Glob) bool { return g.Match(name) }) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if name == ".git" || name == ".svn" || name == ".hg" {
				return filepath.SkipDir
			}
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	all := make([]Results, len(paths))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			fi, err := fileinfo.NewFileInfo(path)
			if err != nil || fi.Binary || fi.Size > MaxFileSize {
				return nil
			}
			if len(langs) > 0 && !slices.Contains(langs, fi.Known) {
				return nil
			}
			if regExp {
				all[i] = Results{Filepath: path, Matches: FileRegexp(path, re)}
			} else {
				all[i] = Results{Filepath: path, Matches: File(path, []byte(find), ignoreCase)}
			}
			return nil
		})
	}
	g.Wait()
	res := slices.DeleteFunc(all, func(r Results) bool { return len(r.Matches) == 0 })
	sort.SliceStable(res, func(i, j int) bool {
		return len(res[i].Matches) > len(res[j].Matches)
	})
	return res, nil
}
