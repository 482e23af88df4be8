// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"

	"cogentcore.org/simcore/base/errors"
	"cogentcore.org/simcore/base/fsx"
	"cogentcore.org/simcore/base/iox/tomlx"
)

// Options are the options for opening config files.
type Options struct {
	// IncludePaths is the ordered list of directories searched
	// for config files and the files they include.
	IncludePaths []string
}

// Includes can be embedded in a config struct to let its config files
// include other config files, which are opened first so that the
// including file overrides their settings.
type Includes struct {
	// Includes are the config files to include, found on [Options.IncludePaths].
	// After [Open], it holds every file that was included, directly or not.
	Includes []string `toml:"includes"`
}

// IncludesPtr returns a pointer to the Includes field.
func (i *Includes) IncludesPtr() *[]string { return &i.Includes }

// includer is implemented by configs that embed [Includes].
type includer interface {
	IncludesPtr() *[]string
}

// Open reads the config struct from the given TOML config file, which
// is looked up on [Options.IncludePaths]; if it is found on more than
// one path, later ones override earlier ones. If the config embeds
// [Includes], the included files are opened first in the natural
// include order so that includers overwrite included settings. It
// returns an error if the file or any include cannot be found.
func Open(opts *Options, cfg any, file string) error {
	files := fsx.FindFilesOnPaths(opts.IncludePaths, file)
	if len(files) == 0 {
		return fmt.Errorf("cli.Open: no files found for %q", file)
	}
	err := tomlx.OpenFiles(cfg, files...)
	if err != nil {
		return err
	}
	incfg, ok := cfg.(includer)
	if !ok {
		return nil
	}
	incs, err := includeStack(opts, incfg, file)
	if len(incs) == 0 {
		return err
	}
	for i := len(incs) - 1; i >= 0; i-- {
		errors.Log(tomlx.OpenFiles(cfg, fsx.FindFilesOnPaths(opts.IncludePaths, incs[i])...))
	}
	// reopen the original so that it takes precedence
	if rerr := tomlx.OpenFiles(cfg, files...); rerr != nil {
		return rerr
	}
	*incfg.IncludesPtr() = incs
	return err
}

// includeStack returns the transitive list of files included by cfg,
// which was opened from file, depth first, with each file listed once
// even if included repeatedly or in a cycle.
func includeStack(opts *Options, cfg includer, file string) ([]string, error) {
	var incs []string
	var errs []error
	seen := map[string]bool{file: true}
	typ := reflect.TypeOf(cfg).Elem()
	var visit func(files []string)
	visit = func(files []string) {
		for _, inc := range files {
			if seen[inc] {
				continue
			}
			seen[inc] = true
			found := fsx.FindFilesOnPaths(opts.IncludePaths, inc)
			if len(found) == 0 {
				errs = append(errs, fmt.Errorf("cli.Open: no files found for include %q", inc))
				continue
			}
			incs = append(incs, inc)
			sub := reflect.New(typ).Interface().(includer)
			if err := tomlx.OpenFiles(sub, found...); err != nil {
				errs = append(errs, err)
				continue
			}
			visit(*sub.IncludesPtr())
		}
	}
	visit(*cfg.IncludesPtr())
	return incs, errors.Join(errs...)
}
