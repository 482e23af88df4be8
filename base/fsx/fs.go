// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers for locating files.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/simcore/base/errors"
	"github.com/mitchellh/go-homedir"
)

// FileExists checks whether the given file exists, returning true if so,
// false if not, and an error if there is an error in accessing the file.
// A directory does not count as a file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ExpandHome returns the path with a leading ~ replaced by the home
// directory of the current user. Errors are logged and the path is
// returned unchanged.
func ExpandHome(path string) string {
	ep, err := homedir.Expand(path)
	if errors.Log(err) != nil {
		return path
	}
	return ep
}

// FindFilesOnPaths attempts to locate the given file on the given list
// of paths, returning the full paths of every match in the order of
// the paths. A leading ~ in a path or the file is expanded to the home
// directory. An absolute file name is returned as is if it exists.
func FindFilesOnPaths(paths []string, file string) []string {
	file = ExpandHome(file)
	if filepath.IsAbs(file) {
		if ok, _ := FileExists(file); ok {
			return []string{file}
		}
		return nil
	}
	var res []string
	for _, path := range paths {
		fn := filepath.Join(ExpandHome(path), file)
		if ok, _ := FileExists(fn); ok {
			res = append(res, fn)
		}
	}
	return res
}
