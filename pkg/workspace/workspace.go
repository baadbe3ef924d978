// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package workspace locates the gantry workspace a command runs against.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ProjectFileName is the name of the file that marks the root of a gantry
// workspace.
const ProjectFileName = "gantry.config.json"

// ErrNoProject is returned by NewRoot and NewRootFromWd when no project file
// exists in the working directory or any of its ancestors.
var ErrNoProject = errors.New(
	"no project exists; to create a new project, add a gantry.config.json file to your workspace root")

// Root is the directory that contains the workspace's project file. Paths
// inside the workspace are resolved relative to it.
type Root string

// Directory returns the path of the workspace root directory.
func (r *Root) Directory() string {
	return string(*r)
}

// ProjectPath returns the path of the workspace's project file.
func ProjectPath(root *Root) string {
	return filepath.Join(root.Directory(), ProjectFileName)
}

// NewRootFromDirectory returns a Root for a directory that is known to contain
// a project file. No validation is performed.
func NewRootFromDirectory(directory string) *Root {
	root := Root(directory)
	return &root
}

// NewRoot locates the workspace root for the current working directory.
func NewRoot() (*Root, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	return NewRootFromWd(wd)
}

// NewRootFromWd locates the workspace root for wd by walking up the directory
// tree until a project file is found. It returns ErrNoProject when the walk
// reaches the filesystem root without finding one.
func NewRootFromWd(wd string) (*Root, error) {
	searchDir, err := filepath.Abs(wd)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	for {
		projectPath := filepath.Join(searchDir, ProjectFileName)
		stat, err := os.Stat(projectPath)
		if os.IsNotExist(err) || (err == nil && stat.IsDir()) {
			parent := filepath.Dir(searchDir)
			if parent == searchDir {
				return nil, ErrNoProject
			}
			searchDir = parent
		} else if err == nil {
			// searchDir is the directory that contains the project file.
			break
		} else {
			return nil, fmt.Errorf("searching for %s: %w", ProjectFileName, err)
		}
	}

	root := Root(searchDir)
	return &root, nil
}
