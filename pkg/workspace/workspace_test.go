// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gantryhq/gantry/pkg/osutil"
	"github.com/stretchr/testify/require"
)

func writeProjectFile(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, ProjectFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "app", "type": "angular"}`), osutil.PermissionFile))
	return path
}

func TestNewRootFromWd_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir)

	root, err := NewRootFromWd(dir)
	require.NoError(t, err)
	require.Equal(t, dir, root.Directory())
	require.Equal(t, filepath.Join(dir, ProjectFileName), ProjectPath(root))
}

func TestNewRootFromWd_WalksUp(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir)

	nested := filepath.Join(dir, "src", "app", "pages")
	require.NoError(t, os.MkdirAll(nested, osutil.PermissionDirectory))

	root, err := NewRootFromWd(nested)
	require.NoError(t, err)
	require.Equal(t, dir, root.Directory())
}

func TestNewRootFromWd_NearestAncestorWins(t *testing.T) {
	outer := t.TempDir()
	writeProjectFile(t, outer)

	inner := filepath.Join(outer, "packages", "mobile")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, "www"), osutil.PermissionDirectory))
	writeProjectFile(t, inner)

	root, err := NewRootFromWd(filepath.Join(inner, "www"))
	require.NoError(t, err)
	require.Equal(t, inner, root.Directory())
}

func TestNewRootFromWd_NoProject(t *testing.T) {
	dir := t.TempDir()

	root, err := NewRootFromWd(dir)
	require.ErrorIs(t, err, ErrNoProject)
	require.Nil(t, root)
}

func TestNewRootFromWd_SkipsDirectoryWithProjectFileName(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir)

	// A directory that happens to carry the project file's name does not mark
	// a workspace root.
	decoy := filepath.Join(dir, "sub", ProjectFileName)
	require.NoError(t, os.MkdirAll(decoy, osutil.PermissionDirectory))

	root, err := NewRootFromWd(filepath.Join(dir, "sub"))
	require.NoError(t, err)
	require.Equal(t, dir, root.Directory())
}

func TestNewRootFromDirectory(t *testing.T) {
	dir := t.TempDir()

	root := NewRootFromDirectory(dir)
	require.Equal(t, dir, root.Directory())
}
