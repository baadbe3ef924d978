// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/gantryhq/gantry/internal/fingerprint"
	"github.com/gantryhq/gantry/pkg/config"
	"github.com/gantryhq/gantry/pkg/osutil"
	"github.com/gantryhq/gantry/pkg/workspace"
)

func writeProjectFile(t *testing.T, dir string, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, workspace.ProjectFileName), []byte(contents), osutil.PermissionFile))
}

func writeManifest(t *testing.T, dir string, name string, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), osutil.PermissionFile))
}

// newTestResolver builds a resolver rooted at dir, the way a command would
// after locating the workspace.
func newTestResolver(dir string, projectArg string, workDir string) *DetailsResolver {
	return NewDetailsResolver(
		workspace.NewRootFromDirectory(dir),
		projectArg,
		workDir,
		fingerprint.Detectors(),
		config.NewFileConfigManager(config.NewManager()),
	)
}

func resolveDir(t *testing.T, dir string, projectArg string, workDir string) *DetailsResult {
	t.Helper()

	result, err := newTestResolver(dir, projectArg, workDir).Resolve(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func Test_Resolve_App_ExplicitType(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `{"name": "my-app", "type": "angular"}`)

	result := resolveDir(t, dir, "", dir)

	require.Equal(t, ContextApp, result.Context)
	require.Equal(t, Angular, result.Type)
	require.Empty(t, result.Errors)
	require.Equal(t, filepath.Join(dir, workspace.ProjectFileName), result.ConfigPath)
	require.NotNil(t, result.Config)
	require.Equal(t, "my-app", result.Config.Name)
}

func Test_Resolve_App_InvalidExplicitType(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `{"name": "my-app", "type": "vue"}`)

	result := resolveDir(t, dir, "", dir)

	require.Equal(t, ContextApp, result.Context)
	require.Empty(t, result.Type)
	require.Len(t, result.Errors, 1)
	require.Equal(t, ErrorInvalidProjectType, result.Errors[0].Code)
}

func Test_Resolve_App_NoTypeNoFingerprint(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `{"name": "my-app"}`)

	result := resolveDir(t, dir, "", dir)

	require.Equal(t, ContextApp, result.Context)
	require.Empty(t, result.Type)
	require.Len(t, result.Errors, 1)
	require.Equal(t, ErrorMissingProjectType, result.Errors[0].Code)
}

func Test_Resolve_App_DetectsTypeFromManifest(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `{"name": "my-app"}`)
	writeManifest(t, dir, "package.json", `{"dependencies": {"react": "^18.2.0"}}`)

	result := resolveDir(t, dir, "", dir)

	require.Equal(t, React, result.Type)
	require.Empty(t, result.Errors)
}

func Test_Resolve_App_ExplicitTypeBeatsDetection(t *testing.T) {
	dir := t.TempDir()
	// The directory fingerprints as ionic-angular, but the declared type wins.
	writeProjectFile(t, dir, `{"name": "my-app", "type": "react"}`)
	writeManifest(t, dir, "package.json", `{"dependencies": {"ionic-angular": "3.9.2"}}`)

	result := resolveDir(t, dir, "", dir)

	require.Equal(t, React, result.Type)
	require.Empty(t, result.Errors)
}

func Test_Resolve_Multi_ArgWinsOverPathAndDefault(t *testing.T) {
	dir := t.TempDir()
	// All three name strategies would yield a different project.
	writeProjectFile(t, dir, `{
		"projects": {
			"from-arg": {"type": "react"},
			"from-path": {"type": "react", "root": "packages/web"},
			"from-default": {"type": "react"}
		},
		"defaultProject": "from-default"
	}`)
	workDir := filepath.Join(dir, "packages", "web")

	result := resolveDir(t, dir, "from-arg", workDir)
	require.Equal(t, ContextMultiApp, result.Context)
	require.Equal(t, "from-arg", result.Name)
	require.Empty(t, result.Errors)

	// Without the argument, path containment is next in line.
	result = resolveDir(t, dir, "", workDir)
	require.Equal(t, "from-path", result.Name)

	// Outside every declared root, defaultProject is the last resort.
	result = resolveDir(t, dir, "", dir)
	require.Equal(t, "from-default", result.Name)
}

func Test_Resolve_Multi_PathMatchDeclarationOrder(t *testing.T) {
	// Both declared roots contain the working directory; the first-declared
	// entry wins, so swapping the declarations swaps the winner.
	tests := []struct {
		name     string
		contents string
		want     string
	}{
		{
			name: "outer declared first",
			contents: `{"projects": {
				"outer": {"type": "react", "root": "apps"},
				"inner": {"type": "react", "root": "apps/web"}
			}}`,
			want: "outer",
		},
		{
			name: "inner declared first",
			contents: `{"projects": {
				"inner": {"type": "react", "root": "apps/web"},
				"outer": {"type": "react", "root": "apps"}
			}}`,
			want: "inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeProjectFile(t, dir, tt.contents)

			result := resolveDir(t, dir, "", filepath.Join(dir, "apps", "web"))
			require.Equal(t, tt.want, result.Name)
		})
	}
}

func Test_Resolve_Multi_DefaultProject(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `{"projects": {"app1": {"type": "ionic1"}}, "defaultProject": "app1"}`)

	result := resolveDir(t, dir, "", dir)

	require.Equal(t, ContextMultiApp, result.Context)
	require.Equal(t, "app1", result.Name)
	require.Equal(t, Ionic1, result.Type)
	require.Empty(t, result.Errors)
	require.NotNil(t, result.Config)
}

func Test_Resolve_Multi_NameNotDeclared(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `{"projects": {}}`)

	result := resolveDir(t, dir, "unknown", dir)

	require.Equal(t, ContextMultiApp, result.Context)
	require.Equal(t, "unknown", result.Name)
	require.Empty(t, result.Type)
	require.Len(t, result.Errors, 1)
	require.Equal(t, ErrorMultiMissingConfig, result.Errors[0].Code)
}

func Test_Resolve_Multi_NoNameResolves(t *testing.T) {
	dir := t.TempDir()
	// No argument, no roots to match, no defaultProject.
	writeProjectFile(t, dir, `{"projects": {"zeta": {"type": "react"}, "alpha": {"type": "react"}}}`)

	result := resolveDir(t, dir, "", dir)

	require.Equal(t, ContextMultiApp, result.Context)
	require.Empty(t, result.Name)
	require.Empty(t, result.Type)
	require.Len(t, result.Errors, 1)
	require.True(t, result.HasError(ErrorMultiMissingName))

	// The caller can still offer the declared projects, alphabetically.
	require.Equal(t, []string{"alpha", "zeta"}, result.DeclaredProjects())
}

func Test_Resolve_NoProjectFile(t *testing.T) {
	dir := t.TempDir()

	result := resolveDir(t, dir, "", dir)

	require.Equal(t, ContextUnknown, result.Context)
	require.Len(t, result.Errors, 1)
	require.Equal(t, ErrorInvalidProjectFile, result.Errors[0].Code)
	require.Error(t, result.Errors[0].Cause)
	require.Nil(t, result.Config)
}

func Test_Resolve_MalformedProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `{"name": `)

	result := resolveDir(t, dir, "", dir)

	require.Equal(t, ContextUnknown, result.Context)
	require.Len(t, result.Errors, 1)
	require.Equal(t, ErrorInvalidProjectFile, result.Errors[0].Code)
	require.Error(t, result.Errors[0].Cause)
}

func Test_Resolve_UnrecognizedShape(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name:     "type without name",
			contents: `{"type": "angular"}`,
		},
		{
			name:     "name is not a string",
			contents: `{"name": 42}`,
		},
		{
			name:     "both name and projects",
			contents: `{"name": "my-app", "projects": {}}`,
		},
		{
			name:     "projects is not an object",
			contents: `{"projects": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeProjectFile(t, dir, tt.contents)

			result := resolveDir(t, dir, "", dir)

			require.Equal(t, ContextUnknown, result.Context)
			require.Empty(t, result.Errors)
			require.NotNil(t, result.Raw)
		})
	}
}

func Test_Resolve_App_MigratesAppID(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `{"name": "my-app", "type": "react", "app_id": "pro-123"}`)

	result := resolveDir(t, dir, "", dir)

	require.NotNil(t, result.Config)
	require.Equal(t, "pro-123", result.Config.ProID)

	// The rewrite was persisted.
	contents, err := os.ReadFile(filepath.Join(dir, workspace.ProjectFileName))
	require.NoError(t, err)
	require.Equal(t, "pro-123", gjson.GetBytes(contents, "pro_id").String())
	require.False(t, gjson.GetBytes(contents, "app_id").Exists())
}

func Test_Resolve_Multi_MigratesActiveProjectOnly(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `{
		"projects": {
			"app": {"type": "react", "app_id": "pro-9"},
			"other": {"type": "react", "app_id": "keep"}
		},
		"defaultProject": "app"
	}`)

	result := resolveDir(t, dir, "", dir)

	require.Equal(t, "app", result.Name)
	require.NotNil(t, result.Config)
	require.Equal(t, "pro-9", result.Config.ProID)

	// Migration is scoped to the active project; the other entry keeps its
	// legacy key until it becomes active.
	contents, err := os.ReadFile(filepath.Join(dir, workspace.ProjectFileName))
	require.NoError(t, err)
	require.Equal(t, "pro-9", gjson.GetBytes(contents, "projects.app.pro_id").String())
	require.False(t, gjson.GetBytes(contents, "projects.app.app_id").Exists())
	require.Equal(t, "keep", gjson.GetBytes(contents, "projects.other.app_id").String())
}

func Test_Resolve_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `{"projects": {"app1": {"type": "ionic1"}}, "defaultProject": "app1"}`)

	first := resolveDir(t, dir, "", dir)
	second := resolveDir(t, dir, "", dir)

	require.Equal(t, first, second)
}

func Test_Resolve_App_ExpandsEnvironmentReferences(t *testing.T) {
	t.Setenv("GANTRY_TEST_PRO_ID", "pro-from-env")

	dir := t.TempDir()
	writeProjectFile(t, dir, `{"name": "my-app", "type": "react", "pro_id": "${GANTRY_TEST_PRO_ID}"}`)

	result := resolveDir(t, dir, "", dir)

	require.Empty(t, result.Errors)
	require.NotNil(t, result.Config)
	require.Equal(t, "pro-from-env", result.Config.ProID)
}
