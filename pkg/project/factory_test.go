// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gantryhq/gantry/pkg/ioc"
	"github.com/gantryhq/gantry/pkg/workspace"
)

func newTestFactory(npm *fakeNpmCli) *Factory {
	container := ioc.NewNestedContainer(nil)
	ioc.RegisterNamedInstance[FrameworkService](container, string(React), NewReactProject(npm))
	return NewFactory(container)
}

func Test_Factory_CreateFromDetails(t *testing.T) {
	npm := &fakeNpmCli{}
	factory := newTestFactory(npm)
	root := workspace.NewRootFromDirectory("/work")

	details := &DetailsResult{
		Context:    ContextMultiApp,
		Type:       React,
		Name:       "web",
		ConfigPath: filepath.Join("/work", workspace.ProjectFileName),
		Config:     &ProjectConfig{Name: "web", Type: React, Root: "apps/web"},
		Errors:     []DetailsError{},
	}

	app := factory.CreateFromDetails(root, details)

	require.Equal(t, "web", app.Name)
	require.Equal(t, React, app.Type)
	require.Equal(t, filepath.Join("/work", "apps", "web"), app.Dir)
	require.Equal(t, details.ConfigPath, app.ConfigPath)
	require.Same(t, details.Config, app.Config)

	// Workflows dispatch through the registered framework service.
	build, err := app.BuildRunner()
	require.NoError(t, err)
	require.NoError(t, build.Build(context.Background(), nil))
	require.Equal(t, app.Dir, npm.calls[0].project)

	require.Len(t, app.RequiredExternalTools(context.Background()), 1)

	_, err = app.GenerateRunner()
	require.ErrorIs(t, err, ErrRunnerNotFound)
}

func Test_Factory_DirDefaultsToRoot(t *testing.T) {
	factory := newTestFactory(&fakeNpmCli{})
	root := workspace.NewRootFromDirectory("/work")

	// Without a config view the workspace root is the project directory.
	app := factory.CreateFromDetails(root, &DetailsResult{Type: React})
	require.Equal(t, "/work", app.Dir)

	// A config without a root entry also resolves to the workspace root.
	app = factory.CreateFromDetails(root, &DetailsResult{Type: React, Config: &ProjectConfig{Name: "my-app"}})
	require.Equal(t, "/work", app.Dir)
}

func Test_Factory_PanicsOnInvalidType(t *testing.T) {
	factory := newTestFactory(&fakeNpmCli{})
	root := workspace.NewRootFromDirectory("/work")

	require.Panics(t, func() {
		factory.CreateFromDetails(root, &DetailsResult{Type: Type("vue")})
	})

	require.Panics(t, func() {
		factory.CreateFromDetails(root, &DetailsResult{})
	})
}

func Test_Factory_PanicsOnUnregisteredType(t *testing.T) {
	// The container only registers react.
	factory := newTestFactory(&fakeNpmCli{})
	root := workspace.NewRootFromDirectory("/work")

	require.Panics(t, func() {
		factory.CreateFromDetails(root, &DetailsResult{Type: Angular})
	})
}
