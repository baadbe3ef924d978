// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"context"

	"github.com/gantryhq/gantry/pkg/tools"
)

// angularProject drives workflows through the Angular CLI directly.
type angularProject struct {
	ngCli  tools.NgCli
	npmCli tools.NpmCli
}

// NewAngularProject creates the framework service for angular apps.
func NewAngularProject(ngCli tools.NgCli, npmCli tools.NpmCli) FrameworkService {
	return &angularProject{
		ngCli:  ngCli,
		npmCli: npmCli,
	}
}

// Gets the required external tools for the project
func (p *angularProject) RequiredExternalTools(_ context.Context, _ *App) []tools.ExternalTool {
	return []tools.ExternalTool{p.npmCli, p.ngCli}
}

func (p *angularProject) BuildRunner(app *App) (BuildRunner, error) {
	return BuildRunnerFunc(func(ctx context.Context, args []string) error {
		return p.ngCli.Build(ctx, app.Dir, args)
	}), nil
}

func (p *angularProject) ServeRunner(app *App) (ServeRunner, error) {
	return ServeRunnerFunc(func(ctx context.Context, options ServeOptions) error {
		args := options.Args
		if !options.LiveReload {
			args = append([]string{"--live-reload=false"}, args...)
		}

		return p.ngCli.Serve(ctx, app.Dir, options.Port, options.Host, options.Env, args)
	}), nil
}

func (p *angularProject) GenerateRunner(app *App) (GenerateRunner, error) {
	return GenerateRunnerFunc(func(ctx context.Context, schematic string, name string, args []string) error {
		return p.ngCli.Generate(ctx, app.Dir, schematic, name, args)
	}), nil
}
