// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"context"

	"github.com/gantryhq/gantry/pkg/tools"
)

// reactProject delegates build and serve to the project's npm scripts. React
// trees carry no scaffolding toolchain, so generate is unavailable.
type reactProject struct {
	npmCli tools.NpmCli
}

// NewReactProject creates the framework service for react apps.
func NewReactProject(npmCli tools.NpmCli) FrameworkService {
	return &reactProject{
		npmCli: npmCli,
	}
}

// Gets the required external tools for the project
func (p *reactProject) RequiredExternalTools(_ context.Context, _ *App) []tools.ExternalTool {
	return []tools.ExternalTool{p.npmCli}
}

func (p *reactProject) BuildRunner(app *App) (BuildRunner, error) {
	return BuildRunnerFunc(func(ctx context.Context, args []string) error {
		return p.npmCli.RunScript(ctx, app.Dir, "build", args, nil)
	}), nil
}

func (p *reactProject) ServeRunner(app *App) (ServeRunner, error) {
	return ServeRunnerFunc(func(ctx context.Context, options ServeOptions) error {
		return p.npmCli.RunScript(ctx, app.Dir, "start", serveScriptArgs(options), options.Env)
	}), nil
}

func (p *reactProject) GenerateRunner(app *App) (GenerateRunner, error) {
	return nil, ErrRunnerNotFound
}
