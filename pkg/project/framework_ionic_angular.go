// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"context"

	"github.com/gantryhq/gantry/pkg/tools"
)

// ionicAngularProject delegates every workflow to the project's own npm
// scripts. Ionic Angular trees ship with `build`, `serve` and `generate`
// scripts that wrap the framework tooling.
type ionicAngularProject struct {
	npmCli tools.NpmCli
}

// NewIonicAngularProject creates the framework service for ionic-angular apps.
func NewIonicAngularProject(npmCli tools.NpmCli) FrameworkService {
	return &ionicAngularProject{
		npmCli: npmCli,
	}
}

// Gets the required external tools for the project
func (p *ionicAngularProject) RequiredExternalTools(_ context.Context, _ *App) []tools.ExternalTool {
	return []tools.ExternalTool{p.npmCli}
}

func (p *ionicAngularProject) BuildRunner(app *App) (BuildRunner, error) {
	return BuildRunnerFunc(func(ctx context.Context, args []string) error {
		return p.npmCli.RunScript(ctx, app.Dir, "build", args, nil)
	}), nil
}

func (p *ionicAngularProject) ServeRunner(app *App) (ServeRunner, error) {
	return ServeRunnerFunc(func(ctx context.Context, options ServeOptions) error {
		return p.npmCli.RunScript(ctx, app.Dir, "serve", serveScriptArgs(options), options.Env)
	}), nil
}

func (p *ionicAngularProject) GenerateRunner(app *App) (GenerateRunner, error) {
	return GenerateRunnerFunc(func(ctx context.Context, schematic string, name string, args []string) error {
		scriptArgs := []string{}
		if schematic != "" {
			scriptArgs = append(scriptArgs, schematic)
		}
		if name != "" {
			scriptArgs = append(scriptArgs, name)
		}
		scriptArgs = append(scriptArgs, args...)

		return p.npmCli.RunScript(ctx, app.Dir, "generate", scriptArgs, nil)
	}), nil
}
