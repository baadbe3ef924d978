// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"context"
	"fmt"

	"github.com/gantryhq/gantry/pkg/exec"
	"github.com/gantryhq/gantry/pkg/tools"
)

// customProject runs user-defined targets from the project file. Each target
// is a list of shell commands executed as one invocation; a workflow with no
// target configured has no runner.
type customProject struct {
	commandRunner exec.CommandRunner
}

// NewCustomProject creates the framework service for custom apps.
func NewCustomProject(commandRunner exec.CommandRunner) FrameworkService {
	return &customProject{
		commandRunner: commandRunner,
	}
}

func (p *customProject) RequiredExternalTools(_ context.Context, _ *App) []tools.ExternalTool {
	return []tools.ExternalTool{}
}

func (p *customProject) target(app *App, workflow string) ([]string, error) {
	if app.Config == nil {
		return nil, ErrRunnerNotFound
	}

	commands, has := app.Config.Targets[workflow]
	if !has || len(commands) == 0 {
		return nil, ErrRunnerNotFound
	}

	return commands, nil
}

func (p *customProject) run(ctx context.Context, app *App, workflow string, commands []string, env []string) error {
	_, err := p.commandRunner.RunList(ctx, commands, exec.RunArgs{
		Cwd:         app.Dir,
		Env:         env,
		Interactive: true,
	})
	if err != nil {
		return fmt.Errorf("running '%s' target: %w", workflow, err)
	}

	return nil
}

func (p *customProject) BuildRunner(app *App) (BuildRunner, error) {
	commands, err := p.target(app, "build")
	if err != nil {
		return nil, err
	}

	return BuildRunnerFunc(func(ctx context.Context, args []string) error {
		return p.run(ctx, app, "build", commands, nil)
	}), nil
}

func (p *customProject) ServeRunner(app *App) (ServeRunner, error) {
	commands, err := p.target(app, "serve")
	if err != nil {
		return nil, err
	}

	return ServeRunnerFunc(func(ctx context.Context, options ServeOptions) error {
		return p.run(ctx, app, "serve", commands, options.Env)
	}), nil
}

func (p *customProject) GenerateRunner(app *App) (GenerateRunner, error) {
	commands, err := p.target(app, "generate")
	if err != nil {
		return nil, err
	}

	return GenerateRunnerFunc(func(ctx context.Context, schematic string, name string, args []string) error {
		return p.run(ctx, app, "generate", commands, nil)
	}), nil
}
