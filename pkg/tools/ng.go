// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/blang/semver/v4"

	"github.com/gantryhq/gantry/pkg/exec"
)

type NgCli interface {
	ExternalTool
	Build(ctx context.Context, project string, args []string) error
	Serve(ctx context.Context, project string, port int, host string, env []string, args []string) error
	Generate(ctx context.Context, project string, schematic string, name string, args []string) error
}

type ngCli struct {
	commandRunner exec.CommandRunner
}

func NewNgCli(commandRunner exec.CommandRunner) NgCli {
	return &ngCli{
		commandRunner: commandRunner,
	}
}

func (cli *ngCli) versionInfo() VersionInfo {
	return VersionInfo{
		MinimumVersion: semver.Version{
			Major: 15,
			Minor: 0,
			Patch: 0},
		UpdateCommand: "Run \"npm install -g @angular/cli\" to upgrade",
	}
}

func (cli *ngCli) CheckInstalled(ctx context.Context) (bool, error) {
	found, err := ToolInPath("ng")
	if !found {
		return false, err
	}

	// `ng version` prints a banner; the first version number in it is the
	// CLI's own.
	ngRes, err := ExecuteCommand(ctx, cli.commandRunner, "ng", "version")
	if err != nil {
		return false, fmt.Errorf("checking %s version: %w", cli.Name(), err)
	}

	ngSemver, err := ExtractVersion(ngRes)
	if err != nil {
		return false, fmt.Errorf("converting to semver version fails: %w", err)
	}

	updateDetail := cli.versionInfo()
	if ngSemver.Compare(updateDetail.MinimumVersion) == -1 {
		return false, &ErrSemver{ToolName: cli.Name(), VersionInfo: updateDetail}
	}

	return true, nil
}

func (cli *ngCli) InstallUrl() string {
	return "https://angular.dev/tools/cli"
}

func (cli *ngCli) Name() string {
	return "Angular CLI"
}

func (cli *ngCli) Build(ctx context.Context, project string, args []string) error {
	runArgs := append([]string{"build"}, args...)

	_, err := cli.commandRunner.Run(ctx, exec.NewRunArgs("ng", runArgs...).
		WithCwd(project).
		WithInteractive(true))
	if err != nil {
		return fmt.Errorf("ng build on project '%s' failed: %w", project, err)
	}

	return nil
}

func (cli *ngCli) Serve(ctx context.Context, project string, port int, host string, env []string, args []string) error {
	runArgs := []string{"serve"}
	if port > 0 {
		runArgs = append(runArgs, "--port", strconv.Itoa(port))
	}
	if host != "" {
		runArgs = append(runArgs, "--host", host)
	}
	runArgs = append(runArgs, args...)

	_, err := cli.commandRunner.Run(ctx, exec.NewRunArgs("ng", runArgs...).
		WithCwd(project).
		WithEnv(env).
		WithInteractive(true))
	if err != nil {
		return fmt.Errorf("ng serve on project '%s' failed: %w", project, err)
	}

	return nil
}

func (cli *ngCli) Generate(ctx context.Context, project string, schematic string, name string, args []string) error {
	runArgs := []string{"generate", schematic}
	if name != "" {
		runArgs = append(runArgs, name)
	}
	runArgs = append(runArgs, args...)

	_, err := cli.commandRunner.Run(ctx, exec.NewRunArgs("ng", runArgs...).
		WithCwd(project).
		WithInteractive(true))
	if err != nil {
		return fmt.Errorf("ng generate on project '%s' failed: %w", project, err)
	}

	return nil
}
