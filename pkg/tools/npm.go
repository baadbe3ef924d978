// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tools

import (
	"context"
	"fmt"

	"github.com/blang/semver/v4"

	"github.com/gantryhq/gantry/pkg/exec"
)

type NpmCli interface {
	ExternalTool
	// RunScript runs `npm run <script>` in the project directory. Extra args
	// are forwarded to the script after the `--` separator.
	RunScript(ctx context.Context, project string, script string, args []string, env []string) error
}

type npmCli struct {
	commandRunner exec.CommandRunner
}

func NewNpmCli(commandRunner exec.CommandRunner) NpmCli {
	return &npmCli{
		commandRunner: commandRunner,
	}
}

func (cli *npmCli) versionInfoNode() VersionInfo {
	return VersionInfo{
		MinimumVersion: semver.Version{
			Major: 16,
			Minor: 0,
			Patch: 0},
		UpdateCommand: "Visit https://nodejs.org/en/ to upgrade",
	}
}

func (cli *npmCli) CheckInstalled(ctx context.Context) (bool, error) {
	found, err := ToolInPath("npm")
	if !found {
		return false, err
	}

	// check node version
	nodeRes, err := ExecuteCommand(ctx, cli.commandRunner, "node", "--version")
	if err != nil {
		return false, fmt.Errorf("checking node version: %w", err)
	}

	nodeSemver, err := ExtractVersion(nodeRes)
	if err != nil {
		return false, fmt.Errorf("converting to semver version fails: %w", err)
	}

	updateDetailNode := cli.versionInfoNode()
	if nodeSemver.Compare(updateDetailNode.MinimumVersion) == -1 {
		return false, &ErrSemver{ToolName: "node", VersionInfo: updateDetailNode}
	}

	return true, nil
}

func (cli *npmCli) InstallUrl() string {
	return "https://nodejs.org/"
}

func (cli *npmCli) Name() string {
	return "npm CLI"
}

func (cli *npmCli) RunScript(ctx context.Context, project string, script string, args []string, env []string) error {
	runArgs := []string{"run", script}
	if len(args) > 0 {
		runArgs = append(runArgs, "--")
		runArgs = append(runArgs, args...)
	}

	// Toolchain output streams straight to the terminal.
	_, err := cli.commandRunner.Run(ctx, exec.NewRunArgs("npm", runArgs...).
		WithCwd(project).
		WithEnv(env).
		WithInteractive(true))
	if err != nil {
		return fmt.Errorf("npm run %s on project '%s' failed: %w", script, project, err)
	}

	return nil
}
