// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/gantryhq/gantry/cmd/actions"
	"github.com/gantryhq/gantry/pkg/input"
	"github.com/gantryhq/gantry/pkg/output/ux"
	"github.com/gantryhq/gantry/pkg/project"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <schematic> [name]",
		Short: "Generate code scaffolding in the project.",
		Long: heredoc.Doc(`
			Generate code scaffolding in the project.

			The schematics available depend on the project type. Arguments after
			-- are forwarded to the toolchain:

			  $ gantry generate component navbar -- --skip-tests
		`),
		Args: cobra.MinimumNArgs(1),
	}
}

type generateAction struct {
	cmd      *cobra.Command
	args     []string
	resolver *appResolver
	console  input.Console
}

func newGenerateAction(
	cmd *cobra.Command,
	args []string,
	resolver *appResolver,
	console input.Console,
) actions.Action {
	return &generateAction{
		cmd:      cmd,
		args:     args,
		resolver: resolver,
		console:  console,
	}
}

func (ga *generateAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	app, err := ga.resolver.App(ctx)
	if err != nil {
		return nil, err
	}

	if err := ensureTools(ctx, ga.console, app); err != nil {
		return nil, err
	}

	runner, err := app.GenerateRunner()
	if errors.Is(err, project.ErrRunnerNotFound) {
		ga.console.MessageUxItem(ctx, &ux.SkippedMessage{
			Message: fmt.Sprintf("Generating is not supported for %s projects.", app.Type),
		})
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("selecting generate runner: %w", err)
	}

	positional, forwarded := splitDashArgs(ga.cmd, ga.args)
	if len(positional) == 0 {
		return nil, errors.New("a schematic is required: gantry generate <schematic> [name]")
	}

	schematic := positional[0]
	name := ""
	if len(positional) > 1 {
		name = positional[1]
	}

	extra := make([]string, 0, len(positional[2:])+len(forwarded))
	extra = append(extra, positional[2:]...)
	extra = append(extra, forwarded...)

	ga.console.Message(ctx, fmt.Sprintf("Generating %s (%s)", schematic, app.Type))

	if err := runner.Generate(ctx, schematic, name, extra); err != nil {
		return nil, fmt.Errorf("generating %s: %w", schematic, err)
	}

	return &actions.ActionResult{
		Message: &actions.ResultMessage{
			Header: "Your code has been generated.",
		},
	}, nil
}

// splitDashArgs divides parsed args into positionals and the args that
// followed a -- separator, which callers forward to the toolchain untouched.
func splitDashArgs(cmd *cobra.Command, args []string) (positional []string, forwarded []string) {
	dashAt := cmd.Flags().ArgsLenAtDash()
	if dashAt < 0 {
		return args, nil
	}

	return args[:dashAt], args[dashAt:]
}
