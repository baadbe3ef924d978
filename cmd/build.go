package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/gantryhq/gantry/cmd/actions"
	"github.com/gantryhq/gantry/internal"
	"github.com/gantryhq/gantry/pkg/input"
	"github.com/gantryhq/gantry/pkg/output/ux"
	"github.com/gantryhq/gantry/pkg/project"
	"github.com/gantryhq/gantry/pkg/tools"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type buildFlags struct {
	global *internal.GlobalCommandOptions
}

func newBuildFlags(cmd *cobra.Command, global *internal.GlobalCommandOptions) *buildFlags {
	flags := &buildFlags{}
	flags.Bind(cmd.Flags(), global)

	return flags
}

func (f *buildFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	f.global = global
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Builds the project with its framework toolchain.",
		Long: heredoc.Doc(`
			Builds the project with its framework toolchain.

			Arguments after -- are forwarded to the toolchain:

			  $ gantry build -- --prod`),
		Args: cobra.ArbitraryArgs,
	}
}

type buildAction struct {
	flags    *buildFlags
	args     []string
	resolver *appResolver
	console  input.Console
}

func newBuildAction(
	flags *buildFlags,
	args []string,
	resolver *appResolver,
	console input.Console,
) actions.Action {
	return &buildAction{
		flags:    flags,
		args:     args,
		resolver: resolver,
		console:  console,
	}
}

func (ba *buildAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	app, err := ba.resolver.App(ctx)
	if err != nil {
		return nil, err
	}

	if err := ensureTools(ctx, ba.console, app); err != nil {
		return nil, err
	}

	runner, err := app.BuildRunner()
	if errors.Is(err, project.ErrRunnerNotFound) {
		ba.console.MessageUxItem(ctx, &ux.SkippedMessage{
			Message: fmt.Sprintf("%s projects do not define a build step.", app.Type),
		})
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	ba.console.Message(ctx, fmt.Sprintf("Building project (%s)", app.Type))

	if err := runner.Build(ctx, ba.args); err != nil {
		return nil, fmt.Errorf("building project: %w", err)
	}

	return &actions.ActionResult{
		Message: &actions.ResultMessage{
			Header: "Your project has been built.",
		},
	}, nil
}

// ensureTools validates that the CLI tools the app's workflows shell out to
// are installed, failing with the full list of what is missing.
func ensureTools(ctx context.Context, console input.Console, app *project.App) error {
	required := tools.Unique(app.RequiredExternalTools(ctx))
	if len(required) == 0 {
		return nil
	}

	console.ShowSpinner(ctx, "Checking required tools")
	defer console.StopSpinner(ctx, "")

	return tools.EnsureInstalled(ctx, required...)
}
