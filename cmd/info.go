// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/gantryhq/gantry/cmd/actions"
	"github.com/gantryhq/gantry/pkg/input"
	"github.com/gantryhq/gantry/pkg/output"
	"github.com/gantryhq/gantry/pkg/project"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show how the project was resolved.",
		Long: heredoc.Doc(`
			Show how the project was resolved.

			Prints the project file in use, the workspace context, and the
			resolved project type and name, together with any diagnostics the
			resolution produced.
		`),
	}
}

type infoAction struct {
	resolver  *appResolver
	formatter output.Formatter
	writer    io.Writer
	console   input.Console
}

func newInfoAction(
	resolver *appResolver,
	formatter output.Formatter,
	writer io.Writer,
	console input.Console,
) actions.Action {
	return &infoAction{
		resolver:  resolver,
		formatter: formatter,
		writer:    writer,
		console:   console,
	}
}

// Run reports the resolution outcome without requiring it to have succeeded.
// Diagnostics print as warnings; only failing to locate a workspace is fatal.
func (a *infoAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	details, err := a.resolver.Details(ctx)
	if err != nil {
		return nil, err
	}

	if a.formatter.Kind() != output.NoneFormat {
		if err := a.formatter.Format(details, a.writer, nil); err != nil {
			return nil, fmt.Errorf("failing formatting project details: %w", err)
		}

		return nil, nil
	}

	if err := details.Display(a.writer); err != nil {
		return nil, err
	}

	for _, item := range project.Report(details) {
		a.console.MessageUxItem(ctx, item)
	}

	return nil, nil
}
