// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/gantryhq/gantry/cmd/actions"
	"github.com/gantryhq/gantry/internal"
	"github.com/gantryhq/gantry/pkg/input"
	"github.com/gantryhq/gantry/pkg/output"
)

type versionAction struct {
	formatter output.Formatter
	writer    io.Writer
	console   input.Console
}

func newVersionAction(
	formatter output.Formatter,
	writer io.Writer,
	console input.Console,
) actions.Action {
	return &versionAction{
		formatter: formatter,
		writer:    writer,
		console:   console,
	}
}

func (v *versionAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	switch v.formatter.Kind() {
	case output.NoneFormat:
		fmt.Fprintf(v.console.Handles().Stdout, "gantry version %s\n", internal.Version)
	case output.JsonFormat:
		versionSpec := internal.GetVersionSpec()
		if err := v.formatter.Format(versionSpec, v.writer, nil); err != nil {
			return nil, err
		}
	}

	return nil, nil
}
