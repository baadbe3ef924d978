// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tools

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
)

// EnsureInstalled checks that every tool is installed, combining all
// failures into one error so the user sees the full list at once instead of
// fixing tools one run at a time.
func EnsureInstalled(ctx context.Context, tools ...ExternalTool) error {
	var allErrors error

	for _, tool := range tools {
		has, err := tool.CheckInstalled(ctx)
		switch {
		case err != nil:
			allErrors = multierr.Append(allErrors, fmt.Errorf("checking for %s: %w", tool.Name(), err))
		case !has:
			allErrors = multierr.Append(allErrors, fmt.Errorf(
				"required tool %s is not installed (install instructions: %s)", tool.Name(), tool.InstallUrl()))
		}
	}

	return allErrors
}

// Unique filters tools down to one entry per tool name, preserving order.
// Framework adapters may report the same tool for several workflows.
func Unique(tools []ExternalTool) []ExternalTool {
	uniqueTools := []ExternalTool{}
	seen := map[string]struct{}{}

	for _, tool := range tools {
		if _, has := seen[tool.Name()]; !has {
			uniqueTools = append(uniqueTools, tool)
			seen[tool.Name()] = struct{}{}
		}
	}

	return uniqueTools
}
