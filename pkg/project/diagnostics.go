// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"fmt"

	"github.com/gantryhq/gantry/pkg/output/ux"
)

// Report renders the diagnostics collected in result as display items. It is
// pure presentation: the caller decides whether and where to print the items,
// and nothing here affects the resolution outcome. Any combination of codes
// in one result is tolerated.
func Report(result *DetailsResult) []ux.UxItem {
	var items []ux.UxItem

	for _, detailsErr := range result.Errors {
		switch detailsErr.Code {
		case ErrorInvalidProjectFile:
			items = append(items, &ux.ErrorWithSuggestion{
				Err:        detailsErr.Cause,
				Message:    detailsErr.Message,
				Suggestion: fmt.Sprintf("Check that %s exists and holds valid JSON.", result.ConfigPath),
			})
		case ErrorMissingProjectType:
			items = append(items, &ux.WarningMessage{
				Description: detailsErr.Message,
				Hints: []string{
					fmt.Sprintf("Set \"type\" to %s in your project file.", ux.OrListAsText(typeNames())),
				},
			})
		case ErrorInvalidProjectType:
			items = append(items, &ux.WarningMessage{
				Description: detailsErr.Message,
				Hints: []string{
					fmt.Sprintf("Valid project types are %s.", ux.AndListAsText(typeNames())),
				},
			})
		case ErrorMultiMissingName:
			items = append(items, &ux.WarningMessage{
				Description: detailsErr.Message,
				Hints: []string{
					"Pass --project <name> to pick one for this run.",
					"Or set \"defaultProject\" in your project file.",
				},
			})
		case ErrorMultiMissingConfig:
			hints := []string{}
			if declared := result.DeclaredProjects(); len(declared) > 0 {
				hints = append(hints, fmt.Sprintf("Declared projects are %s.", ux.AndListAsText(declared)))
			}
			items = append(items, &ux.WarningMessage{
				Description: detailsErr.Message,
				Hints:       hints,
			})
		default:
			items = append(items, &ux.WarningMessage{
				Description: detailsErr.Message,
			})
		}
	}

	return items
}

func typeNames() []string {
	names := make([]string, 0, len(AllTypes()))
	for _, t := range AllTypes() {
		names = append(names, string(t))
	}

	return names
}
