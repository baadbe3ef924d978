// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gantryhq/gantry/pkg/output/ux"
)

func Test_Report_InvalidProjectFile(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	result := &DetailsResult{
		ConfigPath: "/work/gantry.config.json",
		Errors: []DetailsError{
			{
				Message: "Could not load the project file at /work/gantry.config.json.",
				Code:    ErrorInvalidProjectFile,
				Cause:   cause,
			},
		},
	}

	items := Report(result)
	require.Len(t, items, 1)

	item, ok := items[0].(*ux.ErrorWithSuggestion)
	require.True(t, ok)
	require.Equal(t, cause, item.Err)
	require.Contains(t, item.Suggestion, "/work/gantry.config.json")
}

func Test_Report_TypeWarnings(t *testing.T) {
	result := &DetailsResult{
		Errors: []DetailsError{
			{Message: "Could not determine the project type.", Code: ErrorMissingProjectType},
			{Message: "Invalid project type: vue.", Code: ErrorInvalidProjectType},
		},
	}

	items := Report(result)
	require.Len(t, items, 2)

	missing, ok := items[0].(*ux.WarningMessage)
	require.True(t, ok)
	require.Len(t, missing.Hints, 1)
	require.Equal(t,
		`Set "type" to ionic-angular, ionic1, angular, react or custom in your project file.`,
		missing.Hints[0])

	invalid, ok := items[1].(*ux.WarningMessage)
	require.True(t, ok)
	require.Len(t, invalid.Hints, 1)
	require.Equal(t,
		"Valid project types are ionic-angular, ionic1, angular, react and custom.",
		invalid.Hints[0])
}

func Test_Report_MultiMissingName(t *testing.T) {
	result := &DetailsResult{
		Errors: []DetailsError{
			{
				Message: "Could not determine the target project in this multi-app workspace.",
				Code:    ErrorMultiMissingName,
			},
		},
	}

	items := Report(result)
	require.Len(t, items, 1)

	warning, ok := items[0].(*ux.WarningMessage)
	require.True(t, ok)
	require.Len(t, warning.Hints, 2)
	require.Contains(t, warning.Hints[0], "--project")
	require.Contains(t, warning.Hints[1], "defaultProject")
}

func Test_Report_MultiMissingConfig(t *testing.T) {
	result := &DetailsResult{
		Raw: map[string]any{
			"projects": map[string]any{
				"web": map[string]any{},
				"app": map[string]any{},
			},
		},
		Errors: []DetailsError{
			{Message: `The project "unknown" is not declared in this workspace.`, Code: ErrorMultiMissingConfig},
		},
	}

	items := Report(result)
	require.Len(t, items, 1)

	warning, ok := items[0].(*ux.WarningMessage)
	require.True(t, ok)
	require.Equal(t, []string{"Declared projects are app and web."}, warning.Hints)

	// With nothing declared there is nothing to suggest.
	result.Raw = map[string]any{"projects": map[string]any{}}
	items = Report(result)
	require.Len(t, items, 1)
	require.Empty(t, items[0].(*ux.WarningMessage).Hints)
}

func Test_Report_ToleratesAnyCodeMix(t *testing.T) {
	result := &DetailsResult{
		ConfigPath: "/work/gantry.config.json",
		Errors: []DetailsError{
			{Message: "Could not load the project file.", Code: ErrorInvalidProjectFile},
			{Message: "Could not determine the project type.", Code: ErrorMissingProjectType},
			{Message: "Something else went wrong.", Code: ErrorCode("ERR_FUTURE")},
		},
	}

	// One rendered item per diagnostic, in collection order, even for code
	// combinations resolution never produces today.
	items := Report(result)
	require.Len(t, items, 3)

	_, ok := items[0].(*ux.ErrorWithSuggestion)
	require.True(t, ok)

	fallback, ok := items[2].(*ux.WarningMessage)
	require.True(t, ok)
	require.Equal(t, "Something else went wrong.", fallback.Description)
	require.Empty(t, fallback.Hints)
}

func Test_Report_NoErrors(t *testing.T) {
	require.Empty(t, Report(&DetailsResult{Errors: []DetailsError{}}))
}
