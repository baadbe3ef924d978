// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ScopedConfig_ReadsBeneathPrefix(t *testing.T) {
	root := NewConfig(map[string]any{
		"defaultProject": "app",
		"projects": map[string]any{
			"app": map[string]any{
				"name": "app",
				"type": "angular",
			},
		},
	})

	scoped := NewScopedConfig(root, "projects", "app")

	name, ok := scoped.GetString("name")
	require.True(t, ok)
	require.Equal(t, "app", name)

	// Keys outside the prefix are invisible
	_, ok = scoped.Get("defaultProject")
	require.False(t, ok)
}

func Test_ScopedConfig_WritesThroughToRoot(t *testing.T) {
	root := NewConfig(map[string]any{
		"projects": map[string]any{
			"app": map[string]any{
				"name": "app",
			},
		},
	})

	scoped := NewScopedConfig(root, "projects", "app")

	require.NoError(t, scoped.Set("type", "react"))

	// The write is visible through the root document
	value, ok := root.GetString("projects.app.type")
	require.True(t, ok)
	require.Equal(t, "react", value)

	require.NoError(t, scoped.Unset("type"))
	_, ok = root.Get("projects.app.type")
	require.False(t, ok)
}

func Test_ScopedConfig_RawAndIsEmpty(t *testing.T) {
	root := NewConfig(map[string]any{
		"projects": map[string]any{
			"app": map[string]any{
				"name": "app",
			},
		},
	})

	scoped := NewScopedConfig(root, "projects", "app")
	require.False(t, scoped.IsEmpty())
	require.Equal(t, map[string]any{"name": "app"}, scoped.Raw())

	// A prefix that points nowhere behaves like an empty document
	missing := NewScopedConfig(root, "projects", "missing")
	require.True(t, missing.IsEmpty())
	require.Empty(t, missing.Raw())
}

func Test_ScopedConfig_GetSection(t *testing.T) {
	type integration struct {
		Root string `json:"root"`
	}

	root := NewConfig(map[string]any{
		"projects": map[string]any{
			"app": map[string]any{
				"integrations": map[string]any{
					"capacitor": map[string]any{
						"root": "apps/app",
					},
				},
			},
		},
	})

	scoped := NewScopedConfig(root, "projects", "app")

	var section integration
	ok, err := scoped.GetSection("integrations.capacitor", &section)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "apps/app", section.Root)
}
