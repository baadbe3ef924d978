package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_SetGetUnsetWithValue(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		value any
	}{
		{
			name:  "RootValue",
			path:  "name",
			value: "my-app",
		},
		{
			name:  "NestedValue",
			path:  "integrations.capacitor.root",
			value: "packages/app",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := NewConfig(nil)
			err := cfg.Set(test.path, test.value)
			require.NoError(t, err)

			value, ok := cfg.Get(test.path)
			require.True(t, ok)
			require.Equal(t, test.value, value)

			err = cfg.Unset(test.path)
			require.NoError(t, err)

			value, ok = cfg.Get(test.path)
			require.Nil(t, value)
			require.False(t, ok)
		})
	}
}

func Test_SetGetUnsetRootNodeWithChildren(t *testing.T) {
	expectedType := "angular"
	expectedName := "my-app"

	cfg := NewConfig(nil)
	_ = cfg.Set("projects.app.type", expectedType)
	_ = cfg.Set("projects.app.root", "apps/app")
	_ = cfg.Set("defaultProject", expectedName)

	projectType, ok := cfg.Get("projects.app.type")
	require.True(t, ok)
	require.Equal(t, expectedType, projectType)

	defaultProject, ok := cfg.Get("defaultProject")
	require.True(t, ok)
	require.Equal(t, expectedName, defaultProject)

	// Remove the whole projects.app object
	err := cfg.Unset("projects.app")
	require.NoError(t, err)

	// Type should not exist
	projectType, ok = cfg.Get("projects.app.type")
	require.False(t, ok)
	require.Nil(t, projectType)

	// defaultProject should still exist
	defaultProject, ok = cfg.Get("defaultProject")
	require.True(t, ok)
	require.Equal(t, expectedName, defaultProject)
}

func Test_UnsetMissingPathIsNoop(t *testing.T) {
	cfg := NewConfig(map[string]any{
		"name": "my-app",
	})

	err := cfg.Unset("projects.app.type")
	require.NoError(t, err)

	name, ok := cfg.GetString("name")
	require.True(t, ok)
	require.Equal(t, "my-app", name)
}

func Test_GetString(t *testing.T) {
	cfg := NewConfig(map[string]any{
		"name":  "my-app",
		"count": 2,
	})

	name, ok := cfg.GetString("name")
	require.True(t, ok)
	require.Equal(t, "my-app", name)

	// Non string values report not-ok
	count, ok := cfg.GetString("count")
	require.False(t, ok)
	require.Empty(t, count)

	missing, ok := cfg.GetString("missing")
	require.False(t, ok)
	require.Empty(t, missing)
}

func Test_GetSection(t *testing.T) {
	type projectSection struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}

	cfg := NewConfig(map[string]any{
		"projects": map[string]any{
			"app": map[string]any{
				"name": "app",
				"type": "angular",
			},
		},
	})

	var section projectSection
	ok, err := cfg.GetSection("projects.app", &section)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "app", section.Name)
	require.Equal(t, "angular", section.Type)

	ok, err = cfg.GetSection("projects.missing", &section)
	require.NoError(t, err)
	require.False(t, ok)
}

func Test_IsEmpty(t *testing.T) {
	cfg := NewEmptyConfig()
	require.True(t, cfg.IsEmpty())

	require.NoError(t, cfg.Set("name", "my-app"))
	require.False(t, cfg.IsEmpty())
}

func Test_SetSecretAndResolvedRaw(t *testing.T) {
	cfg := NewConfig(nil)

	require.NoError(t, cfg.Set("name", "my-app"))
	require.NoError(t, cfg.SetSecret("pro.token", "s3cret"))

	// The raw document carries a vault reference, never the plain value
	raw := cfg.Raw()
	require.NotEqual(t, "s3cret", raw["pro"].(map[string]any)["token"])
	require.Contains(t, raw, vaultKeyName)

	// Get resolves the reference back to the secret
	token, ok := cfg.GetString("pro.token")
	require.True(t, ok)
	require.Equal(t, "s3cret", token)

	// ResolvedRaw inlines the secret and drops the vault key
	resolved := cfg.ResolvedRaw()
	require.Equal(t, "s3cret", resolved["pro"].(map[string]any)["token"])
	require.NotContains(t, resolved, vaultKeyName)
}

func Test_DanglingVaultReferenceResolvesToNothing(t *testing.T) {
	cfg := NewConfig(map[string]any{
		"pro": map[string]any{
			"token": "vault://00000000-0000-0000-0000-000000000000/00000000-0000-0000-0000-000000000000",
		},
	})

	value, ok := cfg.GetString("pro.token")
	require.False(t, ok)
	require.Empty(t, value)
}
