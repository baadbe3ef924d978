package config

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_FileConfigManager_SaveAndLoadConfig(t *testing.T) {
	var userConfig Config = NewConfig(
		map[string]any{
			"defaults": map[string]any{
				"project": "app",
				"port":    "8100",
			},
		},
	)

	configFilePath := filepath.Join(t.TempDir(), "config.json")
	configManager := NewFileConfigManager(NewManager())

	err := configManager.Save(userConfig, configFilePath)
	require.NoError(t, err)

	existingConfig, err := configManager.Load(configFilePath)
	require.NoError(t, err)
	require.NotNil(t, existingConfig)
	require.Equal(t, userConfig, existingConfig)
}

func Test_FileConfigManager_SaveAndLoadEmptyConfig(t *testing.T) {
	configFilePath := filepath.Join(t.TempDir(), "config.json")

	configManager := NewFileConfigManager(NewManager())
	userConfig := NewConfig(nil)
	err := configManager.Save(userConfig, configFilePath)
	require.NoError(t, err)

	existingConfig, err := configManager.Load(configFilePath)
	require.NoError(t, err)
	require.NotNil(t, existingConfig)
}

func Test_FileConfigManager_LoadMissingFile(t *testing.T) {
	configManager := NewFileConfigManager(NewManager())

	cfg, err := configManager.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.Nil(t, cfg)
}

func Test_Secrets_GetSet(t *testing.T) {
	configFilePath := filepath.Join(t.TempDir(), "config.json")
	configManager := NewFileConfigManager(NewManager())
	userConfig := NewConfig(nil)

	// Standard secrets
	expectedToken := "tok_5fd1a9"
	err := userConfig.SetSecret("pro.token", expectedToken)
	require.NoError(t, err)

	err = userConfig.SetSecret("registries.internal.authToken", expectedToken)
	require.NoError(t, err)

	// Missing vault reference
	missingVaultRef := fmt.Sprintf("vault://%s/%s", uuid.New().String(), uuid.New().String())
	err = userConfig.Set("pro.missingVaultRef", missingVaultRef)
	require.NoError(t, err)

	err = configManager.Save(userConfig, configFilePath)
	require.NoError(t, err)

	updatedConfig, err := configManager.Load(configFilePath)
	require.NoError(t, err)
	require.NotNil(t, updatedConfig)

	proToken, ok := updatedConfig.GetString("pro.token")
	require.True(t, ok)
	require.Equal(t, expectedToken, proToken)

	registryToken, ok := updatedConfig.GetString("registries.internal.authToken")
	require.True(t, ok)
	require.Equal(t, expectedToken, registryToken)

	// Missing vault reference will return empty string
	missingToken, ok := updatedConfig.GetString("pro.missingVaultRef")
	require.False(t, ok)
	require.Empty(t, missingToken)

	// Secrets never land in the config file in plain text
	vaultRef, ok := updatedConfig.Raw()["pro"].(map[string]any)["token"]
	require.True(t, ok)
	require.NotEqual(t, expectedToken, vaultRef)
}
