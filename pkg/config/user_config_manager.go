package config

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// UserConfigManager provides the ability to load and save the gantry
// configuration for the current user (~/.gantry/config.json).
type UserConfigManager interface {
	Save(Config) error
	Load() (Config, error)
}

type userConfigManager struct {
	manager FileConfigManager
}

// NewUserConfigManager creates a new UserConfigManager instance
func NewUserConfigManager(configManager FileConfigManager) UserConfigManager {
	return &userConfigManager{
		manager: configManager,
	}
}

func (m *userConfigManager) Load() (Config, error) {
	configFilePath, err := GetUserConfigFilePath()
	if err != nil {
		return nil, err
	}

	cfg, err := m.manager.Load(configFilePath)
	if err != nil {
		// Ignore missing file errors
		// File will automatically be created on first successful set and save operation
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("creating empty config since '%s' did not exist.", configFilePath)
			return NewEmptyConfig(), nil
		}

		return nil, fmt.Errorf("failed loading gantry user config: %w", err)
	}

	return cfg, nil
}

func (m *userConfigManager) Save(c Config) error {
	configFilePath, err := GetUserConfigFilePath()
	if err != nil {
		return err
	}

	err = m.manager.Save(c, configFilePath)
	if err != nil {
		return fmt.Errorf("failed saving configuration: %w", err)
	}

	return nil
}
