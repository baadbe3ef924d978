package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gantryhq/gantry/pkg/osutil"
)

// FileConfigManager provides the ability to load, parse and save gantry configuration files
type FileConfigManager interface {
	// Saves the configuration to the specified file path
	// Path is automatically created if it does not exist
	Save(config Config, filePath string) error

	// Loads configuration from the specified file path
	Load(filePath string) (Config, error)
}

// NewFileConfigManager creates a new FileConfigManager instance
func NewFileConfigManager(configManager Manager) FileConfigManager {
	return &fileConfigManager{
		manager: configManager,
	}
}

type fileConfigManager struct {
	manager Manager
}

func (m *fileConfigManager) Load(filePath string) (Config, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed opening configuration file: %w", err)
	}

	defer file.Close()

	cfg, err := m.manager.Load(file)
	if err != nil {
		return nil, err
	}

	// When the document references a vault, the vault file must load too. A
	// missing vault surfaces as os.ErrNotExist, the same as a missing config.
	if vaultId, has := cfg.GetString(vaultKeyName); has {
		vault, err := m.Load(vaultFilePath(filePath, vaultId))
		if err != nil {
			return nil, fmt.Errorf("failed loading vault '%s': %w", vaultId, err)
		}

		if impl, ok := cfg.(*config); ok {
			impl.vaultId = vaultId
			impl.vault = vault
		}
	}

	return cfg, nil
}

func (m *fileConfigManager) Save(c Config, filePath string) error {
	folderPath := filepath.Dir(filePath)
	if err := os.MkdirAll(folderPath, osutil.PermissionDirectory); err != nil {
		return fmt.Errorf("failed creating config directory: %w", err)
	}

	// Secrets live in a sibling vault file, saved before the document that
	// references them.
	if impl, ok := c.(*config); ok && impl.vault != nil {
		vaultPath := vaultFilePath(filePath, impl.vaultId)
		if err := os.MkdirAll(filepath.Dir(vaultPath), osutil.PermissionDirectoryOwnerOnly); err != nil {
			return fmt.Errorf("failed creating vault directory: %w", err)
		}

		vaultFile, err := os.OpenFile(vaultPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, osutil.PermissionFileOwnerOnly)
		if err != nil {
			return fmt.Errorf("failed creating vault file: %w", err)
		}
		defer vaultFile.Close()

		if err := m.manager.Save(impl.vault, vaultFile); err != nil {
			return fmt.Errorf("failed saving vault: %w", err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, osutil.PermissionFile)
	if err != nil {
		return fmt.Errorf("failed creating config file: %w", err)
	}
	defer file.Close()

	err = m.manager.Save(c, file)
	if err != nil {
		return err
	}

	return nil
}

func vaultFilePath(configFilePath string, vaultId string) string {
	return filepath.Join(filepath.Dir(configFilePath), "vaults", fmt.Sprintf("%s.json", vaultId))
}
