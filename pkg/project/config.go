package project

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/drone/envsubst"
	"github.com/tidwall/gjson"
)

// ProjectConfig is the single-app shape of a gantry.config.json document.
// In a multi-app workspace the same shape describes each entry of the
// projects map.
type ProjectConfig struct {
	// The project's name.
	Name string `json:"name" yaml:"name"`
	// The framework type tag. Empty means "infer by fingerprint detection".
	Type Type `json:"type,omitempty" yaml:"type,omitempty"`
	// The project directory, relative to the workspace root.
	Root string `json:"root,omitempty" yaml:"root,omitempty"`
	// Integrations configured for the project.
	Integrations map[string]IntegrationConfig `json:"integrations,omitempty" yaml:"integrations,omitempty"`
	// The project's hub identifier.
	ProID string `json:"pro_id,omitempty" yaml:"pro_id,omitempty"`
	// Shell command lists per workflow, used by custom projects.
	Targets map[string][]string `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// IntegrationConfig describes one integration attached to a project.
type IntegrationConfig struct {
	// Enabled defaults to true when absent.
	Enabled *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Root    string `json:"root,omitempty" yaml:"root,omitempty"`
}

// Dir returns the project's absolute directory given the workspace root
// directory.
func (c *ProjectConfig) Dir(workspaceDir string) string {
	if c.Root == "" {
		return workspaceDir
	}

	return filepath.Join(workspaceDir, c.Root)
}

// MultiProjectConfig is the multi-app shape of a gantry.config.json document.
type MultiProjectConfig struct {
	Projects       map[string]*ProjectConfig `json:"projects"`
	DefaultProject string                    `json:"defaultProject,omitempty"`

	// Names preserves the declaration order of the projects map, which the
	// parsed form loses. Path matching depends on it.
	Names []string `json:"-"`
}

// IsProjectConfig reports whether document has the single-app shape: a
// string name and no projects key.
func IsProjectConfig(document map[string]any) bool {
	if document == nil {
		return false
	}

	if _, hasProjects := document["projects"]; hasProjects {
		return false
	}

	name, hasName := document["name"]
	if !hasName {
		return false
	}

	_, ok := name.(string)
	return ok
}

// IsMultiProjectConfig reports whether document has the multi-app shape: a
// projects map and no name key.
func IsMultiProjectConfig(document map[string]any) bool {
	if document == nil {
		return false
	}

	if _, hasName := document["name"]; hasName {
		return false
	}

	projects, hasProjects := document["projects"]
	if !hasProjects {
		return false
	}

	_, ok := projects.(map[string]any)
	return ok
}

// ParseProjectConfig builds the single-app view of document, expanding
// ${VAR} environment references the way a shell would.
func ParseProjectConfig(document map[string]any) (*ProjectConfig, error) {
	var config ProjectConfig
	if err := parseConfigSection(document, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ParseMultiProjectConfig builds the multi-app view of document. names is
// the declaration order of the projects map, recovered from the raw
// document bytes (see ProjectNamesInOrder).
func ParseMultiProjectConfig(document map[string]any, names []string) (*MultiProjectConfig, error) {
	var config MultiProjectConfig
	if err := parseConfigSection(document, &config); err != nil {
		return nil, err
	}

	config.Names = names
	return &config, nil
}

func parseConfigSection(document map[string]any, section any) error {
	contents, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("serializing project document: %w", err)
	}

	expanded, err := envsubst.EvalEnv(string(contents))
	if err != nil {
		return fmt.Errorf("replacing environment references: %w", err)
	}

	if err := json.Unmarshal([]byte(expanded), section); err != nil {
		return fmt.Errorf("parsing project config: %w", err)
	}

	return nil
}

// ProjectNamesInOrder returns the keys of the projects map in document
// declaration order. Go maps randomize iteration, so the raw bytes are the
// only place that order survives.
func ProjectNamesInOrder(contents []byte) []string {
	var names []string
	gjson.GetBytes(contents, "projects").ForEach(func(key, value gjson.Result) bool {
		names = append(names, key.String())
		return true
	})

	return names
}
