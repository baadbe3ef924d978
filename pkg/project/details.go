package project

import (
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrorCode classifies a diagnostic collected during resolution.
type ErrorCode string

const (
	// The project file could not be read or parsed. Fatal to resolution:
	// no further strategies run.
	ErrorInvalidProjectFile ErrorCode = "ERR_INVALID_PROJECT_FILE"
	// No strategy yielded a project type.
	ErrorMissingProjectType ErrorCode = "ERR_MISSING_PROJECT_TYPE"
	// A project type was found but is not in the supported set.
	ErrorInvalidProjectType ErrorCode = "ERR_INVALID_PROJECT_TYPE"
	// No strategy yielded an active sub-project name.
	ErrorMultiMissingName ErrorCode = "ERR_MULTI_MISSING_NAME"
	// The resolved sub-project name is not declared in the projects map.
	ErrorMultiMissingConfig ErrorCode = "ERR_MULTI_MISSING_CONFIG"
)

// Context classifies the shape of a workspace's project file.
type Context string

const (
	ContextApp      Context = "app"
	ContextMultiApp Context = "multiapp"
	ContextUnknown  Context = "unknown"
)

// DetailsError is a diagnostic recorded while resolving project identity.
// It is a value, not a Go error: the resolver collects these and carries on
// instead of failing on the first problem.
type DetailsError struct {
	Message string    `json:"message" yaml:"message"`
	Code    ErrorCode `json:"code" yaml:"code"`
	Cause   error     `json:"-" yaml:"-"`
}

// DetailsResult is the outcome of resolving a workspace's project identity.
// Errors is always present; the other fields are filled in as far as the
// resolution got.
type DetailsResult struct {
	// Context is app, multiapp, or unknown.
	Context Context `json:"context" yaml:"context"`
	// Type is the resolved project type, empty when undetermined.
	Type Type `json:"type,omitempty" yaml:"type,omitempty"`
	// Name is the active sub-project name. Only set for multiapp workspaces.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// ConfigPath is the location of the project file.
	ConfigPath string `json:"configPath" yaml:"configPath"`
	// Config is the single-app view the resolution settled on: the document
	// itself for app workspaces, the active sub-project's entry for multiapp
	// ones. Nil when resolution stopped before reaching one.
	Config *ProjectConfig `json:"config,omitempty" yaml:"config,omitempty"`
	// Raw is the parsed project file document, nil when it could not be read.
	Raw map[string]any `json:"-" yaml:"-"`
	// Errors collects every diagnostic the resolution encountered.
	Errors []DetailsError `json:"errors" yaml:"errors"`
}

// HasError reports whether the result carries a diagnostic with the given code.
func (r *DetailsResult) HasError(code ErrorCode) bool {
	for _, detailsErr := range r.Errors {
		if detailsErr.Code == code {
			return true
		}
	}

	return false
}

// DeclaredProjects returns the names in the document's projects map,
// alphabetically. Empty for single-app and unreadable workspaces.
func (r *DetailsResult) DeclaredProjects() []string {
	projects, ok := r.Raw["projects"].(map[string]any)
	if !ok {
		return nil
	}

	names := maps.Keys(projects)
	slices.Sort(names)

	return names
}

// Display writes a human-readable summary of the resolution suitable for
// terminal output. Diagnostics are not included; render those separately.
func (r *DetailsResult) Display(writer io.Writer) error {
	tabs := tabwriter.NewWriter(writer, 0, 4, 1, ' ', 0)

	text := [][]string{
		{"Project file", ":", r.ConfigPath},
		{"Context", ":", string(r.Context)},
	}

	if r.Type != "" {
		text = append(text, []string{"Type", ":", string(r.Type)})
	}

	if r.Name != "" {
		text = append(text, []string{"Name", ":", r.Name})
	}

	if declared := r.DeclaredProjects(); len(declared) > 0 {
		text = append(text, []string{"Projects", ":", strings.Join(declared, ", ")})
	}

	if r.Config != nil && len(r.Config.Integrations) > 0 {
		integrations := maps.Keys(r.Config.Integrations)
		slices.Sort(integrations)
		text = append(text, []string{"Integrations", ":", strings.Join(integrations, ", ")})
	}

	for _, line := range text {
		if _, err := tabs.Write([]byte(strings.Join(line, "\t") + "\n")); err != nil {
			return err
		}
	}

	return tabs.Flush()
}
