// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/gantryhq/gantry/internal/fingerprint"
	"github.com/gantryhq/gantry/pkg/config"
	"github.com/gantryhq/gantry/pkg/workspace"
)

// DetailsResolver resolves which project an invocation targets. It is
// constructed per invocation and holds no state across resolutions; every
// Resolve reads the project file fresh from disk.
type DetailsResolver struct {
	root       *workspace.Root
	projectArg string
	workDir    string
	detectors  []fingerprint.Detector
	files      config.FileConfigManager
}

// NewDetailsResolver creates a resolver for the given workspace. projectArg
// is the value of the --project flag, empty when not passed; workDir is the
// directory the command was invoked from.
func NewDetailsResolver(
	root *workspace.Root,
	projectArg string,
	workDir string,
	detectors []fingerprint.Detector,
	files config.FileConfigManager,
) *DetailsResolver {
	return &DetailsResolver{
		root:       root,
		projectArg: projectArg,
		workDir:    workDir,
		detectors:  detectors,
		files:      files,
	}
}

// Resolve determines the workspace's project identity. The diagnostic
// conditions it can encounter are collected into the result's Errors and
// never returned as a Go error; the error return carries only failures
// outside that taxonomy, such as a failed write while migrating legacy keys.
func (r *DetailsResolver) Resolve(ctx context.Context) (*DetailsResult, error) {
	result := &DetailsResult{
		Context:    ContextUnknown,
		ConfigPath: workspace.ProjectPath(r.root),
		Errors:     []DetailsError{},
	}

	log.Printf("resolving project details from '%s'", result.ConfigPath)

	store, err := config.LoadStore(result.ConfigPath, r.files, config.StoreOptions{})
	if err != nil {
		result.Errors = append(result.Errors, DetailsError{
			Message: fmt.Sprintf("Could not load the project file at %s.", result.ConfigPath),
			Code:    ErrorInvalidProjectFile,
			Cause:   err,
		})
		return result, nil
	}

	document := store.Config().Raw()
	result.Raw = document

	switch {
	case IsProjectConfig(document):
		result.Context = ContextApp
		return r.resolveApp(ctx, result)
	case IsMultiProjectConfig(document):
		result.Context = ContextMultiApp
		return r.resolveMultiApp(ctx, result, store)
	default:
		return result, nil
	}
}

func (r *DetailsResolver) resolveApp(ctx context.Context, result *DetailsResult) (*DetailsResult, error) {
	// Reload with migration enabled; the typed view is built from the
	// migrated document.
	store, err := config.LoadStore(result.ConfigPath, r.files, config.StoreOptions{
		Migrate: MigrateAppID,
	})
	if err != nil {
		return nil, fmt.Errorf("migrating project file: %w", err)
	}

	projectConfig, err := ParseProjectConfig(store.Config().Raw())
	if err != nil {
		result.Errors = append(result.Errors, DetailsError{
			Message: fmt.Sprintf("Could not load the project file at %s.", result.ConfigPath),
			Code:    ErrorInvalidProjectFile,
			Cause:   err,
		})
		return result, nil
	}

	result.Config = projectConfig
	r.determineType(ctx, result, projectConfig)

	return result, nil
}

func (r *DetailsResolver) resolveMultiApp(
	ctx context.Context,
	result *DetailsResult,
	store *config.Store,
) (*DetailsResult, error) {
	names := ProjectNamesInOrder(store.Contents())
	multi, err := ParseMultiProjectConfig(store.Config().Raw(), names)
	if err != nil {
		result.Errors = append(result.Errors, DetailsError{
			Message: fmt.Sprintf("Could not load the project file at %s.", result.ConfigPath),
			Code:    ErrorInvalidProjectFile,
			Cause:   err,
		})
		return result, nil
	}

	name, ok := firstOf[string](ctx,
		argName{name: r.projectArg},
		pathMatchName{workDir: r.workDir, workspaceDir: r.root.Directory(), multi: multi},
		defaultName{multi: multi},
	)
	if !ok {
		result.Errors = append(result.Errors, DetailsError{
			Message: "Could not determine the target project in this multi-app workspace.",
			Code:    ErrorMultiMissingName,
		})
		return result, nil
	}

	result.Name = name

	if entry, declared := multi.Projects[name]; !declared || entry == nil {
		result.Errors = append(result.Errors, DetailsError{
			Message: fmt.Sprintf("The project \"%s\" is not declared in this workspace.", name),
			Code:    ErrorMultiMissingConfig,
		})
		return result, nil
	}

	// Reload scoped to the active project with migration enabled, then
	// rebuild the view from the migrated document.
	subStore, err := config.LoadStore(result.ConfigPath, r.files, config.StoreOptions{
		PathPrefix: "projects." + name,
		Migrate:    MigrateAppID,
	})
	if err != nil {
		return nil, fmt.Errorf("migrating project %q: %w", name, err)
	}

	migrated, err := ParseMultiProjectConfig(subStore.Config().Raw(), names)
	if err != nil {
		result.Errors = append(result.Errors, DetailsError{
			Message: fmt.Sprintf("Could not load the project file at %s.", result.ConfigPath),
			Code:    ErrorInvalidProjectFile,
			Cause:   err,
		})
		return result, nil
	}

	result.Config = migrated.Projects[name]
	r.determineType(ctx, result, result.Config)

	return result, nil
}

// determineType runs the type strategy chain against projectConfig and
// records the outcome on result. An explicit type field always wins over
// detection, even when its value turns out to be unsupported.
func (r *DetailsResolver) determineType(ctx context.Context, result *DetailsResult, projectConfig *ProjectConfig) {
	resolved, ok := firstOf[Type](ctx,
		explicitType{config: projectConfig},
		detectedType{dir: r.root.Directory(), detectors: r.detectors},
	)
	if !ok {
		result.Errors = append(result.Errors, DetailsError{
			Message: "Could not determine the project type.",
			Code:    ErrorMissingProjectType,
		})
		return
	}

	if !resolved.IsValid() {
		result.Errors = append(result.Errors, DetailsError{
			Message: fmt.Sprintf("Invalid project type: %s.", resolved),
			Code:    ErrorInvalidProjectType,
		})
		return
	}

	result.Type = resolved
}

// strategy yields an optional value. Strategies compose into ordered chains
// where the first yielded value wins.
type strategy[T any] interface {
	Resolve(ctx context.Context) (T, bool)
}

// firstOf runs strategies in order and returns the first value one of them
// yields. Later strategies are never evaluated once an earlier one yields:
// explicit inputs are authoritative and detection probes are not free, so
// the chain stays strictly sequential.
func firstOf[T any](ctx context.Context, strategies ...strategy[T]) (T, bool) {
	for _, s := range strategies {
		if value, ok := s.Resolve(ctx); ok {
			return value, true
		}
	}

	var zero T
	return zero, false
}

// explicitType yields the config's declared type field, valid or not.
type explicitType struct {
	config *ProjectConfig
}

func (s explicitType) Resolve(ctx context.Context) (Type, bool) {
	if s.config.Type == "" {
		return "", false
	}

	return s.config.Type, true
}

// detectedType probes the directory's fingerprints in priority order.
type detectedType struct {
	dir       string
	detectors []fingerprint.Detector
}

func (s detectedType) Resolve(ctx context.Context) (Type, bool) {
	framework, ok := fingerprint.Match(ctx, s.dir, s.detectors)
	if !ok {
		return "", false
	}

	return Type(framework), true
}

// argName yields the project name passed on the command line.
type argName struct {
	name string
}

func (s argName) Resolve(ctx context.Context) (string, bool) {
	return s.name, s.name != ""
}

// pathMatchName yields the first declared project whose root contains the
// working directory.
type pathMatchName struct {
	workDir      string
	workspaceDir string
	multi        *MultiProjectConfig
}

func (s pathMatchName) Resolve(ctx context.Context) (string, bool) {
	for _, name := range s.multi.Names {
		entry := s.multi.Projects[name]
		if entry == nil || entry.Root == "" {
			continue
		}

		if pathContains(filepath.Join(s.workspaceDir, entry.Root), s.workDir) {
			return name, true
		}
	}

	return "", false
}

// defaultName yields the config's defaultProject field.
type defaultName struct {
	multi *MultiProjectConfig
}

func (s defaultName) Resolve(ctx context.Context) (string, bool) {
	return s.multi.DefaultProject, s.multi.DefaultProject != ""
}

// pathContains reports whether child is parent or lives beneath it.
func pathContains(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}

	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
