package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gantryhq/gantry/internal"
	"github.com/gantryhq/gantry/internal/fingerprint"
	"github.com/gantryhq/gantry/pkg/config"
	"github.com/gantryhq/gantry/pkg/input"
	"github.com/gantryhq/gantry/pkg/lazy"
	"github.com/gantryhq/gantry/pkg/output"
	"github.com/gantryhq/gantry/pkg/project"
	"github.com/gantryhq/gantry/pkg/workspace"
)

// appResolver is the shared front half of every project-facing command:
// it resolves the workspace's project identity and instantiates the matching
// framework adapter. The workspace root is loaded lazily so commands that
// never touch a project, like `gantry config --global`, work outside one.
type appResolver struct {
	lazyRoot    *lazy.Lazy[*workspace.Root]
	rootOptions *internal.GlobalCommandOptions
	files       config.FileConfigManager
	factory     *project.Factory
	console     input.Console
}

func newAppResolver(
	lazyRoot *lazy.Lazy[*workspace.Root],
	rootOptions *internal.GlobalCommandOptions,
	files config.FileConfigManager,
	factory *project.Factory,
	console input.Console,
) *appResolver {
	return &appResolver{
		lazyRoot:    lazyRoot,
		rootOptions: rootOptions,
		files:       files,
		factory:     factory,
		console:     console,
	}
}

// Details resolves the workspace's project identity. Diagnostics stay on the
// result; callers decide how to surface them.
func (r *appResolver) Details(ctx context.Context) (*project.DetailsResult, error) {
	return r.resolve(ctx, r.rootOptions.Project)
}

// App resolves the project and instantiates its framework adapter.
// Diagnostics collected during resolution are printed before any failure is
// surfaced so the user always sees what resolution found. In a multi-app
// workspace with no target project the user is prompted to pick one, unless
// prompting is disabled.
func (r *appResolver) App(ctx context.Context) (*project.App, error) {
	details, err := r.Details(ctx)
	if err != nil {
		return nil, err
	}

	if details.HasError(project.ErrorMultiMissingName) && !r.rootOptions.NoPrompt {
		picked, ok, err := r.promptForProject(ctx, details)
		if err != nil {
			return nil, err
		}
		if ok {
			details = picked
		}
	}

	for _, item := range project.Report(details) {
		r.console.MessageUxItem(ctx, item)
	}

	if len(details.Errors) > 0 {
		return nil, &internal.ErrorWithSuggestion{
			Suggestion: fmt.Sprintf(
				"Run %s to see how the project was resolved.",
				output.WithHighLightFormat("gantry info")),
			Err: errors.New("could not resolve the project in this workspace"),
		}
	}

	if !details.Type.IsValid() {
		return nil, &internal.ErrorWithSuggestion{
			Suggestion: fmt.Sprintf(
				"Add a %s entry to %s to identify the project.",
				output.WithBackticks("type"),
				details.ConfigPath),
			Err: errors.New("this workspace's project file is not recognized"),
		}
	}

	root, err := r.lazyRoot.GetValue()
	if err != nil {
		return nil, err
	}

	return r.factory.CreateFromDetails(root, details), nil
}

// resolve runs one resolution pass with the given --project value. The
// resolver itself is built fresh per call; it reads the project file from
// disk every time.
func (r *appResolver) resolve(ctx context.Context, projectArg string) (*project.DetailsResult, error) {
	root, err := r.lazyRoot.GetValue()
	if err != nil {
		return nil, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	resolver := project.NewDetailsResolver(root, projectArg, wd, fingerprint.Detectors(), r.files)
	return resolver.Resolve(ctx)
}

// promptForProject asks the user which declared project to target and
// resolves again with their choice. Returns ok=false when the workspace
// declares nothing to choose from.
func (r *appResolver) promptForProject(
	ctx context.Context,
	details *project.DetailsResult,
) (*project.DetailsResult, bool, error) {
	declared := details.DeclaredProjects()
	if len(declared) == 0 {
		return nil, false, nil
	}

	selected, err := r.console.Select(ctx, input.ConsoleOptions{
		Message: "Which project would you like to target?",
		Options: declared,
	})
	if err != nil {
		return nil, false, fmt.Errorf("selecting a project: %w", err)
	}

	resolved, err := r.resolve(ctx, declared[selected])
	if err != nil {
		return nil, false, err
	}

	return resolved, true, nil
}
