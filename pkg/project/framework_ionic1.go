// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/otiai10/copy"

	"github.com/gantryhq/gantry/pkg/devserver"
	"github.com/gantryhq/gantry/pkg/input"
	"github.com/gantryhq/gantry/pkg/output"
	"github.com/gantryhq/gantry/pkg/tools"
)

// stopTimeout bounds dev-server teardown after the serve context ends.
const stopTimeout = 5 * time.Second

// ionic1Project serves legacy v1 trees. There is no build step: the www
// directory is the deployable artifact, served directly with livereload.
// Generate copies a scaffold tree instead of invoking framework tooling.
type ionic1Project struct {
	console input.Console
}

// NewIonic1Project creates the framework service for ionic1 apps.
func NewIonic1Project(console input.Console) FrameworkService {
	return &ionic1Project{
		console: console,
	}
}

func (p *ionic1Project) RequiredExternalTools(_ context.Context, _ *App) []tools.ExternalTool {
	return []tools.ExternalTool{}
}

func (p *ionic1Project) BuildRunner(app *App) (BuildRunner, error) {
	return nil, ErrRunnerNotFound
}

func (p *ionic1Project) ServeRunner(app *App) (ServeRunner, error) {
	return ServeRunnerFunc(func(ctx context.Context, options ServeOptions) error {
		root := filepath.Join(app.Dir, "www")
		if _, err := os.Stat(root); err != nil {
			return fmt.Errorf("www directory not found at %s: %w", root, err)
		}

		server := devserver.New(devserver.Options{
			Root:       root,
			Host:       options.Host,
			Port:       options.Port,
			LiveReload: options.LiveReload,
			Writer:     p.console.GetWriter(),
		})

		if err := server.Start(ctx); err != nil {
			return err
		}

		p.console.Message(ctx, fmt.Sprintf(
			"Dev server running at %s",
			output.WithHyperlink(fmt.Sprintf("http://%s", server.Addr()), "")))

		<-ctx.Done()

		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()

		return server.Stop(stopCtx)
	}), nil
}

func (p *ionic1Project) GenerateRunner(app *App) (GenerateRunner, error) {
	return GenerateRunnerFunc(func(ctx context.Context, schematic string, name string, args []string) error {
		scaffolds := filepath.Join(app.Dir, "scaffolds")

		source := filepath.Join(scaffolds, schematic)
		if _, err := os.Stat(source); err != nil {
			return fmt.Errorf("no scaffold named '%s' under %s: %w", schematic, scaffolds, err)
		}

		if name == "" {
			name = schematic
		}

		dest := filepath.Join(app.Dir, "www", "js", name)
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("destination %s already exists", dest)
		}

		if err := copy.Copy(source, dest); err != nil {
			return fmt.Errorf("copying scaffold '%s': %w", schematic, err)
		}

		p.console.Message(ctx, fmt.Sprintf("Created %s from the '%s' scaffold.", dest, schematic))

		return nil
	}), nil
}
