// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"context"
	"errors"
	"strconv"

	"github.com/gantryhq/gantry/pkg/tools"
)

// ErrRunnerNotFound is returned by runner lookups when the framework has no
// runner for the requested workflow. Callers degrade it into a
// feature-unavailable message; any other lookup error is fatal.
var ErrRunnerNotFound = errors.New("runner not found")

// ServeOptions carries the dev-server settings a serve runner honors.
type ServeOptions struct {
	Port       int
	Host       string
	LiveReload bool
	// Env entries are added to the toolchain process environment.
	Env []string
	// Args are forwarded verbatim to the underlying toolchain.
	Args []string
}

// serveScriptArgs translates serve options into the flags the npm dev-server
// scripts understand.
func serveScriptArgs(options ServeOptions) []string {
	args := []string{}
	if options.Port > 0 {
		args = append(args, "--port", strconv.Itoa(options.Port))
	}
	if options.Host != "" {
		args = append(args, "--host", options.Host)
	}

	return append(args, options.Args...)
}

// BuildRunner produces the project's build artifacts.
type BuildRunner interface {
	Build(ctx context.Context, args []string) error
}

// ServeRunner runs the project's dev server until the context is canceled.
type ServeRunner interface {
	Serve(ctx context.Context, options ServeOptions) error
}

// GenerateRunner scaffolds a new feature into the project.
type GenerateRunner interface {
	Generate(ctx context.Context, schematic string, name string, args []string) error
}

// BuildRunnerFunc adapts a function to the BuildRunner interface.
type BuildRunnerFunc func(ctx context.Context, args []string) error

func (f BuildRunnerFunc) Build(ctx context.Context, args []string) error {
	return f(ctx, args)
}

// ServeRunnerFunc adapts a function to the ServeRunner interface.
type ServeRunnerFunc func(ctx context.Context, options ServeOptions) error

func (f ServeRunnerFunc) Serve(ctx context.Context, options ServeOptions) error {
	return f(ctx, options)
}

// GenerateRunnerFunc adapts a function to the GenerateRunner interface.
type GenerateRunnerFunc func(ctx context.Context, schematic string, name string, args []string) error

func (f GenerateRunnerFunc) Generate(ctx context.Context, schematic string, name string, args []string) error {
	return f(ctx, schematic, name, args)
}

// FrameworkService adapts one project type's toolchain. Implementations are
// stateless and registered in the container under their type tag; the app
// being operated on is passed into every call.
//
// Runner lookups return ErrRunnerNotFound when the framework has no such
// workflow.
type FrameworkService interface {
	// RequiredExternalTools returns the CLI tools the framework's runners
	// shell out to.
	RequiredExternalTools(ctx context.Context, app *App) []tools.ExternalTool

	BuildRunner(app *App) (BuildRunner, error)
	ServeRunner(app *App) (ServeRunner, error)
	GenerateRunner(app *App) (GenerateRunner, error)
}
