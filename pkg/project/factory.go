package project

import (
	"context"
	"fmt"

	"github.com/gantryhq/gantry/pkg/ioc"
	"github.com/gantryhq/gantry/pkg/tools"
	"github.com/gantryhq/gantry/pkg/workspace"
)

// App is a live, resolved project: identity plus the framework adapter that
// runs workflows against it.
type App struct {
	// Name is the sub-project name; empty in single-app workspaces.
	Name string
	// Type is the project's resolved framework type.
	Type Type
	// Dir is the absolute directory workflows run in.
	Dir string
	// ConfigPath is the project file the app was resolved from.
	ConfigPath string
	// Config is the project's single-app config view.
	Config *ProjectConfig

	framework FrameworkService
}

// RequiredExternalTools returns the CLI tools the app's workflows shell out to.
func (a *App) RequiredExternalTools(ctx context.Context) []tools.ExternalTool {
	return a.framework.RequiredExternalTools(ctx, a)
}

func (a *App) BuildRunner() (BuildRunner, error) {
	return a.framework.BuildRunner(a)
}

func (a *App) ServeRunner() (ServeRunner, error) {
	return a.framework.ServeRunner(a)
}

func (a *App) GenerateRunner() (GenerateRunner, error) {
	return a.framework.GenerateRunner(a)
}

// Factory instantiates the framework adapter matching a resolved type.
type Factory struct {
	serviceLocator ioc.ServiceLocator
}

func NewFactory(serviceLocator ioc.ServiceLocator) *Factory {
	return &Factory{
		serviceLocator: serviceLocator,
	}
}

// CreateFromDetails builds the live App for a resolution result. Resolution
// guarantees only supported types reach this point, so an unsupported type,
// like a type with no registered framework service, is a programming error
// and panics.
func (f *Factory) CreateFromDetails(root *workspace.Root, details *DetailsResult) *App {
	if !details.Type.IsValid() {
		panic(fmt.Sprintf("project: no such project type: %q", details.Type))
	}

	var framework FrameworkService
	if err := f.serviceLocator.ResolveNamed(string(details.Type), &framework); err != nil {
		panic(fmt.Sprintf("project: framework service for type %q is not registered: %v", details.Type, err))
	}

	app := &App{
		Name:       details.Name,
		Type:       details.Type,
		Dir:        root.Directory(),
		ConfigPath: details.ConfigPath,
		Config:     details.Config,
		framework:  framework,
	}

	if details.Config != nil {
		app.Dir = details.Config.Dir(root.Directory())
	}

	return app
}
