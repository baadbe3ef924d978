package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/gantryhq/gantry/internal"
	"github.com/gantryhq/gantry/pkg/config"
	"github.com/gantryhq/gantry/pkg/exec"
	"github.com/gantryhq/gantry/pkg/input"
	"github.com/gantryhq/gantry/pkg/ioc"
	"github.com/gantryhq/gantry/pkg/lazy"
	"github.com/gantryhq/gantry/pkg/output"
	"github.com/gantryhq/gantry/pkg/project"
	"github.com/gantryhq/gantry/pkg/tools"
	"github.com/gantryhq/gantry/pkg/workspace"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Registers common gantry dependencies
func registerCommonDependencies(container *ioc.NestedContainer) {
	container.RegisterSingleton(output.GetCommandFormatter)

	container.RegisterSingleton(func(
		rootOptions *internal.GlobalCommandOptions,
		formatter output.Formatter,
		cmd *cobra.Command) input.Console {
		writer := cmd.OutOrStdout()
		// When using JSON formatting, we want to ensure we always write messages from the console to stderr.
		if formatter != nil && formatter.Kind() == output.JsonFormat {
			writer = cmd.ErrOrStderr()
		}

		if os.Getenv("NO_COLOR") != "" {
			writer = colorable.NewNonColorable(writer)
		}

		isTerminal := cmd.OutOrStdout() == os.Stdout &&
			cmd.InOrStdin() == os.Stdin && isatty.IsTerminal(os.Stdin.Fd()) &&
			isatty.IsTerminal(os.Stdout.Fd())

		return input.NewConsole(rootOptions.NoPrompt, isTerminal, writer, input.ConsoleHandles{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		}, formatter)
	})

	container.RegisterSingleton(func(
		rootOptions *internal.GlobalCommandOptions,
		console input.Console) exec.CommandRunner {
		return exec.NewCommandRunner(&exec.RunnerOptions{
			Stdin:        console.Handles().Stdin,
			Stdout:       console.Handles().Stdout,
			Stderr:       console.Handles().Stderr,
			DebugLogging: rootOptions.EnableDebugLogging,
		})
	})

	// Formatted output goes to stdout even when console messages move to
	// stderr; this writer is what formatters print to.
	container.RegisterSingleton(func(console input.Console) io.Writer {
		writer := console.Handles().Stdout

		if os.Getenv("NO_COLOR") != "" {
			writer = colorable.NewNonColorable(writer)
		}

		return writer
	})

	// Config
	container.RegisterSingleton(config.NewManager)
	container.RegisterSingleton(config.NewFileConfigManager)
	container.RegisterSingleton(config.NewUserConfigManager)
	container.RegisterSingleton(newConfigScope)

	// Lazy loads the workspace root; commands that never touch a project can
	// run outside one.
	container.RegisterSingleton(func() *lazy.Lazy[*workspace.Root] {
		return lazy.NewLazy(workspace.NewRoot)
	})

	// Project
	ioc.RegisterInstance[ioc.ServiceLocator](container, container)
	container.RegisterSingleton(project.NewFactory)
	container.RegisterSingleton(newAppResolver)

	// Tools
	container.RegisterSingleton(tools.NewNpmCli)
	container.RegisterSingleton(tools.NewNgCli)

	// Framework services, registered under their type tag. The project
	// factory resolves these by name from the resolved project type.
	frameworkServices := map[project.Type]any{
		project.IonicAngular: project.NewIonicAngularProject,
		project.Ionic1:       project.NewIonic1Project,
		project.Angular:      project.NewAngularProject,
		project.React:        project.NewReactProject,
		project.Custom:       project.NewCustomProject,
	}

	for serviceType, constructor := range frameworkServices {
		if err := container.RegisterNamedSingleton(string(serviceType), constructor); err != nil {
			panic(fmt.Errorf("registering framework service '%s': %w", serviceType, err))
		}
	}
}
