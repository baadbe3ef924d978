// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cmd implements the gantry CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/gantryhq/gantry/cmd/actions"
	"github.com/gantryhq/gantry/internal"
	"github.com/gantryhq/gantry/pkg/config"
	"github.com/gantryhq/gantry/pkg/ioc"
	"github.com/gantryhq/gantry/pkg/output"
	"github.com/gantryhq/gantry/pkg/project"
	"github.com/gantryhq/gantry/pkg/workspace"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command for gantry, wiring the full
// command tree and its dependency registrations. Passing nil creates a fresh
// container; tests pass their own to override registrations.
func NewRootCmd(container *ioc.NestedContainer) *cobra.Command {
	if container == nil {
		container = ioc.NewNestedContainer(nil)
	}

	prevDir := ""
	opts := &internal.GlobalCommandOptions{}

	rootCmd := &cobra.Command{
		Use:   "gantry",
		Short: "Gantry - Orchestrate your app's framework toolchains",
		Long: heredoc.Doc(`
			Gantry orchestrates build, serve and generate workflows for web and hybrid app workspaces.

			Run gantry from a directory holding a gantry.config.json file. The most common commands are:

			  $ gantry build
			  $ gantry serve --open
			  $ gantry generate page settings

			In a workspace that declares multiple projects, pass --project <name> to pick the one to
			target, or set "defaultProject" in the project file.`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Cwd != "" {
				current, err := os.Getwd()
				if err != nil {
					return err
				}

				prevDir = current

				if err := os.Chdir(opts.Cwd); err != nil {
					return fmt.Errorf("failed to change directory to %s: %w", opts.Cwd, err)
				}
			}

			log.SetFlags(log.LstdFlags | log.Lshortfile)

			if !opts.EnableDebugLogging {
				log.SetOutput(io.Discard)
			}

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			// This is just for cleanliness and making writing tests simpler since
			// we can just remove the entire project folder afterwards.
			// In practical execution, this wouldn't affect much, since the CLI is exiting.
			if prevDir != "" {
				return os.Chdir(prevDir)
			}

			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.PersistentFlags().StringVarP(&opts.Cwd, "cwd", "C", "", "Sets the current working directory.")
	rootCmd.PersistentFlags().BoolVar(&opts.EnableDebugLogging, "debug", false, "Enables debugging and diagnostics logging.")
	rootCmd.PersistentFlags().
		BoolVar(&opts.NoPrompt, "no-prompt", false, "Accepts the default value instead of prompting, or it fails if there is no default.")
	rootCmd.PersistentFlags().
		StringVar(&opts.Project, "project", "", "Names the project to target in a multi-app workspace.")

	root := actions.NewActionDescriptor("gantry", &actions.ActionDescriptorOptions{
		Command: rootCmd,
	})

	root.Add("build", &actions.ActionDescriptorOptions{
		Command:        newBuildCmd(),
		FlagsResolver:  newBuildFlags,
		ActionResolver: newBuildAction,
	})

	root.Add("serve", &actions.ActionDescriptorOptions{
		Command:        newServeCmd(),
		FlagsResolver:  newServeFlags,
		ActionResolver: newServeAction,
	})

	root.Add("generate", &actions.ActionDescriptorOptions{
		Command:        newGenerateCmd(),
		ActionResolver: newGenerateAction,
	})

	configCmd := root.Add("config", &actions.ActionDescriptorOptions{
		Command: &cobra.Command{
			Use:   "config",
			Short: "Manage gantry configuration values.",
			Long: heredoc.Doc(`
				Manage gantry configuration values.

				Values are read from and written to the workspace's project file by default.
				Pass --global to operate on the user-wide configuration instead, stored in
				~/.gantry/config.json (override the directory with GANTRY_CONFIG_DIR).`),
		},
	})

	configCmd.Add("list", &actions.ActionDescriptorOptions{
		Command: &cobra.Command{
			Use:   "list",
			Short: "Lists all configuration values.",
		},
		FlagsResolver:  newConfigListFlags,
		ActionResolver: newConfigListAction,
		OutputFormats:  []output.Format{output.JsonFormat},
		DefaultFormat:  output.JsonFormat,
	})

	configCmd.Add("get", &actions.ActionDescriptorOptions{
		Command: &cobra.Command{
			Use:   "get <path>",
			Short: "Gets a configuration value.",
			Args:  cobra.ExactArgs(1),
		},
		FlagsResolver:  newConfigGetFlags,
		ActionResolver: newConfigGetAction,
		OutputFormats:  []output.Format{output.JsonFormat},
		DefaultFormat:  output.JsonFormat,
	})

	configCmd.Add("set", &actions.ActionDescriptorOptions{
		Command: &cobra.Command{
			Use:   "set <path> <value>",
			Short: "Sets a configuration value.",
			Args:  cobra.ExactArgs(2),
		},
		FlagsResolver:  newConfigSetFlags,
		ActionResolver: newConfigSetAction,
	})

	configCmd.Add("unset", &actions.ActionDescriptorOptions{
		Command: &cobra.Command{
			Use:   "unset <path>",
			Short: "Unsets a configuration value.",
			Args:  cobra.ExactArgs(1),
		},
		FlagsResolver:  newConfigUnsetFlags,
		ActionResolver: newConfigUnsetAction,
	})

	root.Add("info", &actions.ActionDescriptorOptions{
		Command:        newInfoCmd(),
		ActionResolver: newInfoAction,
		OutputFormats:  []output.Format{output.JsonFormat, output.YamlFormat, output.NoneFormat},
		DefaultFormat:  output.NoneFormat,
	})

	root.Add("version", &actions.ActionDescriptorOptions{
		Command: &cobra.Command{
			Use:   "version",
			Short: "Print the version number of gantry.",
		},
		ActionResolver: newVersionAction,
		OutputFormats:  []output.Format{output.JsonFormat, output.NoneFormat},
		DefaultFormat:  output.NoneFormat,
	})

	root.AddFlagCompletion("project", projectNameCompletion)

	ioc.RegisterInstance(container, opts)
	registerCommonDependencies(container)

	cobraBuilder := NewCobraBuilder(container)
	cmd, err := cobraBuilder.BuildCommand(root)
	if err != nil {
		// If there is a container registration issue or similar we want to fail fast
		// This is only encountered during development and must be addressed prior to any code check in
		panic(err)
	}

	return cmd
}

// projectNameCompletion completes --project with the names declared in the
// workspace's project file.
func projectNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	root, err := workspace.NewRoot()
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}

	files := config.NewFileConfigManager(config.NewManager())
	store, err := config.LoadStore(workspace.ProjectPath(root), files, config.StoreOptions{})
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}

	return project.ProjectNamesInOrder(store.Contents()), cobra.ShellCompDirectiveNoFileComp
}
