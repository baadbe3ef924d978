package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/gantryhq/gantry/cmd/actions"
	"github.com/gantryhq/gantry/pkg/input"
	"github.com/gantryhq/gantry/pkg/ioc"
	"github.com/gantryhq/gantry/pkg/output"
	"github.com/gantryhq/gantry/pkg/output/ux"
	"github.com/spf13/cobra"
)

// CobraBuilder manages the construction of the cobra command tree from nested ActionDescriptors
type CobraBuilder struct {
	container *ioc.NestedContainer
}

// Creates a new instance of the Cobra builder
func NewCobraBuilder(container *ioc.NestedContainer) *CobraBuilder {
	return &CobraBuilder{
		container: container,
	}
}

// Builds a cobra Command for the specified action descriptor
func (cb *CobraBuilder) BuildCommand(descriptor *actions.ActionDescriptor) (*cobra.Command, error) {
	cmd := descriptor.Options.Command
	if cmd.Use == "" {
		cmd.Use = descriptor.Name
	}

	// Build the full command tree
	for _, childDescriptor := range descriptor.Children() {
		childCmd, err := cb.BuildCommand(childDescriptor)
		if err != nil {
			return nil, err
		}

		cmd.AddCommand(childCmd)
	}

	// Bind root command after command tree has been established
	// This ensures the command path is ready and consistent across all nested commands
	if descriptor.Parent() == nil {
		err := cb.bindCommand(cmd, descriptor)
		if err != nil {
			return nil, err
		}
	}

	cb.configureActionResolver(cmd, descriptor)

	return cmd, nil
}

// Configures the cobra command 'RunE' function to run the action for the
// current action descriptor
func (cb *CobraBuilder) configureActionResolver(cmd *cobra.Command, descriptor *actions.ActionDescriptor) {
	// Only bind command to action if an action resolver had been defined
	// and when a RunE hasn't already been set
	if descriptor.Options.ActionResolver == nil || cmd.RunE != nil {
		return
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Registers the following to enable injection into actions that require them
		ioc.RegisterInstance(cb.container, ctx)
		ioc.RegisterInstance(cb.container, cmd)
		ioc.RegisterInstance(cb.container, args)

		actionName := createActionName(cmd)
		var action actions.Action
		if err := cb.container.ResolveNamed(actionName, &action); err != nil {
			return fmt.Errorf(
				//nolint:lll
				"failed resolving action '%s'. Ensure the ActionResolver is a valid go function that returns an `actions.Action` interface, %w",
				actionName,
				err,
			)
		}

		result, err := action.Run(ctx)
		if err != nil {
			return err
		}

		if result != nil && result.Message != nil {
			var console input.Console
			if err := cb.container.Resolve(&console); err != nil {
				return err
			}

			console.MessageUxItem(ctx, &ux.DoneMessage{Message: result.Message.Header})
			if result.Message.FollowUp != "" {
				// Follow up text can span lines; render it as one block so every
				// line stays aligned.
				console.MessageUxItem(ctx, &ux.MultilineMessage{
					Lines: strings.Split(result.Message.FollowUp, "\n"),
				})
			}
		}

		return nil
	}
}

// Binds the intersection of cobra command options and action descriptor options
func (cb *CobraBuilder) bindCommand(cmd *cobra.Command, descriptor *actions.ActionDescriptor) error {
	actionName := createActionName(cmd)

	// Automatically adds a consistent help flag
	cmd.Flags().BoolP("help", "h", false, fmt.Sprintf("Gets help for %s.", descriptor.Name))

	// Consistently registers output formats for the descriptor
	if len(descriptor.Options.OutputFormats) > 0 {
		var formatValue string
		output.AddOutputFlag(cmd.Flags(), &formatValue, descriptor.Options.OutputFormats, descriptor.Options.DefaultFormat)
	}

	// Create, register and bind flags when required
	if descriptor.Options.FlagsResolver != nil {
		log.Printf("registering flags for action '%s'\n", actionName)
		ioc.RegisterInstance(cb.container, cmd)

		// The flags resolver is constructed and bound to the cobra command via dependency injection
		// This allows flags to be options and support any set of required dependencies
		err := cb.container.RegisterSingletonAndInvoke(descriptor.Options.FlagsResolver)
		if err != nil {
			return fmt.Errorf(
				"failed registering FlagsResolver for action '%s'. Ensure the resolver is a valid go function. %w",
				actionName,
				err,
			)
		}
	}

	// Registers and binds action resolvers when required
	// Action resolvers are essentially go functions that create the instance of the required actions.Action
	// These functions are typically the constructor function for the action. ex) newBuildAction(...)
	// Action resolvers can take any number of dependencies and are instantiated via the IoC container
	if descriptor.Options.ActionResolver != nil {
		log.Printf("registering resolver for action '%s'\n", actionName)
		if err := cb.container.RegisterNamedSingleton(actionName, descriptor.Options.ActionResolver); err != nil {
			return fmt.Errorf(
				"failed registering ActionResolver for action '%s'. Ensure the resolver is a valid go function. %w",
				actionName,
				err,
			)
		}
	}

	// Bind flag completions
	// Since flags are lazily loaded we need to wait until after command flags are wired up before
	// any flag completion functions are registered
	for flag, completionFn := range descriptor.FlagCompletions() {
		if err := cmd.RegisterFlagCompletionFunc(flag, completionFn); err != nil {
			panic(err)
		}
	}

	// Bind the child commands for the current descriptor
	for _, childDescriptor := range descriptor.Children() {
		childCmd := childDescriptor.Options.Command
		err := cb.bindCommand(childCmd, childDescriptor)
		if err != nil {
			return err
		}
	}

	return nil
}

// Composes a consistent action name for the specified cobra command
// ex) gantry config list becomes 'gantry-config-list-action'
func createActionName(cmd *cobra.Command) string {
	actionName := cmd.CommandPath()
	actionName = strings.TrimSpace(actionName)
	actionName = strings.ReplaceAll(actionName, " ", "-")
	actionName = fmt.Sprintf("%s-action", actionName)

	return strings.ToLower(actionName)
}
