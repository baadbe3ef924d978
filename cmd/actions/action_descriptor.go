package actions

import (
	"github.com/gantryhq/gantry/pkg/output"
	"github.com/spf13/cobra"
)

// Action descriptors consolidate the registration for a cobra command and
// its related flags, action and completions.
type ActionDescriptor struct {
	// Name of the descriptor (also used for command name if not specified in options)
	Name string
	// Descriptor options
	Options         *ActionDescriptorOptions
	parent          *ActionDescriptor
	children        []*ActionDescriptor
	flagCompletions map[string]FlagCompletionFunc
}

// Creates a new action descriptor
func NewActionDescriptor(name string, options *ActionDescriptorOptions) *ActionDescriptor {
	if options == nil {
		options = &ActionDescriptorOptions{}
	}

	if options.Command == nil {
		options.Command = &cobra.Command{
			Use: name,
		}
	}

	return &ActionDescriptor{
		Name:            name,
		Options:         options,
		children:        []*ActionDescriptor{},
		flagCompletions: map[string]FlagCompletionFunc{},
	}
}

// Gets the child descriptors of the current instance
func (ad *ActionDescriptor) Children() []*ActionDescriptor {
	return ad.children
}

// Gets the parent descriptor of the current instance
func (ad *ActionDescriptor) Parent() *ActionDescriptor {
	return ad.parent
}

// Gets the cobra command flag completion registrations for the current instance
func (ad *ActionDescriptor) FlagCompletions() map[string]FlagCompletionFunc {
	return ad.flagCompletions
}

// Adds a child action descriptor with the specified name and options
func (ad *ActionDescriptor) Add(name string, options *ActionDescriptorOptions) *ActionDescriptor {
	descriptor := NewActionDescriptor(name, options)
	descriptor.parent = ad
	ad.children = append(ad.children, descriptor)

	return descriptor
}

// Registers a cobra flag completion for the specified flag
// Flags are lazily evaluated and cannot be registered inline within the options
func (ad *ActionDescriptor) AddFlagCompletion(flagName string, flagCompletionFn FlagCompletionFunc) *ActionDescriptor {
	ad.flagCompletions[flagName] = flagCompletionFn
	return ad
}

// ActionDescriptorOptions specifies all options for a given gantry command and action
type ActionDescriptorOptions struct {
	// Cobra command configuration
	*cobra.Command
	// Function to resolve / create the flags instance required for the action
	FlagsResolver any
	// Function to resolve / create the action instance
	ActionResolver any
	// Array of supported output formats
	OutputFormats []output.Format
	// The default output format if omitted in the command flags
	DefaultFormat output.Format
}

// Completion function used for cobra command flag completion
type FlagCompletionFunc func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)
