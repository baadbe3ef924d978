// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gantryhq/gantry/cmd/actions"
	"github.com/gantryhq/gantry/internal"
	"github.com/gantryhq/gantry/pkg/config"
	"github.com/gantryhq/gantry/pkg/lazy"
	"github.com/gantryhq/gantry/pkg/output"
	"github.com/gantryhq/gantry/pkg/workspace"
)

// configScope loads and saves configuration for the two scopes a config
// command can address: the workspace's project file, or the user-wide config
// file when --global is passed.
type configScope struct {
	userConfig config.UserConfigManager
	files      config.FileConfigManager
	lazyRoot   *lazy.Lazy[*workspace.Root]
}

func newConfigScope(
	userConfig config.UserConfigManager,
	files config.FileConfigManager,
	lazyRoot *lazy.Lazy[*workspace.Root],
) *configScope {
	return &configScope{
		userConfig: userConfig,
		files:      files,
		lazyRoot:   lazyRoot,
	}
}

func (s *configScope) Load(useGlobal bool) (config.Config, error) {
	if useGlobal {
		return s.userConfig.Load()
	}

	root, err := s.lazyRoot.GetValue()
	if err != nil {
		return nil, err
	}

	return s.files.Load(workspace.ProjectPath(root))
}

func (s *configScope) Save(useGlobal bool, cfg config.Config) error {
	if useGlobal {
		return s.userConfig.Save(cfg)
	}

	root, err := s.lazyRoot.GetValue()
	if err != nil {
		return err
	}

	return s.files.Save(cfg, workspace.ProjectPath(root))
}

// configScopeFlags is embedded by every config subcommand's flags.
type configScopeFlags struct {
	useGlobal bool
}

func (f *configScopeFlags) Bind(local *pflag.FlagSet) {
	local.BoolVarP(
		&f.useGlobal,
		"global",
		"g",
		false,
		"Operate on the user-wide configuration instead of the project file.",
	)
}

// gantry config list

type configListFlags struct {
	configScopeFlags
	global *internal.GlobalCommandOptions
}

func newConfigListFlags(cmd *cobra.Command, global *internal.GlobalCommandOptions) *configListFlags {
	flags := &configListFlags{}
	flags.Bind(cmd.Flags(), global)

	return flags
}

func (f *configListFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	f.configScopeFlags.Bind(local)
	f.global = global
}

type configListAction struct {
	flags     *configListFlags
	scope     *configScope
	formatter output.Formatter
	writer    io.Writer
}

func newConfigListAction(
	flags *configListFlags,
	scope *configScope,
	formatter output.Formatter,
	writer io.Writer,
) actions.Action {
	return &configListAction{
		flags:     flags,
		scope:     scope,
		formatter: formatter,
		writer:    writer,
	}
}

// Run lists the raw document for the selected scope. Secret values stay as
// vault references; only an explicit get resolves them.
func (a *configListAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	cfg, err := a.scope.Load(a.flags.useGlobal)
	if err != nil {
		return nil, err
	}

	if a.formatter.Kind() == output.JsonFormat {
		if err := a.formatter.Format(cfg.Raw(), a.writer, nil); err != nil {
			return nil, fmt.Errorf("failing formatting config values: %w", err)
		}
	}

	return nil, nil
}

// gantry config get <path>

type configGetFlags struct {
	configScopeFlags
	global *internal.GlobalCommandOptions
}

func newConfigGetFlags(cmd *cobra.Command, global *internal.GlobalCommandOptions) *configGetFlags {
	flags := &configGetFlags{}
	flags.Bind(cmd.Flags(), global)

	return flags
}

func (f *configGetFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	f.configScopeFlags.Bind(local)
	f.global = global
}

type configGetAction struct {
	flags     *configGetFlags
	scope     *configScope
	formatter output.Formatter
	writer    io.Writer
	args      []string
}

func newConfigGetAction(
	flags *configGetFlags,
	scope *configScope,
	formatter output.Formatter,
	writer io.Writer,
	args []string,
) actions.Action {
	return &configGetAction{
		flags:     flags,
		scope:     scope,
		formatter: formatter,
		writer:    writer,
		args:      args,
	}
}

func (a *configGetAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	cfg, err := a.scope.Load(a.flags.useGlobal)
	if err != nil {
		return nil, err
	}

	key := a.args[0]
	value, ok := cfg.Get(key)
	if !ok {
		return nil, fmt.Errorf("no value stored at path '%s'", key)
	}

	if a.formatter.Kind() == output.JsonFormat {
		if err := a.formatter.Format(value, a.writer, nil); err != nil {
			return nil, fmt.Errorf("failing formatting config values: %w", err)
		}
	}

	return nil, nil
}

// gantry config set <path> <value>

type configSetFlags struct {
	configScopeFlags
	secret bool
	global *internal.GlobalCommandOptions
}

func newConfigSetFlags(cmd *cobra.Command, global *internal.GlobalCommandOptions) *configSetFlags {
	flags := &configSetFlags{}
	flags.Bind(cmd.Flags(), global)

	return flags
}

func (f *configSetFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	f.configScopeFlags.Bind(local)
	local.BoolVar(
		&f.secret,
		"secret",
		false,
		"Store the value in the scope's vault, leaving only a reference in the config file.",
	)
	f.global = global
}

type configSetAction struct {
	flags *configSetFlags
	scope *configScope
	args  []string
}

func newConfigSetAction(flags *configSetFlags, scope *configScope, args []string) actions.Action {
	return &configSetAction{
		flags: flags,
		scope: scope,
		args:  args,
	}
}

func (a *configSetAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	cfg, err := a.scope.Load(a.flags.useGlobal)
	if err != nil {
		return nil, err
	}

	path := a.args[0]
	value := a.args[1]

	if a.flags.secret {
		err = cfg.SetSecret(path, value)
	} else {
		err = cfg.Set(path, value)
	}
	if err != nil {
		return nil, fmt.Errorf("failed setting configuration value '%s' to '%s'. %w", path, value, err)
	}

	if err := a.scope.Save(a.flags.useGlobal, cfg); err != nil {
		return nil, fmt.Errorf("failed saving configuration. %w", err)
	}

	return nil, nil
}

// gantry config unset <path>

type configUnsetFlags struct {
	configScopeFlags
	global *internal.GlobalCommandOptions
}

func newConfigUnsetFlags(cmd *cobra.Command, global *internal.GlobalCommandOptions) *configUnsetFlags {
	flags := &configUnsetFlags{}
	flags.Bind(cmd.Flags(), global)

	return flags
}

func (f *configUnsetFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	f.configScopeFlags.Bind(local)
	f.global = global
}

type configUnsetAction struct {
	flags *configUnsetFlags
	scope *configScope
	args  []string
}

func newConfigUnsetAction(flags *configUnsetFlags, scope *configScope, args []string) actions.Action {
	return &configUnsetAction{
		flags: flags,
		scope: scope,
		args:  args,
	}
}

func (a *configUnsetAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	cfg, err := a.scope.Load(a.flags.useGlobal)
	if err != nil {
		return nil, err
	}

	path := a.args[0]

	if err := cfg.Unset(path); err != nil {
		return nil, fmt.Errorf("failed removing configuration with path '%s'. %w", path, err)
	}

	if err := a.scope.Save(a.flags.useGlobal, cfg); err != nil {
		return nil, fmt.Errorf("failed saving configuration. %w", err)
	}

	return nil, nil
}
