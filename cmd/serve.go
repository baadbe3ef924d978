// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/cli/browser"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-retry"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/gantryhq/gantry/cmd/actions"
	"github.com/gantryhq/gantry/internal"
	"github.com/gantryhq/gantry/pkg/exec"
	"github.com/gantryhq/gantry/pkg/input"
	"github.com/gantryhq/gantry/pkg/output/ux"
	"github.com/gantryhq/gantry/pkg/project"
)

const defaultServePort = 8100

type serveFlags struct {
	port     int
	host     string
	open     bool
	noReload bool
	global   *internal.GlobalCommandOptions
}

func newServeFlags(cmd *cobra.Command, global *internal.GlobalCommandOptions) *serveFlags {
	flags := &serveFlags{}
	flags.Bind(cmd.Flags(), global)

	return flags
}

func (f *serveFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	local.IntVar(&f.port, "port", defaultServePort, "Port the dev server listens on.")
	local.StringVar(&f.host, "host", "localhost", "Hostname or IP address the dev server binds to.")
	local.BoolVar(
		&f.open,
		"open",
		false,
		"Open the served URL in your default browser once the server responds.",
	)
	local.BoolVar(&f.noReload, "no-livereload", false, "Disable live-reload.")
	f.global = global
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start a local dev server for the project.",
		Long: heredoc.Doc(`
			Start a local dev server for the project.

			The server runs until interrupted. Variables from a .env file in the
			project directory are added to the toolchain environment. Arguments
			after -- are forwarded to the toolchain:

			  $ gantry serve -- --ssl
		`),
		Args: cobra.ArbitraryArgs,
	}
}

type serveAction struct {
	flags    *serveFlags
	args     []string
	resolver *appResolver
	console  input.Console
}

func newServeAction(
	flags *serveFlags,
	args []string,
	resolver *appResolver,
	console input.Console,
) actions.Action {
	return &serveAction{
		flags:    flags,
		args:     args,
		resolver: resolver,
		console:  console,
	}
}

func (sa *serveAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	app, err := sa.resolver.App(ctx)
	if err != nil {
		return nil, err
	}

	if err := ensureTools(ctx, sa.console, app); err != nil {
		return nil, err
	}

	runner, err := app.ServeRunner()
	if errors.Is(err, project.ErrRunnerNotFound) {
		sa.console.MessageUxItem(ctx, &ux.SkippedMessage{
			Message: fmt.Sprintf("%s projects do not define a dev server.", app.Type),
		})
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("selecting serve runner: %w", err)
	}

	env, err := dotenvEntries(app.Dir)
	if err != nil {
		return nil, err
	}

	options := project.ServeOptions{
		Port:       sa.flags.port,
		Host:       sa.flags.host,
		LiveReload: !sa.flags.noReload,
		Env:        env,
		Args:       sa.args,
	}

	sa.console.Message(ctx, fmt.Sprintf("Starting the dev server (%s)", app.Type))

	if sa.flags.open {
		url := fmt.Sprintf(
			"http://%s",
			net.JoinHostPort(browseHost(sa.flags.host), strconv.Itoa(sa.flags.port)),
		)
		go openWhenReady(ctx, url)
	}

	if err := runner.Serve(ctx, options); err != nil {
		return nil, fmt.Errorf("serving project: %w", err)
	}

	return &actions.ActionResult{
		Message: &actions.ResultMessage{
			Header: "The dev server has stopped.",
		},
	}, nil
}

// dotenvEntries reads KEY=VALUE pairs from the project's .env file, sorted by
// key. A missing file is not an error.
func dotenvEntries(dir string) ([]string, error) {
	file := filepath.Join(dir, ".env")

	values, err := godotenv.Read(file)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't read %s: %w", file, err)
	}

	keys := maps.Keys(values)
	slices.Sort(keys)

	entries := make([]string, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, fmt.Sprintf("%s=%s", key, values[key]))
	}

	return entries, nil
}

// browseHost maps wildcard bind addresses to a hostname a browser can reach.
func browseHost(host string) string {
	switch host {
	case "", "0.0.0.0", "::":
		return "localhost"
	default:
		return host
	}
}

// openWhenReady polls the dev server until it answers, then opens url in the
// user's browser. Runs alongside the server; failures only log a warning.
func openWhenReady(ctx context.Context, url string) {
	err := retry.Do(ctx, retry.WithMaxRetries(120, retry.NewConstant(500*time.Millisecond)), func(ctx context.Context) error {
		res, err := http.Get(url)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer res.Body.Close()

		return nil
	})
	if err != nil {
		log.Printf("warning: dev server at %s did not answer, not opening a browser: %s", url, err.Error())
		return
	}

	openWithDefaultBrowser(ctx, url)
}

func openWithDefaultBrowser(ctx context.Context, url string) {
	cmdRunner := exec.NewCommandRunner(nil)

	// In Codespaces and devcontainers a $BROWSER environment variable is
	// present whose value is an executable that launches the browser when
	// called with the form:
	// $BROWSER <url>
	const BrowserEnvVarName = "BROWSER"

	if envBrowser := os.Getenv(BrowserEnvVarName); len(envBrowser) > 0 {
		_, err := cmdRunner.Run(ctx, exec.RunArgs{
			Cmd:  envBrowser,
			Args: []string{url},
		})
		if err == nil {
			return
		}
		log.Printf(
			"warning: failed to open browser configured by $BROWSER: %s\nTrying with default browser.\n",
			err.Error(),
		)
	}

	if err := browser.OpenURL(url); err != nil {
		log.Printf("warning: failed to open default browser: %s\n", err.Error())
	}
}
