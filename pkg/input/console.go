// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package input

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gantryhq/gantry/pkg/output"
	"github.com/gantryhq/gantry/pkg/output/ux"
	"github.com/theckman/yacspin"
)

// ConsoleHandles are the process streams the console reads from and writes
// to. Tests swap them for buffers.
type ConsoleHandles struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type Console interface {
	// Message prints a line to the console's writer.
	Message(ctx context.Context, message string)
	// MessageUxItem prints a structured item, rendered as text or as a JSON
	// event envelope depending on the active formatter.
	MessageUxItem(ctx context.Context, item ux.UxItem)
	ShowSpinner(ctx context.Context, title string)
	StopSpinner(ctx context.Context, lastMessage string)
	Prompt(ctx context.Context, options ConsoleOptions) (string, error)
	Select(ctx context.Context, options ConsoleOptions) (int, error)
	Confirm(ctx context.Context, options ConsoleOptions) (bool, error)
	// GetWriter returns the writer messages print to.
	GetWriter() io.Writer
	Handles() ConsoleHandles
}

type ConsoleOptions struct {
	Message      string
	Options      []string
	DefaultValue any
}

type AskerConsole struct {
	asker   Asker
	handles ConsoleHandles
	// formatter is nil for unformatted output.
	formatter  output.Formatter
	writer     io.Writer
	isTerminal bool
	spinner    *yacspin.Spinner
}

func (c *AskerConsole) Message(ctx context.Context, message string) {
	if c.formatter != nil && c.formatter.Kind() == output.JsonFormat {
		// Marshal directly instead of going through the formatter: the
		// formatter indents, and these events should stay one line each.
		contents, err := json.Marshal(output.EventForMessage(message))
		if err != nil {
			panic(fmt.Sprintf("Message: marshaling console message: %v", err))
		}

		fmt.Fprintln(c.writer, string(contents))
	} else if c.formatter == nil || c.formatter.Kind() == output.NoneFormat {
		fmt.Fprintln(c.writer, message)
	} else {
		log.Println(message)
	}
}

func (c *AskerConsole) MessageUxItem(ctx context.Context, item ux.UxItem) {
	if c.formatter != nil && c.formatter.Kind() == output.JsonFormat {
		contents, err := json.Marshal(item)
		if err != nil {
			panic(fmt.Sprintf("MessageUxItem: marshaling ux item: %v", err))
		}

		fmt.Fprintln(c.writer, string(contents))
		return
	}

	c.Message(ctx, item.ToString(""))
}

// ShowSpinner starts a spinner with the given title, replacing any spinner
// already running. Outside a terminal the title prints once instead.
func (c *AskerConsole) ShowSpinner(ctx context.Context, title string) {
	if c.formatter != nil && c.formatter.Kind() == output.JsonFormat {
		log.Println(title)
		return
	}

	if !c.isTerminal {
		fmt.Fprintln(c.writer, title)
		return
	}

	if c.spinner != nil {
		_ = c.spinner.Stop()
	}

	spinner, err := yacspin.New(yacspin.Config{
		Frequency:       200 * time.Millisecond,
		Writer:          c.writer,
		Suffix:          " ",
		SuffixAutoColon: true,
		Message:         title,
		CharSet:         yacspin.CharSets[33],
	})
	if err != nil {
		fmt.Fprintln(c.writer, title)
		return
	}

	c.spinner = spinner
	_ = c.spinner.Start()
}

// StopSpinner stops the running spinner, printing lastMessage in its place
// when one is given.
func (c *AskerConsole) StopSpinner(ctx context.Context, lastMessage string) {
	if c.spinner != nil {
		_ = c.spinner.Stop()
		c.spinner = nil
	}

	if lastMessage != "" {
		c.Message(ctx, lastMessage)
	}
}

func (c *AskerConsole) Prompt(ctx context.Context, options ConsoleOptions) (string, error) {
	var defaultValue string
	if value, ok := options.DefaultValue.(string); ok {
		defaultValue = value
	}

	prompt := &survey.Input{
		Message: options.Message,
		Default: defaultValue,
	}

	var response string

	if err := c.asker(prompt, &response); err != nil {
		return "", err
	}

	return response, nil
}

func (c *AskerConsole) Select(ctx context.Context, options ConsoleOptions) (int, error) {
	prompt := &survey.Select{
		Message: options.Message,
		Options: options.Options,
		Default: options.DefaultValue,
	}

	var response int

	if err := c.asker(prompt, &response); err != nil {
		return -1, err
	}

	return response, nil
}

func (c *AskerConsole) Confirm(ctx context.Context, options ConsoleOptions) (bool, error) {
	var defaultValue bool
	if value, ok := options.DefaultValue.(bool); ok {
		defaultValue = value
	}

	prompt := &survey.Confirm{
		Message: options.Message,
		Default: defaultValue,
	}

	var response bool

	if err := c.asker(prompt, &response); err != nil {
		return false, err
	}

	return response, nil
}

func (c *AskerConsole) GetWriter() io.Writer {
	return c.writer
}

func (c *AskerConsole) Handles() ConsoleHandles {
	return c.handles
}

// NewConsole creates a console backed by the given handles. With noPrompt
// every prompt resolves to its default value or fails.
func NewConsole(
	noPrompt bool,
	isTerminal bool,
	w io.Writer,
	handles ConsoleHandles,
	formatter output.Formatter,
) Console {
	return &AskerConsole{
		asker:      NewAsker(noPrompt, isTerminal, handles.Stdout, handles.Stdin),
		handles:    handles,
		formatter:  formatter,
		writer:     w,
		isTerminal: isTerminal,
	}
}
