// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package ux

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gantryhq/gantry/pkg/output"
)

// ErrorWithSuggestion renders an error with an optional user friendly message,
// a follow up suggestion and a documentation link. The raw error stays visible
// at the end of the block so nothing is hidden from the user.
type ErrorWithSuggestion struct {
	Err        error
	Message    string
	Suggestion string
	DocUrl     string
}

func (e *ErrorWithSuggestion) ToString(currentIndentation string) string {
	var sb strings.Builder

	message := e.Message
	if message == "" && e.Err != nil {
		message = e.Err.Error()
	}

	sb.WriteString(fmt.Sprintf("%s%s %s", currentIndentation, errorPrefix, message))

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\n%s%s %s", currentIndentation, output.WithBold("Suggestion:"), e.Suggestion))
	}

	if e.DocUrl != "" {
		sb.WriteString(
			fmt.Sprintf("\n%s%s %s", currentIndentation, output.WithBold("Learn more:"), output.WithLinkFormat(e.DocUrl)))
	}

	// Show the raw error in gray when the ERROR line was a friendlier rewording of it.
	if e.Message != "" && e.Err != nil {
		sb.WriteString(fmt.Sprintf("\n%s%s", currentIndentation, output.WithGrayFormat(e.Err.Error())))
	}

	return sb.String()
}

func (e *ErrorWithSuggestion) MarshalJSON() ([]byte, error) {
	wire := struct {
		Error      string `json:"error"`
		Message    string `json:"message,omitempty"`
		Suggestion string `json:"suggestion,omitempty"`
		DocUrl     string `json:"docUrl,omitempty"`
	}{
		Message:    e.Message,
		Suggestion: e.Suggestion,
		DocUrl:     e.DocUrl,
	}

	if e.Err != nil {
		wire.Error = e.Err.Error()
	}

	return json.Marshal(wire)
}
