// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import "time"

// EventDataType is the type discriminator carried by every event envelope.
type EventDataType string

const ConsoleMessageEventDataType EventDataType = "consoleMessage"

// EventEnvelope is the structured wrapper written to stdout for each console
// message when JSON output is requested. Tooling that drives the CLI reads a
// stream of these envelopes instead of free-form text.
type EventEnvelope struct {
	Type      EventDataType `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
	Data      any           `json:"data"`
}

type ConsoleMessage struct {
	Message string `json:"message"`
}

// EventForMessage wraps a plain console message in an event envelope.
func EventForMessage(message string) EventEnvelope {
	return EventEnvelope{
		Type:      ConsoleMessageEventDataType,
		Timestamp: time.Now(),
		Data: ConsoleMessage{
			Message: message,
		},
	}
}
