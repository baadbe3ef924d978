// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package ux

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gantryhq/gantry/pkg/output"
)

type WarningMessage struct {
	Description string
	HidePrefix  bool
	// Optional follow up hints rendered as a bulleted list below the warning.
	Hints []string
}

func (w *WarningMessage) ToString(currentIndentation string) string {
	var sb strings.Builder

	if w.HidePrefix {
		sb.WriteString(fmt.Sprintf("%s%s", currentIndentation, w.Description))
	} else {
		sb.WriteString(fmt.Sprintf("%s%s %s", currentIndentation, warningPrefix, w.Description))
	}

	for _, hint := range w.Hints {
		sb.WriteString(fmt.Sprintf("\n%s  • %s", currentIndentation, hint))
	}

	return sb.String()
}

func (w *WarningMessage) MarshalJSON() ([]byte, error) {
	// reusing the same envelope from console messages
	return json.Marshal(output.EventForMessage(w.ToString("")))
}
