// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	outputFlagName               = "output"
	supportedFormatterAnnotation = "github.com/gantryhq/gantry/pkg/output/supportedOutputFormatters"
)

// AddOutputFlag adds the -o/--output flag to the given flag set, recording the
// supported formats as a flag annotation so they can be validated later.
func AddOutputFlag(f *pflag.FlagSet, outputFormat *string, supportedFormats []Format, defaultFormat Format) {
	formatNames := make([]string, len(supportedFormats))
	for i, format := range supportedFormats {
		formatNames[i] = string(format)
	}

	description := fmt.Sprintf("The output format (the supported formats are %s).", strings.Join(formatNames, ", "))
	f.StringVarP(outputFormat, outputFlagName, "o", string(defaultFormat), description)

	// Only error that can occur is "flag not found", which is not possible given we just added the flag on the
	// previous line
	_ = f.SetAnnotation(outputFlagName, supportedFormatterAnnotation, formatNames)
}

// GetCommandFormatter builds a formatter for the command, based on the value of
// its --output flag. Commands that never registered the flag get a nil
// formatter, which the console treats the same as plain text output.
func GetCommandFormatter(cmd *cobra.Command) (Formatter, error) {
	f := cmd.Flags().Lookup(outputFlagName)
	if f == nil {
		return nil, nil
	}

	desiredFormatter := strings.ToLower(strings.TrimSpace(f.Value.String()))
	supportedFormatters, hasFormatters := f.Annotations[supportedFormatterAnnotation]
	if !hasFormatters {
		return NewFormatter(desiredFormatter)
	}

	supported := false
	for _, formatter := range supportedFormatters {
		if formatter == desiredFormatter {
			supported = true
			break
		}
	}

	if !supported {
		return nil, fmt.Errorf("unsupported format '%s'", desiredFormatter)
	}

	return NewFormatter(desiredFormatter)
}
