// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

type YamlFormatter struct {
}

func (f *YamlFormatter) Kind() Format {
	return YamlFormat
}

func (f *YamlFormatter) Format(obj interface{}, writer io.Writer, _ interface{}) error {
	b, err := yaml.Marshal(obj)
	if err != nil {
		return err
	}

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return nil
}

var _ Formatter = (*YamlFormatter)(nil)
