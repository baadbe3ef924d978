// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

// Type identifies the framework a project is built with.
type Type string

// Supported project types, in fingerprint detection priority order.
const (
	IonicAngular Type = "ionic-angular"
	Ionic1       Type = "ionic1"
	Angular      Type = "angular"
	React        Type = "react"
	// Custom projects define their own target commands and are never
	// inferred by detection.
	Custom Type = "custom"
)

// AllTypes lists every supported project type, detection priority first.
func AllTypes() []Type {
	return []Type{IonicAngular, Ionic1, Angular, React, Custom}
}

// IsValid reports whether t is a member of the supported type set.
func (t Type) IsValid() bool {
	switch t {
	case IonicAngular, Ionic1, Angular, React, Custom:
		return true
	}

	return false
}
