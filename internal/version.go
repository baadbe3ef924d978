// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"strings"

	"github.com/blang/semver/v4"
)

// Version is the version string printed out by the `version` command.
// It is overridden at build time through ldflags. The default value carries
// a zeroed commit so local builds remain distinguishable from releases.
var Version = "0.0.0-dev.0 (commit 0000000000000000000000000000000000000000)"

// VersionSpec is the contract for the output of `gantry version -o json`.
type VersionSpec struct {
	Gantry struct {
		Version string `json:"version"`
		Commit  string `json:"commit"`
	} `json:"gantry"`
}

// GetVersionNumber returns the semantic version portion of Version,
// or "unknown" when Version does not start with a valid semver.
func GetVersionNumber() string {
	number, _, _ := strings.Cut(Version, " ")
	if _, err := semver.Parse(number); err != nil {
		return "unknown"
	}

	return number
}

// GetVersionSpec splits Version into its version number and commit hash.
func GetVersionSpec() VersionSpec {
	var spec VersionSpec
	spec.Gantry.Version = GetVersionNumber()
	spec.Gantry.Commit = "unknown"

	if _, after, found := strings.Cut(Version, "(commit "); found {
		spec.Gantry.Commit = strings.TrimSuffix(strings.TrimSpace(after), ")")
	}

	return spec
}
