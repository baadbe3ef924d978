// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package fingerprint infers a workspace's framework from directory contents.
//
// Frameworks are detected based on criteria such as:
// 1. Presence of marker files or directories.
// 2. Dependency entries in package manifests.
//
// - `Detectors()` returns the probes in precedence order.
// - `Match()` runs the probes against a directory and reports the first hit.
package fingerprint
