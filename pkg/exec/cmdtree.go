// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package exec

import (
	"os/exec"
)

// CmdTree represents an `exec.Cmd` run inside a process group. When
// Kill is called, the entire process group is killed, which takes down any
// lingering child processes launched by the root process.
type CmdTree struct {
	CmdTreeOptions
	*exec.Cmd
}
