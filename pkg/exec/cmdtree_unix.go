// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package exec

import (
	"syscall"
)

func (o *CmdTree) Start() error {
	// Interactive commands stay in the terminal's foreground process group so
	// they keep receiving user signals like ctrl+c.
	if !o.Interactive {
		o.Cmd.SysProcAttr = &syscall.SysProcAttr{
			Setpgid: true,
		}
	}

	return o.Cmd.Start()
}

func (o *CmdTree) Kill() {
	if o.Cmd.Process == nil {
		return
	}

	if o.Interactive {
		_ = o.Cmd.Process.Kill()
		return
	}

	_ = syscall.Kill(-o.Cmd.Process.Pid, syscall.SIGKILL)
}
