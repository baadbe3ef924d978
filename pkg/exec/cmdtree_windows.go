// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

//go:build windows

package exec

import (
	"log"
	"os/exec"
	"strconv"
	"syscall"
)

func (o *CmdTree) Start() error {
	o.Cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}

	return o.Cmd.Start()
}

func (o *CmdTree) Kill() {
	if o.Cmd.Process == nil {
		return
	}

	// taskkill /T takes the whole child process tree down with the root process.
	kill := exec.Command("TaskKill", "/T", "/F", "/PID", strconv.Itoa(o.Cmd.Process.Pid))
	if err := kill.Run(); err != nil {
		log.Printf("failed to kill process tree %d: %v", o.Cmd.Process.Pid, err)
	}
}
