//go:build unix

package main

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own process group so it outlives the
// launcher and does not get its terminal signals.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
