//go:build windows

package launcher

import (
	"os/exec"
	"syscall"
)

// hideConsole keeps shell-based spawns from flashing a console window
func hideConsole(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow: true,
	}
}
