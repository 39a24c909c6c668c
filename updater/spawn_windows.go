//go:build windows

package updater

import (
	"os/exec"
	"syscall"
)

// hideConsole keeps the detached restart from flashing a console window
func hideConsole(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow: true,
	}
}
