//go:build windows

package updater

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHideConsoleSetsHideWindow(t *testing.T) {
	cmd := exec.Command("cmd")
	hideConsole(cmd)

	require.NotNil(t, cmd.SysProcAttr)
	require.True(t, cmd.SysProcAttr.HideWindow)
}
