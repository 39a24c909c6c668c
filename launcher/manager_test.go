package launcher

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"sapopener/models"
)

func TestLaunchSAPGUIUnavailable(t *testing.T) {
	m := NewManager()

	err := m.LaunchSAPGUI(models.LauncherNotFound, models.LaunchParams{System: "QG1"})
	assert.ErrorIs(t, err, ErrLauncherUnavailable)

	err = m.LaunchSAPGUI("", models.LaunchParams{System: "QG1"})
	assert.ErrorIs(t, err, ErrLauncherUnavailable)
}

func TestLaunchApplicationMissingExecutable(t *testing.T) {
	m := NewManager()

	err := m.LaunchApplication(filepath.Join(t.TempDir(), "missing.exe"))
	assert.ErrorContains(t, err, "executable not found")
}

func TestCleanPath(t *testing.T) {
	m := NewManager()

	assert.Equal(t, filepath.Clean("/tmp/app.exe"), m.cleanPath(`"/tmp/app.exe"`))
	assert.Equal(t, filepath.Clean("/tmp/app.exe"), m.cleanPath("'/tmp/app.exe'"))
}
