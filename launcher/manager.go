package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"sapopener/logger"
	"sapopener/models"
)

// ErrLauncherUnavailable is returned when the SAP launcher executable could
// not be located. Callers report it to the user and take no action.
var ErrLauncherUnavailable = errors.New("SAP shortcut launcher not installed")

// Manager handles launching external targets
type Manager struct{}

// NewManager creates a new launcher manager
func NewManager() *Manager {
	return &Manager{}
}

// LaunchApplication starts a configured application executable and does not
// wait for it to finish. A missing executable is reported, not fatal.
func (m *Manager) LaunchApplication(path string) error {
	executable := m.cleanPath(path)

	if _, err := os.Stat(executable); os.IsNotExist(err) {
		return fmt.Errorf("executable not found: %s", executable)
	}

	cmd := exec.Command(executable)
	cmd.Dir = filepath.Dir(executable)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", executable, err)
	}

	logger.Info("launched application", zap.String("path", executable))
	return nil
}

// OpenWebpage opens a URL in the default browser using the platform's
// open command
func (m *Manager) OpenWebpage(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", url)
		hideConsole(cmd)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}

	logger.Info("opened webpage", zap.String("url", url))
	return nil
}

// LaunchSAPGUI invokes the SAP launcher with the present connection flags
// and waits for it to exit, so a non-zero status can be reported. This is
// the only blocking launch.
func (m *Manager) LaunchSAPGUI(launcherPath string, params models.LaunchParams) error {
	if launcherPath == "" || launcherPath == models.LauncherNotFound {
		return ErrLauncherUnavailable
	}

	args := params.Args()
	logger.Info("launching SAP GUI",
		zap.String("launcher", launcherPath),
		zap.Strings("args", args))

	cmd := exec.Command(launcherPath, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error launching SAP GUI: %w", err)
	}

	logger.Info("SAP GUI launched successfully")
	return nil
}

// cleanPath cleans and normalizes a file path
func (m *Manager) cleanPath(path string) string {
	// Remove surrounding quotes
	path = strings.Trim(path, `"'`)

	// Normalize path separators
	path = filepath.Clean(path)

	return path
}
