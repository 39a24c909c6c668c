package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/ini.v1"

	"sapopener/logger"
	"sapopener/models"
	"sapopener/screen"
)

// launcherExeName is the SAP shortcut launcher searched for on first run
const launcherExeName = "sapshcut.exe"

// Manager handles configuration persistence and lookups
type Manager struct {
	path       string
	file       *ini.File
	searchDirs []string
	screenSize func() (int, int)
}

// NewManager creates a configuration manager backed by config.ini next to
// the executable. A missing or corrupt file is recreated with defaults.
func NewManager() *Manager {
	dir := "."
	if exePath, err := os.Executable(); err == nil {
		dir = filepath.Dir(exePath)
	}

	return NewManagerWithPath(filepath.Join(dir, "config.ini"))
}

// NewManagerWithPath creates a configuration manager backed by the given file
func NewManagerWithPath(path string) *Manager {
	m := &Manager{
		path:       path,
		searchDirs: []string{`C:\Program Files`, `C:\Program Files (x86)`},
		screenSize: screen.Size,
	}

	file, err := ini.Load(path)
	if err != nil {
		// Missing or unreadable file: start from scratch
		logger.Info("creating settings file with defaults", zap.String("path", path))
		file = ini.Empty()
	}
	m.file = file

	m.mergeDefaults()

	if err := m.Save(); err != nil {
		logger.Error("failed to save settings", zap.String("path", path), zap.Error(err))
	}

	return m
}

// mergeDefaults fills in missing keys from the built-in defaults. Existing
// keys are never overwritten, except the version marker which always takes
// the current built-in value. Merging twice yields the same file as once.
func (m *Manager) mergeDefaults() {
	for section, options := range models.DefaultSettings() {
		sec := m.file.Section(section)
		for key, value := range options {
			if key == models.KeyVersion {
				sec.Key(key).SetValue(value)
				continue
			}
			if !sec.HasKey(key) {
				sec.Key(key).SetValue(value)
			}
		}
	}

	// The launcher path default is discovered, not hard-coded
	sec := m.file.Section(models.SectionDefault)
	if !sec.HasKey(models.KeyLauncherPath) || sec.Key(models.KeyLauncherPath).String() == "" {
		sec.Key(models.KeyLauncherPath).SetValue(m.findLauncher())
	}
}

// Save writes the configuration file to disk
func (m *Manager) Save() error {
	return m.file.SaveTo(m.path)
}

// LauncherPath returns the configured sapshcut path, or the sentinel
// models.LauncherNotFound when the executable could not be located. Callers
// must treat the sentinel as "unavailable", not as a path.
func (m *Manager) LauncherPath() string {
	path := m.file.Section(models.SectionDefault).Key(models.KeyLauncherPath).String()
	if path != "" {
		return path
	}
	return m.findLauncher()
}

// findLauncher searches the fixed program directories for the launcher
// executable and returns the first match, or the not-found sentinel
func (m *Manager) findLauncher() string {
	for _, dir := range m.searchDirs {
		var found string
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // skip unreadable subtrees
			}
			if !d.IsDir() && strings.EqualFold(d.Name(), launcherExeName) {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if err == nil && found != "" {
			logger.Info("found SAP launcher", zap.String("path", found))
			return found
		}
	}

	logger.Warn("SAP launcher not found in program directories")
	return models.LauncherNotFound
}

// DefaultLanguage returns the configured SAP logon language, or the
// built-in fallback
func (m *Manager) DefaultLanguage() string {
	lang := m.file.Section(models.SectionDefault).Key(models.KeyDefaultLanguage).String()
	if lang == "" {
		return models.DefaultLanguage
	}
	return lang
}

// DefaultClient returns the default client code for the given system from
// the DEFAULT_SAP_CLIENT section, or ok=false when none is configured
func (m *Manager) DefaultClient(system string) (string, bool) {
	return lookupKey(m.file.Section(models.SectionSAPClient), system)
}

// ResolveShortcut looks up a named shortcut in the APP table first, then the
// WEB table. ok is false when the name matches neither.
func (m *Manager) ResolveShortcut(name string) (target string, kind models.ShortcutKind, ok bool) {
	if target, ok := lookupKey(m.file.Section(models.SectionApp), name); ok {
		return target, models.KindApplication, true
	}
	if target, ok := lookupKey(m.file.Section(models.SectionWeb), name); ok {
		return target, models.KindWebpage, true
	}
	return "", 0, false
}

// lookupKey finds a key case-insensitively, since inputs are lower-cased
// before resolution while the file preserves key case
func lookupKey(sec *ini.Section, name string) (string, bool) {
	for key, value := range sec.KeysHash() {
		if strings.EqualFold(key, name) {
			return value, true
		}
	}
	return "", false
}

// AppShortcuts returns the configured application shortcuts by name
func (m *Manager) AppShortcuts() map[string]string {
	return m.file.Section(models.SectionApp).KeysHash()
}

// WebShortcuts returns the configured web shortcuts by name
func (m *Manager) WebShortcuts() map[string]string {
	return m.file.Section(models.SectionWeb).KeysHash()
}

// SAPClients returns the per-system default client codes
func (m *Manager) SAPClients() map[string]string {
	return m.file.Section(models.SectionSAPClient).KeysHash()
}

// positionKeys returns the settings keys holding the window position for the
// current screen resolution, so a resolution change never clobbers the
// position saved for another display setup
func (m *Manager) positionKeys() (keyX, keyY string) {
	w, h := m.screenSize()
	suffix := fmt.Sprintf("%dx%d", w, h)
	return "position_x_" + suffix, "position_y_" + suffix
}

// WritePosition persists the window position for the current resolution,
// writing through to disk immediately
func (m *Manager) WritePosition(x, y int) error {
	keyX, keyY := m.positionKeys()
	sec := m.file.Section(models.SectionDefault)
	sec.Key(keyX).SetValue(strconv.Itoa(x))
	sec.Key(keyY).SetValue(strconv.Itoa(y))
	return m.Save()
}

// Position returns the saved window position for the current resolution.
// Coordinates beyond the screen extent are clamped to extent - 200 so the
// window never comes back off-screen.
func (m *Manager) Position() (x, y int) {
	keyX, keyY := m.positionKeys()
	sec := m.file.Section(models.SectionDefault)
	x = sec.Key(keyX).MustInt(0)
	y = sec.Key(keyY).MustInt(0)

	w, h := m.screenSize()
	if x > w {
		x = w - 200
	}
	if y > h {
		y = h - 200
	}

	return x, y
}
