package updater

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sapopener/logger"
	"sapopener/models"
)

// UpdateInfo contains information about an available update
type UpdateInfo struct {
	CurrentVersion  string
	LatestVersion   string
	ReleaseNotes    string
	ReleaseURL      string
	AssetURL        string
	UpdateAvailable bool
}

// Updater checks the GitHub release feed and replaces the running binary
type Updater struct {
	slug   string
	client *resty.Client
}

// New creates an updater bound to the project's release feed
func New() *Updater {
	return &Updater{
		slug: models.RepoSlug,
		client: resty.New().
			SetTimeout(60 * time.Second).
			SetHeader("User-Agent", models.AppName),
	}
}

// CheckForUpdate queries the release feed for a newer version. The caller
// only needs the yes/no plus the version string.
func (u *Updater) CheckForUpdate(ctx context.Context) (*UpdateInfo, error) {
	updater, err := u.newSelfUpdater()
	if err != nil {
		return nil, err
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(u.slug))
	if err != nil {
		return nil, fmt.Errorf("failed to detect latest version: %w", err)
	}

	info := &UpdateInfo{
		CurrentVersion:  models.AppVersion,
		UpdateAvailable: false,
	}

	if !found {
		return info, nil
	}

	info.LatestVersion = latest.Version()
	info.ReleaseNotes = latest.ReleaseNotes
	info.ReleaseURL = latest.URL
	info.AssetURL = latest.AssetURL

	current := strings.TrimPrefix(models.AppVersion, "v")
	if latest.GreaterThan(current) {
		info.UpdateAvailable = true
	}

	return info, nil
}

// DownloadAsset fetches a release asset into a uniquely named temp file and
// returns its path
func (u *Updater) DownloadAsset(ctx context.Context, assetURL string) (string, error) {
	name := "sapopener-" + uuid.New().String() + filepath.Ext(assetURL)
	destPath := filepath.Join(os.TempDir(), name)

	resp, err := u.client.R().
		SetContext(ctx).
		SetOutput(destPath).
		Get(assetURL)
	if err != nil {
		return "", fmt.Errorf("failed to download asset: %w", err)
	}
	if resp.IsError() {
		os.Remove(destPath)
		return "", fmt.Errorf("asset download returned status %d", resp.StatusCode())
	}

	logger.Info("downloaded release asset", zap.String("path", destPath))
	return destPath, nil
}

// Apply downloads the latest release asset and swaps it in for the running
// executable. The caller restarts afterwards.
func (u *Updater) Apply(ctx context.Context) error {
	info, err := u.CheckForUpdate(ctx)
	if err != nil {
		return err
	}

	if !info.UpdateAvailable {
		return fmt.Errorf("no update available, current version is %s", info.CurrentVersion)
	}
	if info.AssetURL == "" {
		return fmt.Errorf("release %s has no downloadable asset", info.LatestVersion)
	}

	assetPath, err := u.DownloadAsset(ctx, info.AssetURL)
	if err != nil {
		return err
	}
	defer os.Remove(assetPath)

	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	if err := replaceFile(assetPath, exePath); err != nil {
		return fmt.Errorf("failed to apply update: %w", err)
	}

	logger.Info("updated to latest release", zap.String("version", info.LatestVersion))
	return nil
}

// replaceFile swaps dst with the contents of src, keeping the previous file
// as a .old backup so a running executable can be replaced in place
func replaceFile(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		backupPath := dst + ".old"
		os.Remove(backupPath) // Remove any existing backup
		if err := os.Rename(dst, backupPath); err != nil {
			return fmt.Errorf("failed to back up %s: %w", dst, err)
		}
	}

	return copyFile(src, dst)
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}

	return dstFile.Sync()
}

func (u *Updater) newSelfUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub source: %w", err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("failed to create updater: %w", err)
	}

	return updater, nil
}

// Restart spawns a fresh copy of the current executable and detaches from
// it. The caller exits afterwards.
func Restart() error {
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	cmd := exec.Command(exePath)
	hideConsole(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to restart: %w", err)
	}

	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release restarted process: %w", err)
	}

	return nil
}
