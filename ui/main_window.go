package ui

import (
	"context"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"sapopener/config"
	"sapopener/interpreter"
	"sapopener/logger"
	"sapopener/models"
	"sapopener/updater"
)

// raiseInterval is how often the window re-asserts itself as topmost
const raiseInterval = 500 * time.Millisecond

// MainWindow represents the always-on-top input box
type MainWindow struct {
	app    fyne.App
	window fyne.Window

	cfg     *config.Manager
	interp  *interpreter.Interpreter
	updater *updater.Updater

	entry  *shortcutEntry
	status *StatusLabel

	moveItem   *fyne.MenuItem
	updateItem *fyne.MenuItem

	moveMode   bool
	raiseTimer *time.Timer

	updateMu   sync.Mutex // protects updateInfo against the check goroutine
	updateInfo *updater.UpdateInfo
}

// NewMainWindow creates the input box window
func NewMainWindow(cfg *config.Manager, interp *interpreter.Interpreter, upd *updater.Updater) *MainWindow {
	myApp := app.New()

	// A splash window is borderless and stays on top; fall back to a plain
	// window on drivers without splash support
	var window fyne.Window
	if drv, ok := myApp.Driver().(desktop.Driver); ok {
		window = drv.CreateSplashWindow()
	} else {
		window = myApp.NewWindow(models.AppName)
	}
	window.SetTitle(models.AppName)
	window.Resize(fyne.NewSize(300, 64))

	mw := &MainWindow{
		app:     myApp,
		window:  window,
		cfg:     cfg,
		interp:  interp,
		updater: upd,
	}

	mw.setupUI()

	return mw
}

// ShowAndRun shows the window and runs the application
func (mw *MainWindow) ShowAndRun() {
	mw.window.Show()
	mw.restorePosition()
	mw.startRaiseTimer()

	go mw.checkUpdate()

	mw.app.Run()
}

// setupUI builds the entry box, the status line and the context menu
func (mw *MainWindow) setupUI() {
	mw.entry = newShortcutEntry()
	mw.entry.SetPlaceHolder("shortcut code")
	mw.entry.OnSubmitted = mw.onSubmitted
	mw.entry.onMenu = mw.showContextMenu
	mw.entry.moveMode = func() bool { return mw.moveMode }
	mw.entry.onMoveDrag = mw.moveBy

	mw.status = NewStatusLabel()

	mw.moveItem = fyne.NewMenuItem("Move", nil)
	mw.moveItem.Action = func() {
		mw.moveMode = !mw.moveMode
		mw.moveItem.Checked = mw.moveMode
	}

	mw.updateItem = fyne.NewMenuItem("Update", mw.runUpdate)
	mw.updateItem.Disabled = true

	mw.window.SetContent(container.NewVBox(mw.entry, mw.status))
	mw.window.Canvas().Focus(mw.entry)
}

// setUpdateInfo records an available update found by the check goroutine
func (mw *MainWindow) setUpdateInfo(info *updater.UpdateInfo) {
	mw.updateMu.Lock()
	defer mw.updateMu.Unlock()
	mw.updateInfo = info
}

// pendingUpdate returns the available update, or nil when there is none
func (mw *MainWindow) pendingUpdate() *updater.UpdateInfo {
	mw.updateMu.Lock()
	defer mw.updateMu.Unlock()
	return mw.updateInfo
}

// showContextMenu displays the right-click menu at the given position
func (mw *MainWindow) showContextMenu(pos fyne.Position) {
	// Menu item state is only touched on the event thread
	mw.updateItem.Disabled = mw.pendingUpdate() == nil

	menu := fyne.NewMenu("",
		mw.moveItem,
		mw.updateItem,
		fyne.NewMenuItem("Reload", mw.reload),
		fyne.NewMenuItem("Exit", mw.app.Quit),
	)
	widget.ShowPopUpMenuAtPosition(menu, mw.window.Canvas(), pos)
}

// onSubmitted handles the Enter key: dispatch the code and clear the entry
func (mw *MainWindow) onSubmitted(text string) {
	input := strings.TrimSpace(text)
	mw.entry.SetText("")

	if input == "" {
		return
	}

	if err := mw.interp.Execute(input); err != nil {
		// Launch failures are reported on the status line, never fatal
		logger.Error("launch failed", zap.String("input", input), zap.Error(err))
		mw.status.SetError(err.Error())
		return
	}

	mw.status.Clear()
}

// moveBy shifts the window by a drag delta and persists the new position
// for the current resolution
func (mw *MainWindow) moveBy(dx, dy float32) {
	x, y, ok := windowPos(models.AppName)
	if !ok {
		return
	}

	x += int(dx)
	y += int(dy)

	if !moveWindow(models.AppName, x, y) {
		return
	}

	if err := mw.cfg.WritePosition(x, y); err != nil {
		logger.Error("failed to save window position", zap.Error(err))
	}
}

// restorePosition places the window where it was last left on this screen
// resolution. Scheduled shortly after Show so the native window exists.
func (mw *MainWindow) restorePosition() {
	x, y := mw.cfg.Position()
	if x == 0 && y == 0 {
		return
	}

	time.AfterFunc(200*time.Millisecond, func() {
		moveWindow(models.AppName, x, y)
	})
}

// startRaiseTimer keeps bringing the window to the front
func (mw *MainWindow) startRaiseTimer() {
	mw.raiseTimer = time.AfterFunc(raiseInterval, func() {
		raiseWindow(models.AppName)
		// Stop the current timer before creating a new one to prevent memory leaks
		if mw.raiseTimer != nil {
			mw.raiseTimer.Stop()
		}
		mw.startRaiseTimer()
	})
}

// checkUpdate asks the release feed once at startup and arms the Update
// menu entry when a newer version exists
func (mw *MainWindow) checkUpdate() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	info, err := mw.updater.CheckForUpdate(ctx)
	if err != nil {
		logger.Warn("update check failed", zap.Error(err))
		return
	}

	if !info.UpdateAvailable {
		return
	}

	mw.setUpdateInfo(info)
	mw.entry.SetText("Update possible to " + info.LatestVersion)
}

// runUpdate applies the available update after confirmation, then restarts
func (mw *MainWindow) runUpdate() {
	info := mw.pendingUpdate()
	if info == nil {
		return
	}

	err := zenity.Question("Update to "+info.LatestVersion+"?",
		zenity.Title(models.AppName))
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := mw.updater.Apply(ctx); err != nil {
		logger.Error("update failed", zap.Error(err))
		mw.status.SetError(err.Error())
		return
	}

	mw.restart()
}

// reload restarts the application in place
func (mw *MainWindow) reload() {
	mw.restart()
}

func (mw *MainWindow) restart() {
	if err := updater.Restart(); err != nil {
		logger.Error("restart failed", zap.Error(err))
		mw.status.SetError(err.Error())
		return
	}
	mw.app.Quit()
}
