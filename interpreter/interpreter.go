// Package interpreter turns typed shortcut codes into launch actions. A
// configured shortcut name always wins; everything else is classified by
// character length into one of four SAP parameter shapes, and any other
// length is a silent no-op.
package interpreter

import (
	"strings"

	"go.uber.org/zap"

	"sapopener/logger"
	"sapopener/models"
)

// Config is the configuration surface the interpreter consults
type Config interface {
	DefaultLanguage() string
	DefaultClient(system string) (string, bool)
	ResolveShortcut(name string) (target string, kind models.ShortcutKind, ok bool)
	LauncherPath() string
}

// Launcher executes the external actions the interpreter decides on
type Launcher interface {
	LaunchApplication(path string) error
	OpenWebpage(url string) error
	LaunchSAPGUI(launcherPath string, params models.LaunchParams) error
}

// Interpreter resolves shortcut codes against the configuration and
// dispatches them to the launcher
type Interpreter struct {
	cfg      Config
	launcher Launcher
}

// New creates an interpreter bound to the given configuration and launcher
func New(cfg Config, l Launcher) *Interpreter {
	return &Interpreter{cfg: cfg, launcher: l}
}

// Interpret classifies a raw input string into an action. It never fails:
// unrecognized input yields a no-op action.
func (i *Interpreter) Interpret(input string) models.Action {
	code := strings.ToLower(strings.TrimSpace(input))
	if code == "" {
		return models.NoAction()
	}

	// Configured shortcuts take precedence over length decomposition
	if target, kind, ok := i.cfg.ResolveShortcut(code); ok {
		return models.ShortcutAction(target, kind)
	}

	// The transaction parameter is never encoded in a shortcut code
	switch len(code) {
	case 3:
		// system only
		client, _ := i.cfg.DefaultClient(code)
		return models.SAPAction(models.LaunchParams{
			Client:   client,
			Language: i.cfg.DefaultLanguage(),
			System:   code,
		})
	case 5:
		// language + system
		system := code[2:]
		client, _ := i.cfg.DefaultClient(system)
		return models.SAPAction(models.LaunchParams{
			Client:   client,
			Language: code[:2],
			System:   system,
		})
	case 6:
		// system + client
		return models.SAPAction(models.LaunchParams{
			Client:   code[3:],
			Language: i.cfg.DefaultLanguage(),
			System:   code[:3],
		})
	case 8:
		// language + system + client
		return models.SAPAction(models.LaunchParams{
			Client:   code[5:],
			Language: code[:2],
			System:   code[2:5],
		})
	default:
		// Not an error: unmatched lengths are deliberately ignored
		logger.Debug("ignoring unrecognized input", zap.String("input", code))
		return models.NoAction()
	}
}

// Execute interprets an input string and dispatches the resulting action.
// Failures are returned for reporting; none of them are fatal.
func (i *Interpreter) Execute(input string) error {
	action := i.Interpret(input)

	switch action.Type {
	case models.ActionShortcut:
		switch action.Kind {
		case models.KindApplication:
			return i.launcher.LaunchApplication(action.Target)
		case models.KindWebpage:
			return i.launcher.OpenWebpage(action.Target)
		}
	case models.ActionSAPGUI:
		return i.launcher.LaunchSAPGUI(i.cfg.LauncherPath(), action.Params)
	}

	return nil
}
