package models

// ShortcutKind identifies which shortcut table a configured alias came from
type ShortcutKind int

const (
	// KindApplication is a shortcut pointing at a local executable path
	KindApplication ShortcutKind = iota
	// KindWebpage is a shortcut pointing at a web URL
	KindWebpage
)

// String returns the configuration section name for the kind
func (k ShortcutKind) String() string {
	switch k {
	case KindApplication:
		return "APP"
	case KindWebpage:
		return "WEB"
	default:
		return "UNKNOWN"
	}
}

// LaunchParams holds SAP connection parameters. An empty string means the
// parameter is absent and its flag is omitted from the command line.
type LaunchParams struct {
	Client      string
	Language    string
	System      string
	Transaction string
}

// Args renders the parameters as sapshcut command-line flags, including only
// the flags whose value is present
func (p LaunchParams) Args() []string {
	var args []string

	if p.Client != "" {
		args = append(args, "-client="+p.Client)
	}
	if p.Language != "" {
		args = append(args, "-language="+p.Language)
	}
	if p.System != "" {
		args = append(args, "-system="+p.System)
	}
	if p.Transaction != "" {
		args = append(args, "-transaction="+p.Transaction)
	}

	return args
}

// ActionType classifies what the interpreter decided to do with an input
type ActionType int

const (
	// ActionNone means the input matched nothing and is silently ignored
	ActionNone ActionType = iota
	// ActionSAPGUI means the input decomposed into SAP connection parameters
	ActionSAPGUI
	// ActionShortcut means the input matched a configured APP or WEB alias
	ActionShortcut
)

// Action is the interpreter's decision for one input string
type Action struct {
	Type   ActionType
	Params LaunchParams // set for ActionSAPGUI
	Target string       // set for ActionShortcut
	Kind   ShortcutKind // set for ActionShortcut
}

// NoAction is the action for unrecognized input
func NoAction() Action {
	return Action{Type: ActionNone}
}

// SAPAction builds an action that launches a SAP GUI session
func SAPAction(params LaunchParams) Action {
	return Action{Type: ActionSAPGUI, Params: params}
}

// ShortcutAction builds an action that opens a configured shortcut target
func ShortcutAction(target string, kind ShortcutKind) Action {
	return Action{Type: ActionShortcut, Target: target, Kind: kind}
}
