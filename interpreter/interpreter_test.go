package interpreter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sapopener/models"
)

type fakeConfig struct {
	language     string
	clients      map[string]string
	apps         map[string]string
	webs         map[string]string
	launcherPath string
}

func (c *fakeConfig) DefaultLanguage() string {
	if c.language == "" {
		return models.DefaultLanguage
	}
	return c.language
}

func (c *fakeConfig) DefaultClient(system string) (string, bool) {
	client, ok := c.clients[system]
	return client, ok
}

func (c *fakeConfig) ResolveShortcut(name string) (string, models.ShortcutKind, bool) {
	if target, ok := c.apps[name]; ok {
		return target, models.KindApplication, true
	}
	if target, ok := c.webs[name]; ok {
		return target, models.KindWebpage, true
	}
	return "", 0, false
}

func (c *fakeConfig) LauncherPath() string {
	if c.launcherPath == "" {
		return models.LauncherNotFound
	}
	return c.launcherPath
}

type fakeLauncher struct {
	apps     []string
	webs     []string
	sapPath  string
	sapCalls []models.LaunchParams
	err      error
}

func (l *fakeLauncher) LaunchApplication(path string) error {
	l.apps = append(l.apps, path)
	return l.err
}

func (l *fakeLauncher) OpenWebpage(url string) error {
	l.webs = append(l.webs, url)
	return l.err
}

func (l *fakeLauncher) LaunchSAPGUI(launcherPath string, params models.LaunchParams) error {
	l.sapPath = launcherPath
	l.sapCalls = append(l.sapCalls, params)
	return l.err
}

func TestInterpretByLength(t *testing.T) {
	cfg := &fakeConfig{
		clients: map[string]string{"qg1": "200"},
	}
	interp := New(cfg, &fakeLauncher{})

	tests := []struct {
		name  string
		input string
		want  models.LaunchParams
	}{
		{
			name:  "length 3 is system with defaulted client and language",
			input: "qg1",
			want:  models.LaunchParams{Client: "200", Language: "EN", System: "qg1"},
		},
		{
			name:  "length 3 without configured client leaves client absent",
			input: "pr3",
			want:  models.LaunchParams{Language: "EN", System: "pr3"},
		},
		{
			name:  "length 5 is language plus system",
			input: "deqg1",
			want:  models.LaunchParams{Client: "200", Language: "de", System: "qg1"},
		},
		{
			name:  "length 6 is system plus client",
			input: "qg1300",
			want:  models.LaunchParams{Client: "300", Language: "EN", System: "qg1"},
		},
		{
			name:  "length 8 is language plus system plus client",
			input: "enqg1200",
			want:  models.LaunchParams{Client: "200", Language: "en", System: "qg1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := interp.Interpret(tt.input)
			require.Equal(t, models.ActionSAPGUI, action.Type)
			assert.Equal(t, tt.want, action.Params)
			assert.Empty(t, action.Params.Transaction, "transaction is never populated")
		})
	}
}

func TestInterpretUnmatchedLengthIsNoOp(t *testing.T) {
	interp := New(&fakeConfig{}, &fakeLauncher{})

	for _, input := range []string{"q", "qg", "qg10", "qg1200p", "enqg1200x", ""} {
		action := interp.Interpret(input)
		assert.Equal(t, models.ActionNone, action.Type, "input %q should be ignored", input)
	}
}

func TestInterpretShortcutPrecedence(t *testing.T) {
	// A configured name wins even when its length matches a SAP shape
	cfg := &fakeConfig{
		webs:    map[string]string{"qg1": "https://example.com/"},
		clients: map[string]string{"qg1": "200"},
	}
	interp := New(cfg, &fakeLauncher{})

	action := interp.Interpret("qg1")
	require.Equal(t, models.ActionShortcut, action.Type)
	assert.Equal(t, models.KindWebpage, action.Kind)
	assert.Equal(t, "https://example.com/", action.Target)
}

func TestInterpretNormalizesInput(t *testing.T) {
	cfg := &fakeConfig{clients: map[string]string{"qg1": "200"}}
	interp := New(cfg, &fakeLauncher{})

	action := interp.Interpret("  QG1 ")
	require.Equal(t, models.ActionSAPGUI, action.Type)
	assert.Equal(t, "qg1", action.Params.System)
}

func TestExecuteDispatch(t *testing.T) {
	cfg := &fakeConfig{
		language:     "EN",
		clients:      map[string]string{"qg1": "200"},
		apps:         map[string]string{"excel": `C:\Office\EXCEL.EXE`},
		webs:         map[string]string{"w": "https://pl.wikipedia.org/wiki/"},
		launcherPath: `C:\SAP\sapshcut.exe`,
	}

	t.Run("application shortcut", func(t *testing.T) {
		l := &fakeLauncher{}
		require.NoError(t, New(cfg, l).Execute("excel"))
		assert.Equal(t, []string{`C:\Office\EXCEL.EXE`}, l.apps)
		assert.Empty(t, l.webs)
		assert.Empty(t, l.sapCalls)
	})

	t.Run("web shortcut", func(t *testing.T) {
		l := &fakeLauncher{}
		require.NoError(t, New(cfg, l).Execute("w"))
		assert.Equal(t, []string{"https://pl.wikipedia.org/wiki/"}, l.webs)
		assert.Empty(t, l.sapCalls)
	})

	t.Run("SAP launch uses configured launcher path", func(t *testing.T) {
		l := &fakeLauncher{}
		require.NoError(t, New(cfg, l).Execute("qg1"))
		require.Len(t, l.sapCalls, 1)
		assert.Equal(t, `C:\SAP\sapshcut.exe`, l.sapPath)
		assert.Equal(t, models.LaunchParams{Client: "200", Language: "EN", System: "qg1"}, l.sapCalls[0])
	})

	t.Run("unrecognized input launches nothing", func(t *testing.T) {
		l := &fakeLauncher{}
		require.NoError(t, New(cfg, l).Execute("zzzz"))
		assert.Empty(t, l.apps)
		assert.Empty(t, l.webs)
		assert.Empty(t, l.sapCalls)
	})

	t.Run("launch failure is returned, not panicked", func(t *testing.T) {
		l := &fakeLauncher{err: errors.New("spawn failed")}
		err := New(cfg, l).Execute("w")
		assert.EqualError(t, err, "spawn failed")
	})
}
