package main

import (
	"bytes"
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spawnCall struct {
	program string
	args    []string
}

type fakeSpawner struct {
	calls []spawnCall
	err   error
	panic interface{}
}

func (f *fakeSpawner) Spawn(program string, args ...string) error {
	f.calls = append(f.calls, spawnCall{program: program, args: args})
	if f.panic != nil {
		panic(f.panic)
	}
	return f.err
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Targets = []Target{
		NewTarget("Launch A", "java", "-jar", "/opt/a.jar"),
		NewTarget("Launch B", "java", "-jar", "/opt/b.jar"),
	}
	return cfg
}

func newTestGUI(t *testing.T, sp Spawner) (*GUI, *bytes.Buffer) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	var out bytes.Buffer
	g := NewGUI(a, testConfig(), sp, NewLogger(&out, LoggingConfig{Level: "debug"}))
	g.Show()
	return g, &out
}

func TestGUILayout(t *testing.T) {
	g, _ := newTestGUI(t, &fakeSpawner{})

	assert.Equal(t, StateVisible, g.State())
	assert.Equal(t, fyne.NewSize(225, 225), g.mainWindow.Canvas().Size())
	assert.Equal(t, "Launcher", g.panel.Title)

	require.Len(t, g.launchButtons, 2)
	assert.Equal(t, "Launch A", g.launchButtons[0].Text)
	assert.Equal(t, "Launch B", g.launchButtons[1].Text)
	assert.Less(t, g.launchButtons[0].Position().Y, g.launchButtons[1].Position().Y)
	assert.Equal(t, g.launchButtons[0].Position().X, g.launchButtons[1].Position().X)
}

func TestClickSpawnsTargetCommand(t *testing.T) {
	sp := &fakeSpawner{}
	g, _ := newTestGUI(t, sp)

	test.Tap(g.launchButtons[0])
	test.Tap(g.launchButtons[1])
	test.Tap(g.launchButtons[0])

	require.Len(t, sp.calls, 3)
	assert.Equal(t, spawnCall{"java", []string{"-jar", "/opt/a.jar"}}, sp.calls[0])
	assert.Equal(t, spawnCall{"java", []string{"-jar", "/opt/b.jar"}}, sp.calls[1])
	assert.Equal(t, spawnCall{"java", []string{"-jar", "/opt/a.jar"}}, sp.calls[2])
	assert.Equal(t, StateVisible, g.State())
}

func TestClickWithFailingSpawnKeepsWindowOpen(t *testing.T) {
	cause := errors.New("executable file not found")
	sp := &fakeSpawner{err: cause}
	g, out := newTestGUI(t, sp)

	var reported []error
	g.OnLaunch = func(_ Target, err error) { reported = append(reported, err) }

	test.Tap(g.launchButtons[0])
	test.Tap(g.launchButtons[1])

	assert.Equal(t, StateVisible, g.State())
	assert.Len(t, sp.calls, 2)
	require.Len(t, reported, 2)

	var spawnErr *SpawnError
	require.ErrorAs(t, reported[1], &spawnErr)
	assert.Equal(t, "Launch B", spawnErr.Target.Label)
	assert.ErrorIs(t, reported[0], cause)

	assert.Contains(t, out.String(), "ERROR: Launch of Launch A")
	assert.Contains(t, out.String(), "executable file not found")
}

func TestClickWithPanickingSpawnIsRecovered(t *testing.T) {
	sp := &fakeSpawner{panic: "boom"}
	g, out := newTestGUI(t, sp)

	var got error
	g.OnLaunch = func(_ Target, err error) { got = err }

	assert.NotPanics(t, func() { test.Tap(g.launchButtons[0]) })
	assert.Equal(t, StateVisible, g.State())

	var spawnErr *SpawnError
	require.ErrorAs(t, got, &spawnErr)
	assert.Contains(t, out.String(), "PANIC: boom")
}

func TestOnLaunchReportsSuccess(t *testing.T) {
	g, out := newTestGUI(t, &fakeSpawner{})

	called := false
	g.OnLaunch = func(tg Target, err error) {
		called = true
		assert.NoError(t, err)
		assert.Equal(t, "Launch A", tg.Label)
	}

	test.Tap(g.launchButtons[0])

	assert.True(t, called)
	assert.Contains(t, out.String(), "INFO: Launching Launch A")
	assert.NotContains(t, out.String(), "ERROR")
}

func TestCloseWindow(t *testing.T) {
	g, out := newTestGUI(t, &fakeSpawner{})

	g.mainWindow.Close()

	assert.Equal(t, StateClosed, g.State())
	assert.Contains(t, out.String(), "Launcher window closed")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "visible", StateVisible.String())
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "State(7)", State(7).String())
}
