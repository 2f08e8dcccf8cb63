package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// State is the lifecycle of the launcher window
type State int

const (
	StateUninitialized State = iota
	StateVisible
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateVisible:
		return "visible"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type GUI struct {
	app        fyne.App
	mainWindow fyne.Window
	config     *Config
	spawner    Spawner
	logger     *Logger

	panel         *widget.Card
	launchButtons []*widget.Button

	state State

	// OnLaunch, when set, receives the outcome of every launch attempt.
	OnLaunch func(t Target, err error)
}

func NewGUI(a fyne.App, cfg *Config, spawner Spawner, logger *Logger) *GUI {
	g := &GUI{
		app:     a,
		config:  cfg,
		spawner: spawner,
		logger:  logger,
	}

	g.mainWindow = g.app.NewWindow(cfg.Window.Title)
	g.mainWindow.SetMaster()
	g.mainWindow.SetOnClosed(g.onClosed)
	g.buildUI()

	g.mainWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	g.mainWindow.CenterOnScreen()

	return g
}

func (g *GUI) buildUI() {
	buttons := make([]fyne.CanvasObject, 0, len(g.config.Targets))
	for _, t := range g.config.Targets {
		t := t
		b := widget.NewButton(t.Label, func() { g.launch(t) })
		g.launchButtons = append(g.launchButtons, b)
		buttons = append(buttons, b)
	}

	column := container.New(newInsetColumn(g.config.Window.CellPadding), buttons...)
	g.panel = widget.NewCard(g.config.Window.Title, "", container.NewCenter(column))

	g.mainWindow.SetContent(g.panel)
}

// launch is the click handler shared by every button. Failures are logged
// and reported through OnLaunch; they never reach the window.
func (g *GUI) launch(t Target) {
	g.log(fmt.Sprintf("Launching %s [%s]: %s", t.Label, t.ID, t.CommandLine()))

	err := g.spawnGuarded(t)
	if err != nil {
		g.logError(fmt.Sprintf("Launch of %s [%s] failed: %+v", t.Label, t.ID, err))
	}

	if g.OnLaunch != nil {
		g.OnLaunch(t, err)
	}
}

func (g *GUI) spawnGuarded(t Target) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if g.logger != nil {
				g.logger.Panic(r)
			}
			err = &SpawnError{Target: t, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return Launch(g.spawner, t)
}

func (g *GUI) onClosed() {
	g.state = StateClosed
	g.log("Launcher window closed")
}

func (g *GUI) log(msg string) {
	if g.logger != nil {
		g.logger.Info(msg)
	}
}

func (g *GUI) logError(msg string) {
	if g.logger != nil {
		g.logger.Error(msg)
	}
}

// State reports where the window is in its lifecycle
func (g *GUI) State() State { return g.state }

// Show displays the window without entering the event loop
func (g *GUI) Show() {
	g.state = StateVisible
	g.mainWindow.Show()
}

func (g *GUI) Run() {
	g.state = StateVisible
	g.mainWindow.ShowAndRun()
}
