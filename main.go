package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	logger := NewLogger(os.Stderr, cfg.Logging)

	// Set up error handling
	defer func() {
		if r := recover(); r != nil {
			logger.Panic(r)
			os.Exit(1)
		}
	}()

	gui := NewGUI(app.New(), cfg, NewProcessSpawner(), logger)

	// Returns once the window is closed
	gui.Run()
}
