// Package terminal hosts the tcell frontend: screen setup and translation of
// terminal events into simulation input.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Open creates and initializes the screen with mouse motion reporting enabled
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := Setup(screen); err != nil {
		return nil, err
	}
	return screen, nil
}

// Setup initializes an already created screen; used directly with simulation screens
func Setup(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()
	return nil
}

// PollEvents forwards screen events to a channel until the screen is finalized
func PollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		out <- ev
	}
}
