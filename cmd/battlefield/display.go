package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/battlefield/render"
	"github.com/lixenwraith/battlefield/simulation"
)

// display receives frames from the simulation and reports the outcome
type display interface {
	observe(frame simulation.Frame)
	finish(message string)
	close()
}

// terminalDisplay owns a tcell screen for the lifetime of the process
type terminalDisplay struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	once     sync.Once
}

func newTerminalDisplay() (*terminalDisplay, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	return &terminalDisplay{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
	}, nil
}

func (d *terminalDisplay) observe(frame simulation.Frame) {
	d.renderer.RenderFrame(frame)
}

func (d *terminalDisplay) finish(message string) {
	d.renderer.ShowMessage(message + " (q to quit)")
}

func (d *terminalDisplay) close() {
	d.once.Do(d.screen.Fini)
}

// pollQuit cancels on q, Esc or Ctrl-C; returns when the screen is finalized
func (d *terminalDisplay) pollQuit(cancel context.CancelFunc) {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				cancel()
				return
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

// textDisplay prints every frame as plain ASCII
type textDisplay struct {
	w io.Writer
}

func (d *textDisplay) observe(frame simulation.Frame) {
	if err := render.WriteText(d.w, frame); err != nil {
		log.Printf("[Display] write failed: %v", err)
	}
	fmt.Fprintln(d.w)
}

func (d *textDisplay) finish(message string) {
	fmt.Fprintln(d.w, message)
}

func (d *textDisplay) close() {}

// quietDisplay only reports the outcome
type quietDisplay struct {
	w io.Writer
}

func (d *quietDisplay) observe(simulation.Frame) {}

func (d *quietDisplay) finish(message string) {
	fmt.Fprintln(d.w, message)
}

func (d *quietDisplay) close() {}
