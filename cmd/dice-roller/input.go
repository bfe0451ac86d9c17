package main

import (
	"github.com/gdamore/tcell/v2"
)

// action is what one input event asks the app to do
type action int

const (
	actionNone action = iota
	actionRoll
	actionPause
	actionClear
	actionDebug
	actionMute
	actionQuit
	actionResize
)

// inputMapper translates tcell events; it tracks mouse buttons so a held click rolls once
type inputMapper struct {
	buttons tcell.ButtonMask
}

func (m *inputMapper) translate(ev tcell.Event) action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEnter:
			return actionRoll
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return actionQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				return actionRoll
			case 'p', 'P':
				return actionPause
			case 'c', 'C':
				return actionClear
			case 'd', 'D':
				return actionDebug
			case 'm', 'M':
				return actionMute
			case 'q', 'Q':
				return actionQuit
			}
		}

	case *tcell.EventMouse:
		prev := m.buttons
		m.buttons = ev.Buttons()
		if m.buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
			return actionRoll
		}

	case *tcell.EventResize:
		return actionResize
	}
	return actionNone
}
