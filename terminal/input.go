package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-recall/core"
)

// Rune bindings; the digit keys mirror the quadrants on a numeric keypad
var runeCommands = map[rune]core.Command{
	'q': {Action: core.ActionSelect, Target: core.TargetTopLeft},
	'w': {Action: core.ActionSelect, Target: core.TargetTopRight},
	'a': {Action: core.ActionSelect, Target: core.TargetBottomLeft},
	's': {Action: core.ActionSelect, Target: core.TargetBottomRight},
	'7': {Action: core.ActionSelect, Target: core.TargetTopLeft},
	'9': {Action: core.ActionSelect, Target: core.TargetTopRight},
	'1': {Action: core.ActionSelect, Target: core.TargetBottomLeft},
	'3': {Action: core.ActionSelect, Target: core.TargetBottomRight},
	'r': {Action: core.ActionReplay},
	't': {Action: core.ActionTip},
	'n': {Action: core.ActionNewGame},
	'x': {Action: core.ActionToggleExtreme},
	'l': {Action: core.ActionCycleLives},
	'h': {Action: core.ActionCycleTips},
	'c': {Action: core.ActionCycleCountdown},
	'm': {Action: core.ActionToggleMute},
	' ': {Action: core.ActionNext},
}

// MapKey decodes one key press
// Unbound keys yield ActionNone
func MapKey(key tcell.Key, r rune, mod tcell.ModMask) core.Command {
	switch key {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyEscape:
		return core.Command{Action: core.ActionQuit}
	case tcell.KeyEnter:
		return core.Command{Action: core.ActionNext}
	case tcell.KeyCtrlL:
		return core.Command{Action: core.ActionRedraw}
	case tcell.KeyRune:
		if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return core.Command{}
		}
		if cmd, ok := runeCommands[unicode.ToLower(r)]; ok {
			return cmd
		}
	}
	return core.Command{}
}

// InputDecoder turns tcell events into commands
// A held mouse button selects once, on press
type InputDecoder struct {
	pressed bool
}

// Decode translates ev against the current layout
// Reports false when the event carries no command
func (d *InputDecoder) Decode(ev tcell.Event, layout Layout) (core.Command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := MapKey(ev.Key(), ev.Rune(), ev.Modifiers())
		return cmd, cmd.Action != core.ActionNone

	case *tcell.EventMouse:
		x, y := ev.Position()
		return d.decodeMouse(ev.Buttons(), x, y, layout)

	case *tcell.EventResize:
		return core.Command{Action: core.ActionRedraw}, true
	}
	return core.Command{}, false
}

func (d *InputDecoder) decodeMouse(buttons tcell.ButtonMask, x, y int, layout Layout) (core.Command, bool) {
	if buttons&tcell.Button1 == 0 {
		d.pressed = false
		return core.Command{}, false
	}
	if d.pressed {
		return core.Command{}, false
	}
	d.pressed = true

	target, ok := layout.HitTest(x, y)
	if !ok {
		return core.Command{}, false
	}
	return core.Command{Action: core.ActionSelect, Target: target}, true
}
