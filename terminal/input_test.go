package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-recall/core"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want core.Command
	}{
		{"q selects top-left", tcell.KeyRune, 'q', tcell.ModNone, core.Command{Action: core.ActionSelect, Target: core.TargetTopLeft}},
		{"W selects top-right", tcell.KeyRune, 'W', tcell.ModShift, core.Command{Action: core.ActionSelect, Target: core.TargetTopRight}},
		{"1 selects bottom-left", tcell.KeyRune, '1', tcell.ModNone, core.Command{Action: core.ActionSelect, Target: core.TargetBottomLeft}},
		{"s selects bottom-right", tcell.KeyRune, 's', tcell.ModNone, core.Command{Action: core.ActionSelect, Target: core.TargetBottomRight}},
		{"replay", tcell.KeyRune, 'r', tcell.ModNone, core.Command{Action: core.ActionReplay}},
		{"tip", tcell.KeyRune, 't', tcell.ModNone, core.Command{Action: core.ActionTip}},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, core.Command{Action: core.ActionNext}},
		{"space", tcell.KeyRune, ' ', tcell.ModNone, core.Command{Action: core.ActionNext}},
		{"new game", tcell.KeyRune, 'n', tcell.ModNone, core.Command{Action: core.ActionNewGame}},
		{"extreme", tcell.KeyRune, 'x', tcell.ModNone, core.Command{Action: core.ActionToggleExtreme}},
		{"lives", tcell.KeyRune, 'l', tcell.ModNone, core.Command{Action: core.ActionCycleLives}},
		{"tips", tcell.KeyRune, 'h', tcell.ModNone, core.Command{Action: core.ActionCycleTips}},
		{"countdown", tcell.KeyRune, 'c', tcell.ModNone, core.Command{Action: core.ActionCycleCountdown}},
		{"mute", tcell.KeyRune, 'm', tcell.ModNone, core.Command{Action: core.ActionToggleMute}},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, core.Command{Action: core.ActionQuit}},
		{"ctrl-c", tcell.KeyCtrlC, 0, tcell.ModCtrl, core.Command{Action: core.ActionQuit}},
		{"ctrl-l", tcell.KeyCtrlL, 0, tcell.ModCtrl, core.Command{Action: core.ActionRedraw}},
		{"alt-q ignored", tcell.KeyRune, 'q', tcell.ModAlt, core.Command{}},
		{"unbound rune", tcell.KeyRune, 'z', tcell.ModNone, core.Command{}},
		{"unbound key", tcell.KeyF5, 0, tcell.ModNone, core.Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapKey(tt.key, tt.r, tt.mod); got != tt.want {
				t.Errorf("Expected %v/%v, got %v/%v", tt.want.Action, tt.want.Target, got.Action, got.Target)
			}
		})
	}
}

func TestDecodeMouseSelectsOnPress(t *testing.T) {
	var d InputDecoder
	l := NewLayout(80, 24)

	cmd, ok := d.decodeMouse(tcell.Button1, 45, 15, l)
	if !ok || cmd.Action != core.ActionSelect || cmd.Target != core.TargetBottomRight {
		t.Fatalf("Expected bottom-right selection, got %v %v", cmd, ok)
	}

	// Held button does not repeat
	if _, ok := d.decodeMouse(tcell.Button1, 45, 15, l); ok {
		t.Error("Expected no repeat while held")
	}

	// Release re-arms
	if _, ok := d.decodeMouse(tcell.ButtonNone, 45, 15, l); ok {
		t.Error("Release must not select")
	}
	if cmd, ok := d.decodeMouse(tcell.Button1, 2, 3, l); !ok || cmd.Target != core.TargetTopLeft {
		t.Errorf("Expected top-left after release, got %v %v", cmd, ok)
	}
}

func TestDecodeMouseOutsideQuadrants(t *testing.T) {
	var d InputDecoder
	l := NewLayout(80, 24)

	if _, ok := d.decodeMouse(tcell.Button1, 39, 5, l); ok {
		t.Error("Click in gap must not select")
	}
	if _, ok := d.decodeMouse(tcell.Button2, 2, 3, l); ok {
		t.Error("Secondary button must not select")
	}
}

func TestDecodeResize(t *testing.T) {
	var d InputDecoder

	cmd, ok := d.Decode(tcell.NewEventResize(100, 30), NewLayout(80, 24))
	if !ok || cmd.Action != core.ActionRedraw {
		t.Errorf("Expected redraw, got %v %v", cmd, ok)
	}
}
