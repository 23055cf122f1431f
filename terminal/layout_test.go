package terminal

import (
	"testing"

	"github.com/lixenwraith/vi-recall/core"
)

func TestNewLayout(t *testing.T) {
	l := NewLayout(80, 24)

	want := [core.TargetCount]Rect{
		core.TargetTopLeft:     {X: 0, Y: 2, W: 39, H: 9},
		core.TargetTopRight:    {X: 40, Y: 2, W: 40, H: 9},
		core.TargetBottomLeft:  {X: 0, Y: 12, W: 39, H: 10},
		core.TargetBottomRight: {X: 40, Y: 12, W: 40, H: 10},
	}
	for _, target := range core.AllTargets {
		if l.Quadrants[target] != want[target] {
			t.Errorf("%v: expected %+v, got %+v", target, want[target], l.Quadrants[target])
		}
	}

	if l.Footer.Y != 22 || l.Footer.H != 2 {
		t.Errorf("Unexpected footer %+v", l.Footer)
	}
	if l.TooSmall() {
		t.Error("80x24 must be usable")
	}
}

func TestLayoutHitTest(t *testing.T) {
	l := NewLayout(80, 24)

	tests := []struct {
		name   string
		x, y   int
		target core.Target
		hit    bool
	}{
		{"top-left corner", 0, 2, core.TargetTopLeft, true},
		{"vertical gap", 39, 5, 0, false},
		{"top-right", 40, 2, core.TargetTopRight, true},
		{"horizontal gap", 10, 11, 0, false},
		{"bottom-left", 5, 12, core.TargetBottomLeft, true},
		{"bottom-right corner", 79, 21, core.TargetBottomRight, true},
		{"hud", 10, 0, 0, false},
		{"footer", 10, 23, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, hit := l.HitTest(tt.x, tt.y)
			if hit != tt.hit {
				t.Fatalf("Expected hit %v, got %v", tt.hit, hit)
			}
			if hit && target != tt.target {
				t.Errorf("Expected %v, got %v", tt.target, target)
			}
		})
	}
}

func TestLayoutTooSmall(t *testing.T) {
	l := NewLayout(10, 5)

	if !l.TooSmall() {
		t.Error("Expected 10x5 to be too small")
	}
	if _, hit := l.HitTest(1, 3); hit {
		t.Error("Too small layout must not hit")
	}
}
