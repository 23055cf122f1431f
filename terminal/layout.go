package terminal

import (
	"github.com/lixenwraith/vi-recall/constants"
	"github.com/lixenwraith/vi-recall/core"
)

// Rect is a screen area in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the middle cell of r
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Layout splits the screen into HUD, a 2x2 board and footer
type Layout struct {
	Width, Height int

	HUD       Rect
	Board     Rect
	Footer    Rect
	Quadrants [core.TargetCount]Rect
}

// NewLayout computes the layout for a screen of width x height cells
func NewLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}

	l.HUD = Rect{X: 0, Y: 0, W: width, H: constants.HUDHeight}
	boardH := height - constants.HUDHeight - constants.FooterHeight
	if boardH < 0 {
		boardH = 0
	}
	l.Board = Rect{X: 0, Y: constants.HUDHeight, W: width, H: boardH}
	l.Footer = Rect{X: 0, Y: constants.HUDHeight + boardH, W: width, H: constants.FooterHeight}

	gap := constants.QuadrantGap
	leftW := (width - gap) / 2
	rightW := width - gap - leftW
	topH := (boardH - gap) / 2
	bottomH := boardH - gap - topH
	if leftW < 0 || topH < 0 {
		return l
	}

	top := l.Board.Y
	bottom := top + topH + gap
	right := leftW + gap
	l.Quadrants[core.TargetTopLeft] = Rect{X: 0, Y: top, W: leftW, H: topH}
	l.Quadrants[core.TargetTopRight] = Rect{X: right, Y: top, W: rightW, H: topH}
	l.Quadrants[core.TargetBottomLeft] = Rect{X: 0, Y: bottom, W: leftW, H: bottomH}
	l.Quadrants[core.TargetBottomRight] = Rect{X: right, Y: bottom, W: rightW, H: bottomH}
	return l
}

// TooSmall reports whether the board cannot be drawn legibly
func (l Layout) TooSmall() bool {
	return l.Board.W < constants.MinBoardWidth || l.Board.H < constants.MinBoardHeight
}

// HitTest returns the quadrant under cell (x, y)
// Gaps, HUD and footer hit nothing
func (l Layout) HitTest(x, y int) (core.Target, bool) {
	if l.TooSmall() {
		return 0, false
	}
	for _, target := range core.AllTargets {
		if l.Quadrants[target].Contains(x, y) {
			return target, true
		}
	}
	return 0, false
}
