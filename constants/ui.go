package constants

import "time"

// Board Layout
const (
	// HUDHeight is the number of rows reserved above the board
	HUDHeight = 2

	// FooterHeight is the number of rows reserved below the board (subtitle + key help)
	FooterHeight = 2

	// QuadrantGap is the blank spacing between neighbouring quadrants
	QuadrantGap = 1

	// MinBoardWidth and MinBoardHeight are the smallest usable board dimensions
	MinBoardWidth  = 20
	MinBoardHeight = 8
)

// Key help shown in the footer
const KeyHelp = "q/w/a/s select  r replay  t tip  enter next  n new  x extreme  l/h/c settings  m mute  esc quit"

// FrameInterval paces board redraws between input events
const FrameInterval = 50 * time.Millisecond
