package terminal

import "github.com/lixenwraith/vi-recall/core"

// Accessible names of the quadrants, announced with tips
var quadrantLabels = [core.TargetCount]string{
	core.TargetTopLeft:     "Grün",
	core.TargetTopRight:    "Rot",
	core.TargetBottomLeft:  "Gelb",
	core.TargetBottomRight: "Blau",
}

// Select keys shown inside each quadrant
var quadrantKeys = [core.TargetCount]string{
	core.TargetTopLeft:     "q",
	core.TargetTopRight:    "w",
	core.TargetBottomLeft:  "a",
	core.TargetBottomRight: "s",
}

// Labels provides the accessible quadrant names without a screen
type Labels struct{}

// Label returns the name of the quadrant rendering target
func (Labels) Label(target core.Target) string {
	if !target.Valid() {
		return ""
	}
	return quadrantLabels[target]
}
