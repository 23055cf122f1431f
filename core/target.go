package core

// Target identifies one screen quadrant the player can select
type Target uint8

const (
	TargetTopLeft Target = iota
	TargetTopRight
	TargetBottomLeft
	TargetBottomRight
	TargetCount
)

// AllTargets is the full target enumeration, in declaration order
// Random picks index into this slice, so every declared target must appear exactly once
var AllTargets = [TargetCount]Target{
	TargetTopLeft,
	TargetTopRight,
	TargetBottomLeft,
	TargetBottomRight,
}

var targetNames = [TargetCount]string{
	TargetTopLeft:     "top-left",
	TargetTopRight:    "top-right",
	TargetBottomLeft:  "bottom-left",
	TargetBottomRight: "bottom-right",
}

// String returns the stable identifier of the target
func (t Target) String() string {
	if t >= TargetCount {
		return "unknown"
	}
	return targetNames[t]
}

// Valid reports whether t is a declared target
func (t Target) Valid() bool {
	return t < TargetCount
}
