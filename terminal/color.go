package terminal

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-recall/core"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ParseColorMode resolves the -color flag value, detecting on "auto" or unknown input
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// Resting quadrants are the lit color scaled down and blended into the background
const (
	DimFactor = 0.55
	DimAlpha  = 0.85
)

// Palette holds every color the board draws with
type Palette struct {
	Dim [core.TargetCount]tcell.Color // Quadrant at rest
	Lit [core.TargetCount]tcell.Color // Quadrant while highlighted

	Background tcell.Color
	Text       tcell.Color
	LabelText  tcell.Color
	HUD        tcell.Color
	Correct    tcell.Color
	Wrong      tcell.Color
	Countdown  tcell.Color
}

// NewPalette returns the palette for mode
// Quadrants follow the classic board: green, red, yellow, blue
func NewPalette(mode ColorMode) Palette {
	if mode == ColorModeTrueColor {
		bg := core.RGB{R: 26, G: 27, B: 38} // Tokyo Night background
		p := Palette{
			Background: rgb(bg),
			Text:       rgb(core.RGBWhite),
			LabelText:  rgb(core.RGBBlack),
			HUD:        tcell.NewRGBColor(180, 180, 180),
			Correct:    tcell.NewRGBColor(144, 238, 144),
			Wrong:      tcell.NewRGBColor(200, 50, 50),
			Countdown:  tcell.NewRGBColor(255, 165, 0),
		}
		for _, target := range core.AllTargets {
			lit := core.QuadrantColors[target]
			p.Lit[target] = rgb(lit)
			p.Dim[target] = rgb(bg.Blend(lit.Scale(DimFactor), DimAlpha))
		}
		return p
	}

	return Palette{
		Dim: [core.TargetCount]tcell.Color{
			core.TargetTopLeft:     tcell.ColorGreen,
			core.TargetTopRight:    tcell.ColorMaroon,
			core.TargetBottomLeft:  tcell.ColorOlive,
			core.TargetBottomRight: tcell.ColorNavy,
		},
		Lit: [core.TargetCount]tcell.Color{
			core.TargetTopLeft:     tcell.ColorLime,
			core.TargetTopRight:    tcell.ColorRed,
			core.TargetBottomLeft:  tcell.ColorYellow,
			core.TargetBottomRight: tcell.ColorBlue,
		},
		Background: tcell.ColorBlack,
		Text:       tcell.ColorWhite,
		LabelText:  tcell.ColorBlack,
		HUD:        tcell.ColorSilver,
		Correct:    tcell.ColorGreen,
		Wrong:      tcell.ColorRed,
		Countdown:  tcell.ColorOrange,
	}
}

func rgb(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
