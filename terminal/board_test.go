package terminal

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-recall/clock"
	"github.com/lixenwraith/vi-recall/constants"
	"github.com/lixenwraith/vi-recall/core"
	"github.com/lixenwraith/vi-recall/gameplay"
)

type recordedTone struct {
	target   core.Target
	duration time.Duration
}

type fakeTones struct {
	played []recordedTone
}

func (f *fakeTones) PlayTone(target core.Target, d time.Duration) {
	f.played = append(f.played, recordedTone{target, d})
}

// probeSleeper runs fn on every sleep so tests can observe the board mid-highlight
type probeSleeper struct {
	fn     func(d time.Duration)
	sleeps []time.Duration
}

func (p *probeSleeper) Sleep(d time.Duration) {
	p.sleeps = append(p.sleeps, d)
	if p.fn != nil {
		p.fn(d)
	}
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestBoardHighlight(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	palette := NewPalette(ColorModeTrueColor)
	tones := &fakeTones{}
	probe := &probeSleeper{}
	board := NewBoard(screen, palette, WithTones(tones), WithBoardSleeper(probe))
	board.Draw()

	cx, cy := board.Layout().Quadrants[core.TargetTopRight].Center()
	var litDuringHighlight, litDuringGap bool
	var bgDuringHighlight tcell.Color
	probe.fn = func(d time.Duration) {
		switch d {
		case constants.HighlightDuration:
			litDuringHighlight = board.IsLit(core.TargetTopRight)
			bgDuringHighlight = background(screen, cx, cy)
		case constants.HighlightGap:
			litDuringGap = board.IsLit(core.TargetTopRight)
		}
	}

	if err := board.Highlight(core.TargetTopRight); err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}

	if !litDuringHighlight {
		t.Error("Expected quadrant lit while highlighted")
	}
	if bgDuringHighlight != palette.Lit[core.TargetTopRight] {
		t.Errorf("Expected lit color on screen, got %v", bgDuringHighlight)
	}
	if litDuringGap {
		t.Error("Expected quadrant dark during gap")
	}
	if bg := background(screen, cx, cy); bg != palette.Dim[core.TargetTopRight] {
		t.Errorf("Expected dim color after highlight, got %v", bg)
	}

	if len(probe.sleeps) != 2 || probe.sleeps[0] != constants.HighlightDuration || probe.sleeps[1] != constants.HighlightGap {
		t.Errorf("Unexpected highlight timing %v", probe.sleeps)
	}
	if len(tones.played) != 1 || tones.played[0] != (recordedTone{core.TargetTopRight, constants.HighlightDuration}) {
		t.Errorf("Unexpected tones %v", tones.played)
	}
}

func TestBoardHighlightUnknownTarget(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	board := NewBoard(screen, NewPalette(ColorMode256), WithBoardSleeper(clock.NewMock(time.Now())))

	if err := board.Highlight(core.TargetCount); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("Expected ErrUnknownTarget, got %v", err)
	}
}

func TestBoardCountdown(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	board := NewBoard(screen, NewPalette(ColorModeTrueColor))

	board.ShowCountdown("3")
	cx, cy := board.Layout().Board.Center()
	if r, _, _, _ := screen.GetContent(cx, cy); r != '3' {
		t.Errorf("Expected countdown digit at center, got %q", r)
	}

	board.ShowCountdown("")
	if r, _, _, _ := screen.GetContent(cx, cy); r == '3' {
		t.Error("Expected countdown cleared")
	}
}

func TestBoardSubtitle(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	board := NewBoard(screen, NewPalette(ColorModeTrueColor))

	board.ShowSubtitle("Grün (oben links)")
	if board.Subtitle() != "Grün (oben links)" {
		t.Errorf("Unexpected subtitle %q", board.Subtitle())
	}
	if row := rowText(screen, board.Layout().Footer.Y); !strings.Contains(row, "Grün (oben links)") {
		t.Errorf("Expected subtitle on footer row, got %q", row)
	}

	board.ClearSubtitle()
	if board.Subtitle() != "" {
		t.Error("Expected subtitle cleared")
	}
	if row := rowText(screen, board.Layout().Footer.Y); strings.Contains(row, "Grün") {
		t.Errorf("Expected footer row cleared, got %q", row)
	}
}

func TestBoardTapFeedbackExpires(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	palette := NewPalette(ColorModeTrueColor)
	mock := clock.NewMock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	board := NewBoard(screen, palette, WithBoardTimeProvider(mock))

	board.ShowTapFeedback(false)
	if bg := background(screen, 0, 0); bg != palette.Wrong {
		t.Errorf("Expected wrong flash, got %v", bg)
	}

	mock.Advance(constants.TapFeedbackDuration / 2)
	board.ShowTapFeedback(true)
	if bg := background(screen, 0, 0); bg != palette.Correct {
		t.Errorf("Expected correct flash, got %v", bg)
	}

	mock.Advance(constants.TapFeedbackDuration)
	board.Draw()
	if bg := background(screen, 0, 0); bg != palette.Background {
		t.Errorf("Expected flash expired, got %v", bg)
	}
}

func TestBoardRenderStatus(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	board := NewBoard(screen, NewPalette(ColorModeTrueColor))

	board.Render(Status{
		Snapshot: gameplay.Snapshot{Level: 4, Lives: 3, MaxLives: 5, TotalScore: 250, TipAllowance: 3, RemainingTips: 2},
		Stars:    1,
	})

	if row := rowText(screen, 0); !strings.Contains(row, "level 4  lives 3/5  score 250  tips 2/3") {
		t.Errorf("Unexpected HUD row %q", row)
	}
	_, cy := board.Layout().Quadrants[core.TargetTopLeft].Center()
	if row := rowText(screen, cy); !strings.Contains(row, "Grün [q]") || !strings.Contains(row, "Rot [w]") {
		t.Errorf("Expected quadrant labels, got %q", row)
	}
}

func TestBoardTooSmall(t *testing.T) {
	screen := newTestScreen(t, 30, 5)
	board := NewBoard(screen, NewPalette(ColorMode256))

	board.Draw()
	if row := rowText(screen, 2); !strings.Contains(row, "too small") {
		t.Errorf("Expected size warning, got %q", row)
	}
}

func TestHUDLines(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		first  string
		second string
	}{
		{
			name: "finite",
			status: Status{
				Snapshot:       gameplay.Snapshot{Level: 3, Lives: 2, MaxLives: 5, TotalScore: 420, TipAllowance: 3, RemainingTips: 1, Phase: core.PhaseAwaitingInput},
				RoundScore:     180,
				ThreeStarScore: 240,
				Stars:          2,
			},
			first:  "level 3  lives 2/5  score 420  tips 1/3  ★★☆",
			second: "normal  awaiting-input  round 180/240",
		},
		{
			name: "sentinels",
			status: Status{
				Snapshot: gameplay.Snapshot{Level: 1, Lives: 7, MaxLives: 7, InfiniteLives: true, TipAllowance: 7, IsExtremeMode: true},
				Muted:    true,
				Metrics:  "rounds=1",
			},
			first:  "level 1  lives ∞  score 0  tips ∞  ☆☆☆",
			second: "extreme  idle  round 0/0  muted  rounds=1",
		},
		{
			name: "tips disabled",
			status: Status{
				Snapshot: gameplay.Snapshot{Level: 2, Lives: 1, MaxLives: 1},
				Stars:    5,
			},
			first:  "level 2  lives 1/1  score 0  tips off  ★★★",
			second: "normal  idle  round 0/0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := hudLines(tt.status)
			if lines[0] != tt.first {
				t.Errorf("Expected %q, got %q", tt.first, lines[0])
			}
			if lines[1] != tt.second {
				t.Errorf("Expected %q, got %q", tt.second, lines[1])
			}
		})
	}
}

func TestLabels(t *testing.T) {
	want := map[core.Target]string{
		core.TargetTopLeft:     "Grün",
		core.TargetTopRight:    "Rot",
		core.TargetBottomLeft:  "Gelb",
		core.TargetBottomRight: "Blau",
	}
	for target, label := range want {
		if got := (Labels{}).Label(target); got != label {
			t.Errorf("%v: expected %q, got %q", target, label, got)
		}
	}
	if (Labels{}).Label(core.TargetCount) != "" {
		t.Error("Expected empty label for unknown target")
	}
}
