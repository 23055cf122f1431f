package terminal

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-recall/accessibility"
	"github.com/lixenwraith/vi-recall/clock"
	"github.com/lixenwraith/vi-recall/constants"
	"github.com/lixenwraith/vi-recall/core"
	"github.com/lixenwraith/vi-recall/gameplay"
	"github.com/mattn/go-runewidth"
)

// ErrUnknownTarget is returned when asked to highlight an undeclared target
var ErrUnknownTarget = errors.New("unknown target")

// ToneSink plays the pitch of a quadrant while it is lit
type ToneSink interface {
	PlayTone(target core.Target, duration time.Duration)
}

// Status is everything the HUD shows besides the board itself
type Status struct {
	Snapshot       gameplay.Snapshot
	RoundScore     int
	ThreeStarScore int
	Stars          int
	Muted          bool
	Metrics        string // Debug counters, empty when disabled
}

type feedbackState uint8

const (
	feedbackNone feedbackState = iota
	feedbackCorrect
	feedbackWrong
)

// Board draws the game onto a tcell screen
// It is the presenter, display, feedback and label provider of a session
type Board struct {
	mu      sync.Mutex
	screen  tcell.Screen
	palette Palette
	layout  Layout

	tones   ToneSink
	sleeper clock.Sleeper
	now     clock.TimeProvider

	lit           [core.TargetCount]bool
	countdown     string
	subtitle      string
	feedback      feedbackState
	feedbackUntil time.Time
	status        Status
}

// BoardOption configures a Board
type BoardOption func(*Board)

// WithTones plays a quadrant's pitch for every highlight
func WithTones(t ToneSink) BoardOption {
	return func(b *Board) { b.tones = t }
}

// WithBoardSleeper replaces the real sleeper used for highlight timing
func WithBoardSleeper(s clock.Sleeper) BoardOption {
	return func(b *Board) { b.sleeper = s }
}

// WithBoardTimeProvider sets the clock that expires tap feedback
func WithBoardTimeProvider(tp clock.TimeProvider) BoardOption {
	return func(b *Board) { b.now = tp }
}

// NewBoard creates a board drawing on screen
func NewBoard(screen tcell.Screen, palette Palette, opts ...BoardOption) *Board {
	b := &Board{
		screen:  screen,
		palette: palette,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.sleeper == nil {
		b.sleeper = clock.NewSystem()
	}
	if b.now == nil {
		b.now = clock.NewSystem()
	}
	return b
}

// Highlight lights target for HighlightDuration, then keeps the board dark for HighlightGap
func (b *Board) Highlight(target core.Target) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTarget, target)
	}

	b.setLit(target, true)
	if b.tones != nil {
		b.tones.PlayTone(target, constants.HighlightDuration)
	}
	b.sleeper.Sleep(constants.HighlightDuration)

	b.setLit(target, false)
	b.sleeper.Sleep(constants.HighlightGap)
	return nil
}

func (b *Board) setLit(target core.Target, on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lit[target] = on
	b.drawLocked()
}

// IsLit reports whether target is currently highlighted
func (b *Board) IsLit(target core.Target) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return target.Valid() && b.lit[target]
}

// ShowCountdown shows text in the board center; empty text clears it
func (b *Board) ShowCountdown(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.countdown = text
	b.drawLocked()
}

// ShowSubtitle shows text in the footer until cleared or replaced
func (b *Board) ShowSubtitle(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subtitle = text
	b.drawLocked()
}

// ClearSubtitle removes the footer text
func (b *Board) ClearSubtitle() {
	b.ShowSubtitle("")
}

// Subtitle returns the footer text
func (b *Board) Subtitle() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.subtitle
}

// ShowTapFeedback flashes the HUD for TapFeedbackDuration
func (b *Board) ShowTapFeedback(correct bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.feedback = feedbackWrong
	if correct {
		b.feedback = feedbackCorrect
	}
	b.feedbackUntil = b.now.Now().Add(constants.TapFeedbackDuration)
	b.drawLocked()
}

// Label returns the accessible name of the quadrant rendering target
func (b *Board) Label(target core.Target) string {
	return Labels{}.Label(target)
}

// Render replaces the HUD status and redraws
func (b *Board) Render(status Status) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = status
	b.drawLocked()
}

// Draw redraws the whole screen, expiring finished tap feedback
func (b *Board) Draw() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drawLocked()
}

// Layout returns the layout of the last draw
func (b *Board) Layout() Layout {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.layout
}

func (b *Board) drawLocked() {
	if b.screen == nil {
		return
	}

	w, h := b.screen.Size()
	b.layout = NewLayout(w, h)

	base := tcell.StyleDefault.Background(b.palette.Background).Foreground(b.palette.Text)
	b.screen.Fill(' ', base)

	if b.feedback != feedbackNone && !b.now.Now().Before(b.feedbackUntil) {
		b.feedback = feedbackNone
	}

	if b.layout.TooSmall() {
		msg := fmt.Sprintf("terminal too small (%dx%d)", w, h)
		b.drawCentered(w/2, h/2, msg, base)
		b.screen.Show()
		return
	}

	b.drawHUD(base)
	b.drawQuadrants()
	b.drawCountdown()
	b.drawFooter(base)
	b.screen.Show()
}

func (b *Board) drawHUD(base tcell.Style) {
	style := base.Foreground(b.palette.HUD)
	switch b.feedback {
	case feedbackCorrect:
		style = style.Background(b.palette.Correct).Foreground(b.palette.LabelText)
	case feedbackWrong:
		style = style.Background(b.palette.Wrong).Foreground(b.palette.Text)
	}

	for y := b.layout.HUD.Y; y < b.layout.HUD.Y+b.layout.HUD.H; y++ {
		b.fillRow(y, b.layout.HUD.X, b.layout.HUD.W, style)
	}

	lines := hudLines(b.status)
	for i, line := range lines {
		if i >= b.layout.HUD.H {
			break
		}
		b.drawText(1, b.layout.HUD.Y+i, line, style)
	}
}

func (b *Board) drawQuadrants() {
	for _, target := range core.AllTargets {
		r := b.layout.Quadrants[target]
		color := b.palette.Dim[target]
		if b.lit[target] {
			color = b.palette.Lit[target]
		}
		style := tcell.StyleDefault.Background(color).Foreground(b.palette.LabelText)
		for y := r.Y; y < r.Y+r.H; y++ {
			b.fillRow(y, r.X, r.W, style)
		}

		cx, cy := r.Center()
		label := fmt.Sprintf("%s [%s]", quadrantLabels[target], quadrantKeys[target])
		if b.lit[target] {
			style = style.Bold(true)
		}
		b.drawCentered(cx, cy, label, style)
	}
}

func (b *Board) drawCountdown() {
	if b.countdown == "" {
		return
	}
	cx, cy := b.layout.Board.Center()
	style := tcell.StyleDefault.Background(b.palette.Background).Foreground(b.palette.Countdown).Bold(true)
	b.drawCentered(cx, cy, " "+b.countdown+" ", style)
}

func (b *Board) drawFooter(base tcell.Style) {
	y := b.layout.Footer.Y
	if b.subtitle != "" {
		b.drawCentered(b.layout.Footer.W/2, y, b.subtitle, base.Bold(true))
	}
	if b.layout.Footer.H > 1 {
		b.drawText(1, y+1, constants.KeyHelp, base.Foreground(b.palette.HUD))
	}
}

func (b *Board) fillRow(y, x, w int, style tcell.Style) {
	for i := x; i < x+w; i++ {
		b.screen.SetContent(i, y, ' ', nil, style)
	}
}

// drawText writes text from (x, y), clipped at the screen edge
func (b *Board) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= b.layout.Width {
			return
		}
		b.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (b *Board) drawCentered(cx, y int, text string, style tcell.Style) {
	x := cx - runewidth.StringWidth(text)/2
	if x < 0 {
		x = 0
	}
	b.drawText(x, y, text, style)
}

// hudLines formats the two HUD rows
func hudLines(s Status) [2]string {
	snap := s.Snapshot

	lives := fmt.Sprintf("%d/%d", snap.Lives, snap.MaxLives)
	if snap.InfiniteLives {
		lives = "∞"
	}

	var tips string
	switch snap.TipAllowance {
	case accessibility.UnlimitedTips:
		tips = "∞"
	case accessibility.TipsDisabled:
		tips = "off"
	default:
		tips = fmt.Sprintf("%d/%d", snap.RemainingTips, snap.TipAllowance)
	}

	mode := "normal"
	if snap.IsExtremeMode {
		mode = "extreme"
	}

	first := fmt.Sprintf("level %d  lives %s  score %d  tips %s  %s",
		snap.Level, lives, snap.TotalScore, tips, starBar(s.Stars))

	var second strings.Builder
	fmt.Fprintf(&second, "%s  %s  round %d/%d", mode, snap.Phase, s.RoundScore, s.ThreeStarScore)
	if s.Muted {
		second.WriteString("  muted")
	}
	if s.Metrics != "" {
		second.WriteString("  ")
		second.WriteString(s.Metrics)
	}

	return [2]string{first, second.String()}
}

func starBar(stars int) string {
	if stars < 0 {
		stars = 0
	}
	if stars > 3 {
		stars = 3
	}
	return strings.Repeat("★", stars) + strings.Repeat("☆", 3-stars)
}
