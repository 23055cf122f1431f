package gameplay

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-recall/accessibility"
	"github.com/lixenwraith/vi-recall/clock"
	"github.com/lixenwraith/vi-recall/core"
	"github.com/lixenwraith/vi-recall/event"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type fakePresenter struct {
	mu          sync.Mutex
	highlighted []core.Target
	failAt      int // 1-based call number that fails, 0 = never
	err         error
	calls       int
	block       chan struct{} // when set, each call waits for a receive
	entered     chan struct{} // when set, signalled on each call
}

func (p *fakePresenter) Highlight(target core.Target) error {
	p.mu.Lock()
	p.calls++
	call := p.calls
	p.highlighted = append(p.highlighted, target)
	entered, block := p.entered, p.block
	p.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		<-block
	}
	if p.failAt != 0 && call == p.failAt {
		return p.err
	}
	return nil
}

func (p *fakePresenter) Highlighted() []core.Target {
	p.mu.Lock()
	defer p.mu.Unlock()
	return cloneTargets(p.highlighted)
}

func (p *fakePresenter) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.highlighted = nil
}

type fakeDisplay struct {
	mu        sync.Mutex
	countdown []string
	cleared   int
}

func (d *fakeDisplay) ShowCountdown(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.countdown = append(d.countdown, text)
}

func (d *fakeDisplay) ClearSubtitle() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cleared++
}

type fakeFeedback struct {
	mu      sync.Mutex
	results []bool
}

func (f *fakeFeedback) ShowTapFeedback(correct bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, correct)
}

type fakeAudio struct {
	mu   sync.Mutex
	cues []core.Cue
}

func (a *fakeAudio) Play(cue core.Cue) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cues = append(a.cues, cue)
}

func (a *fakeAudio) Cues() []core.Cue {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]core.Cue, len(a.cues))
	copy(out, a.cues)
	return out
}

func (a *fakeAudio) Count(cue core.Cue) int {
	n := 0
	for _, c := range a.Cues() {
		if c == cue {
			n++
		}
	}
	return n
}

type fakeScore struct {
	mu         sync.Mutex
	calls      []string
	points     int
	scoreCalls [][2]int
}

func (f *fakeScore) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeScore) StartTimer()            { f.record("start") }
func (f *fakeScore) PauseTimer()            { f.record("pause") }
func (f *fakeScore) ResumeTimer()           { f.record("resume") }
func (f *fakeScore) StopTimer()             { f.record("stop") }
func (f *fakeScore) Elapsed() time.Duration { return 3 * time.Second }
func (f *fakeScore) ThreeStarScore(level int) int {
	return level * 10
}

func (f *fakeScore) Score(level, lostLives int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scoreCalls = append(f.scoreCalls, [2]int{level, lostLives})
	return f.points
}

func (f *fakeScore) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeScore) Count(name string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == name {
			n++
		}
	}
	return n
}

type fakeLabels struct{}

func (fakeLabels) Label(t core.Target) string { return "label:" + t.String() }

// harness wires a session to recording fakes and an instant mock clock
type harness struct {
	session   *Session
	presenter *fakePresenter
	display   *fakeDisplay
	feedback  *fakeFeedback
	audio     *fakeAudio
	score     *fakeScore
	store     *accessibility.Store
	clock     *clock.Mock
	router    *event.Router
	events    *eventLog
}

type eventLog struct {
	mu     sync.Mutex
	events []event.GameEvent
}

func (l *eventLog) add(ev event.GameEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) Types() []event.EventType {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]event.EventType, len(l.events))
	for i, ev := range l.events {
		out[i] = ev.Type
	}
	return out
}

func (l *eventLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = nil
}

func newHarness(settings accessibility.Settings, opts ...Option) *harness {
	h := &harness{
		presenter: &fakePresenter{},
		display:   &fakeDisplay{},
		feedback:  &fakeFeedback{},
		audio:     &fakeAudio{},
		score:     &fakeScore{},
		store:     accessibility.NewStore(settings),
		clock:     clock.NewMock(testEpoch),
		router:    event.NewRouter(),
		events:    &eventLog{},
	}
	h.router.Subscribe(h.events.add)

	base := []Option{
		WithSleeper(h.clock),
		WithTimeProvider(h.clock),
		WithRouter(h.router),
		WithGenerator(NewGenerator(42)),
	}
	h.session = NewSession(Collaborators{
		Presenter: h.presenter,
		Display:   h.display,
		Feedback:  h.feedback,
		Labels:    fakeLabels{},
		Audio:     h.audio,
		Score:     h.score,
		Settings:  h.store,
	}, append(base, opts...)...)
	return h
}

// quickSettings skips the countdown so tests only see the settle delay and tail
func quickSettings() accessibility.Settings {
	return accessibility.Settings{MaxLives: 5, TipAllowance: 3, CountdownSteps: 0}
}

// wrongTarget returns a target different from want
func wrongTarget(want core.Target) core.Target {
	return core.AllTargets[(int(want)+1)%len(core.AllTargets)]
}

// expected returns the next expected target of the session
func expected(s *Session) core.Target {
	seq := s.RandomSequence()
	return seq[s.Snapshot().RefIndex]
}
