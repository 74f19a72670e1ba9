package keyboard

import (
	"sort"
	"sync"
	"time"

	"pocketchat/internal/sample"
)

// fakeClock is a manually advanced clock. Timer callbacks scheduled inside
// other callbacks (e.g. the did-timer scheduled by a recompute) run in the
// same Advance when they fall due within it.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers map[int]*fakeEntry
	nextID int
}

type fakeEntry struct {
	at time.Time
	fn func()
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:    time.Unix(1000, 0),
		timers: make(map[int]*fakeEntry),
	}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.timers[id] = &fakeEntry{at: c.now.Add(d), fn: fn}
	return &fakeTimer{clock: c, id: id}
}

type fakeTimer struct {
	clock *fakeClock
	id    int
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	_, pending := t.clock.timers[t.id]
	delete(t.clock.timers, t.id)
	return pending
}

// Advance moves time forward, firing due timers in chronological order.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var dueID = -1
		var dueAt time.Time
		ids := make([]int, 0, len(c.timers))
		for id := range c.timers {
			ids = append(ids, id)
		}
		sort.Ints(ids) // deterministic tie-break by schedule order
		for _, id := range ids {
			e := c.timers[id]
			if !e.at.After(target) && (dueID == -1 || e.at.Before(dueAt)) {
				dueID = id
				dueAt = e.at
			}
		}
		if dueID == -1 {
			c.now = target
			c.mu.Unlock()
			return
		}
		entry := c.timers[dueID]
		delete(c.timers, dueID)
		c.now = entry.at
		c.mu.Unlock()

		entry.fn()
	}
}

func (c *fakeClock) pendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// fakeSampler returns mutable canned signals and counts samples so tests can
// assert debounce collapse.
type fakeSampler struct {
	mu      sync.Mutex
	signal  sample.RawSignal
	insets  sample.SafeAreaInsets
	samples int
}

func newFakeSampler(windowHeight float64) *fakeSampler {
	return &fakeSampler{
		signal: sample.RawSignal{
			VisualHeight: windowHeight,
			VisualWidth:  375,
			WindowHeight: windowHeight,
		},
	}
}

func (s *fakeSampler) Sample() sample.RawSignal {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples++
	return s.signal
}

func (s *fakeSampler) SafeArea() sample.SafeAreaInsets {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insets
}

func (s *fakeSampler) set(fn func(*sample.RawSignal)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.signal)
}

func (s *fakeSampler) setInsets(in sample.SafeAreaInsets) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insets = in
}

func (s *fakeSampler) sampleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.samples
}

// fakeEnv records layout publishes and blur requests.
type fakeEnv struct {
	mu          sync.Mutex
	listener    func(sample.Trigger)
	detached    bool
	blurs       int
	blurErr     error
	layouts     []LayoutVars
	activateErr error
	activations int
}

func (e *fakeEnv) Attach(fn func(sample.Trigger)) func() {
	e.mu.Lock()
	e.listener = fn
	e.mu.Unlock()
	return func() {
		e.mu.Lock()
		e.detached = true
		e.listener = nil
		e.mu.Unlock()
	}
}

func (e *fakeEnv) Blur() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.blurs++
	return e.blurErr
}

func (e *fakeEnv) PublishLayout(vars LayoutVars) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.layouts = append(e.layouts, vars)
}

func (e *fakeEnv) ActivateKeyboardAPI() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.activations++
	return e.activateErr
}

func (e *fakeEnv) fire(trig sample.Trigger) {
	e.mu.Lock()
	fn := e.listener
	e.mu.Unlock()
	if fn != nil {
		fn(trig)
	}
}

func (e *fakeEnv) layoutCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.layouts)
}

func (e *fakeEnv) lastLayout() (LayoutVars, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.layouts) == 0 {
		return LayoutVars{}, false
	}
	return e.layouts[len(e.layouts)-1], true
}

// eventRecorder collects dispatched events in order.
type eventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *eventRecorder) listen(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *eventRecorder) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

func (r *eventRecorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
