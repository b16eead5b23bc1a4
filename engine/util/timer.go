package util

import (
	"fmt"
	"time"
)

// TimerState accumulates the durations of one named section, in milliseconds.
type TimerState struct {
	name         string
	lastDuration float64

	totalDuration  float64
	executionCount int64

	minDuration float64
	maxDuration float64
}

func newTimerState(name string) *TimerState {
	return &TimerState{name: name}
}

func (t *TimerState) Last() float64 {
	return t.lastDuration
}

func (t *TimerState) Average() float64 {
	if t.executionCount == 0 {
		return 0
	}
	return t.totalDuration / float64(t.executionCount)
}

// Min and Max are zero until the first measurement.
func (t *TimerState) Min() float64 {
	return t.minDuration
}

func (t *TimerState) Max() float64 {
	return t.maxDuration
}

func (t *TimerState) record(durationInMS float64) {
	t.lastDuration = durationInMS
	t.totalDuration += durationInMS
	t.executionCount++
	if t.executionCount == 1 || durationInMS < t.minDuration {
		t.minDuration = durationInMS
	}
	if durationInMS > t.maxDuration {
		t.maxDuration = durationInMS
	}
}

func (t *TimerState) String() string {
	return fmt.Sprintf("%s %.2fms (avg %.2f, max %.2f)", t.name, t.lastDuration, t.Average(), t.maxDuration)
}

// Timer measures named frame sections, e.g. "update" and "draw".
type Timer struct {
	states     map[string]*TimerState
	timerNames []string
	now        func() time.Time
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*TimerState),
		now:    time.Now,
	}
}

func (t *Timer) GetState(name string) *TimerState {
	return t.states[name]
}

func (t *Timer) Reset() {
	for name := range t.states {
		t.states[name] = newTimerState(name)
	}
}

// Lines returns one summary per section in the order they were first started.
func (t *Timer) Lines() []string {
	lines := make([]string, 0, len(t.timerNames))
	for _, name := range t.timerNames {
		lines = append(lines, t.states[name].String())
	}
	return lines
}

// Start begins measuring name. The returned func stops the measurement and reports it.
func (t *Timer) Start(name string) func() float64 {
	state, ok := t.states[name]
	if !ok {
		t.timerNames = append(t.timerNames, name)
		state = newTimerState(name)
		t.states[name] = state
	}
	start := t.now()
	return func() float64 {
		durationInMS := float64(t.now().Sub(start).Microseconds()) / 1000.0
		state.record(durationInMS)
		return durationInMS
	}
}
