package util

import (
	"testing"
	"time"
)

func TestTimerRecordsSections(t *testing.T) {
	timer := NewTimer()
	clock := time.Unix(0, 0)
	timer.now = func() time.Time { return clock }

	for _, ms := range []int{2, 4} {
		stop := timer.Start("update")
		clock = clock.Add(time.Duration(ms) * time.Millisecond)
		if got := stop(); got != float64(ms) {
			t.Errorf("stop reported %fms, want %d", got, ms)
		}
	}
	stopDraw := timer.Start("draw")
	clock = clock.Add(time.Millisecond)
	stopDraw()

	update := timer.GetState("update")
	if update.Last() != 4 || update.Average() != 3 {
		t.Errorf("update: last %f avg %f, want 4 and 3", update.Last(), update.Average())
	}
	if update.Min() != 2 || update.Max() != 4 {
		t.Errorf("update: min %f max %f, want 2 and 4", update.Min(), update.Max())
	}
	lines := timer.Lines()
	if len(lines) != 2 || lines[0] != "update 4.00ms (avg 3.00, max 4.00)" || lines[1] != "draw 1.00ms (avg 1.00, max 1.00)" {
		t.Errorf("unexpected lines %q", lines)
	}

	timer.Reset()
	if state := timer.GetState("update"); state.Average() != 0 || state.Min() != 0 || state.Max() != 0 {
		t.Errorf("reset did not clear the statistics")
	}
	stop := timer.Start("update")
	clock = clock.Add(5 * time.Millisecond)
	stop()
	if state := timer.GetState("update"); state.Min() != 5 || state.Max() != 5 {
		t.Errorf("first measurement after reset: min %f max %f, want 5", state.Min(), state.Max())
	}
}
