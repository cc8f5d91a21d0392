package quiz

import "time"

// idleTickMsg drives the once-a-second idle check. gen ties the tick to the
// page that armed it; ticks from an earlier page are dropped, which is how
// leaving a question cancels its timer. at is the screen clock's reading
// when the tick fired, so one value feeds both the check and its log entry.
type idleTickMsg struct {
	gen int
	at  time.Time
}
