package tide

import "github.com/jonboulle/clockwork"

var clock clockwork.Clock = clockwork.NewRealClock()

// SetClock swaps the package clock, used by tests to pin the current time.
// Passing nil restores the real clock.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
