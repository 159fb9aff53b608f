package commands

import "time"

// SetClock replaces the clock used to stamp run summaries.
func (it *RunCommand) SetClock(now func() time.Time) {
	it.now = now
}
