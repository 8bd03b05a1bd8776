package propagate

import "time"

// SetNow replaces the clock used for build info timestamps.
func (t *Task) SetNow(now func() time.Time) {
	t.now = now
}
