package gui

import "time"

// frameClock spaces presented frames at least Interval apart
type frameClock struct {
	Interval time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func newFrameClock(interval time.Duration) *frameClock {
	return &frameClock{
		Interval: interval,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Wait blocks until the next frame is due
func (c *frameClock) Wait() {
	if c.Interval <= 0 {
		return
	}
	if !c.last.IsZero() {
		if d := c.last.Add(c.Interval).Sub(c.now()); d > 0 {
			c.sleep(d)
		}
	}
	c.last = c.now()
}
