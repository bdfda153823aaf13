package hal

import "time"

type hostClock struct {
	now  func() time.Time
	last time.Time
}

func newHostClock() *hostClock {
	return &hostClock{now: time.Now}
}

// Delta is the unclamped real time since the previous call; a stall shows up
// as one large step.
func (c *hostClock) Delta() float32 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	return float32(d.Seconds())
}
