// Package clock abstracts time so solve timings are deterministic in tests.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed on c since start.
func Since(c Clock, start time.Time) time.Duration {
	return c.Now().Sub(start)
}

// StepClock is a fake Clock that moves forward by a fixed step on every call
// to Now, so a measured interval equals the step times the number of reads.
type StepClock struct {
	current time.Time
	step    time.Duration
}

// NewStepClock creates a StepClock starting at start.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{current: start, step: step}
}

// Now returns the current fake time and then advances it by the step.
func (c *StepClock) Now() time.Time {
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}
