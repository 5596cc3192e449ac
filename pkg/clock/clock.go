package clock

import "time"

type Clock interface {
	Now() time.Time
}

// Local reports wall-clock time in a fixed business time zone.
type Local struct {
	loc *time.Location
}

func New(loc *time.Location) *Local {
	if loc == nil {
		loc = time.Local
	}
	return &Local{loc: loc}
}

func (c *Local) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *Local) Location() *time.Location {
	return c.loc
}

// Func adapts a plain function, mostly for tests.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}
