package animator

import "time"

// Clock provides the animation's notion of now. Tests substitute a clock
// they can advance by hand.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
