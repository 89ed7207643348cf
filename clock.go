package gosu

import "time"

// Clock provides the time source the loop paces itself with.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// pace sleeps out the rest of interval measured from start. It does not make
// up for earlier overruns and never sleeps after one.
func pace(clock Clock, start time.Time, interval time.Duration) {
	elapsed := clock.Now().Sub(start)
	if elapsed > 0 && elapsed < interval {
		clock.Sleep(interval - elapsed)
	}
}
