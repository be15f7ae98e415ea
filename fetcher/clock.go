package fetcher

import "time"

// Clock supplies the current time. It exists so the implicit
// "current year/month" defaulting can be fixed in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
