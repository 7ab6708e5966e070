package domain

import "time"

// CurrentTimeProvider provides the current time, abstracted for testability.
type CurrentTimeProvider interface {
	Now() time.Time
}
