package ports

import "time"

// Clock abstracts wall-clock reads so that time-driven logic (order
// timestamps, the delivery progression thresholds) can run against a
// virtual clock in tests.
type Clock interface {
	Now() time.Time
}
