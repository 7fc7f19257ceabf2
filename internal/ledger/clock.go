package ledger

import "time"

// Clock abstracts the accrual time source. Accrual resolution is whole
// seconds; sub-second precision never reaches the reward formula.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func SystemClock() Clock {
	return systemClock{}
}
