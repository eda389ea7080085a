package entitlement

import (
	"errors"
	"fmt"
)

// ErrDailyLimitReached is matched by every *LimitError via errors.Is.
var ErrDailyLimitReached = errors.New("daily rephrase limit reached")

// LimitError reports a free-tier request that would exceed the daily limit.
type LimitError struct {
	Limit     int
	Used      int
	Requested int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("daily rephrase limit reached: used %d of %d, requested %d", e.Used, e.Limit, e.Requested)
}

// Is makes errors.Is(err, ErrDailyLimitReached) true for any LimitError.
func (e *LimitError) Is(target error) bool {
	return target == ErrDailyLimitReached
}
