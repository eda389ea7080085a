package entitlement

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultResetSchedule runs the daily reset at local midnight.
const DefaultResetSchedule = "0 0 * * *"

// StartDailyReset schedules ResetDailyCount on the given cron spec and starts
// the scheduler. Callers stop it with the returned Cron's Stop method.
func StartDailyReset(state *State, schedule string, logger logrus.FieldLogger) (*cron.Cron, error) {
	if schedule == "" {
		schedule = DefaultResetSchedule
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		before := state.Snapshot().DailyCount
		state.ResetDailyCount()
		if logger != nil {
			logger.WithField("previous_count", before).Info("daily rephrase count reset")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid daily reset schedule %q: %w", schedule, err)
	}

	c.Start()
	return c, nil
}
