package entity

import (
	"fmt"
	"time"
)

// Threshold identifies which reminder fired for an event.
type Threshold string

const (
	ThresholdOneHour Threshold = "one_hour_before"
	ThresholdGameDay Threshold = "same_day_morning"
)

// Reminder is one notification request emitted by the scheduler.
type Reminder struct {
	Event     Schedule
	Threshold Threshold
	Role      Role
	Channel   Channel
	StartsAt  time.Time
}

func (r *Reminder) Title() string {
	if r.Event.Kind == KindOneshot {
		return "Oneshot Reminder"
	}
	return "Session Reminder"
}

// Body renders the reminder text; when is the platform specific rendering of StartsAt.
func (r *Reminder) Body(when string) string {
	if r.Threshold == ThresholdGameDay {
		return fmt.Sprintf("Today is game day! The session is at %s", when)
	}
	return fmt.Sprintf("The session starts in 1 hour, at %s", when)
}
