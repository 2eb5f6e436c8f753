package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
)

// exactMatcher compares minute-truncated instants for equality. A tick that is missed
// (downtime, slow sink) means the reminder for that threshold is never sent.
type exactMatcher struct {
	reference   *time.Location
	morningHour int
}

func NewTimeMatcher(reference *time.Location, morningHour int) contract.TimeMatcher {
	return &exactMatcher{
		reference:   reference,
		morningHour: morningHour,
	}
}

func (m *exactMatcher) OneHourBefore(now, start time.Time) bool {
	return now.Truncate(time.Minute).Add(time.Hour).Equal(start)
}

func (m *exactMatcher) SameDayMorning(now, start time.Time) bool {
	now = now.In(m.reference).Truncate(time.Minute)

	morning := time.Date(now.Year(), now.Month(), now.Day(), m.morningHour, 0, 0, 0, m.reference)
	if !now.Equal(morning) {
		return false
	}

	start = start.In(m.reference)
	return start.Year() == now.Year() && start.YearDay() == now.YearDay()
}

// ParseSessionTime reads a stored YYYY-MM-DD hh:mmAM/PM value as wall clock time in source.
func ParseSessionTime(value string, source *time.Location) (time.Time, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))

	t, err := time.ParseInLocation(domain.SessionTimeInputLayout, normalized, source)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, expected YYYY-MM-DD hh:mmAM/PM (ex: 2024-05-01 03:00PM)", domain.ErrMalformedTime, value)
	}

	return t, nil
}

// NormalizeSessionTime validates value and returns it in the layout used for storage.
func NormalizeSessionTime(value string, source *time.Location) (string, error) {
	t, err := ParseSessionTime(value, source)
	if err != nil {
		return "", err
	}
	return t.Format(domain.SessionTimeLayout), nil
}
