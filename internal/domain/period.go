package domain

import (
	"time"

	"github.com/google/uuid"
)

// DisabledPeriod is an administrator-declared closed date interval
// [StartDate, EndDate] during which no bookings are accepted clinic-wide.
// Periods may overlap; overlap is never deduplicated.
type DisabledPeriod struct {
	ID        int64
	PublicID  uuid.UUID // стабильный внешний идентификатор для удаления
	ClinicID  int64
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	CreatedAt time.Time
}

// Contains reports whether date falls inside the closed interval.
// Only calendar dates are compared, time-of-day is ignored.
func (p *DisabledPeriod) Contains(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(p.StartDate)) && !d.After(truncateToDay(p.EndDate))
}

// FindBlockingPeriod returns the first period in storage order that
// contains date. First match wins so the surfaced reason is deterministic
// for the same stored data.
func FindBlockingPeriod(periods []*DisabledPeriod, date time.Time) *DisabledPeriod {
	for _, p := range periods {
		if p.Contains(date) {
			return p
		}
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
