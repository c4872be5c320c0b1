package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledPeriodContains(t *testing.T) {
	p := &DisabledPeriod{
		StartDate: date(2026, time.December, 24),
		EndDate:   date(2026, time.December, 31),
	}

	assert.True(t, p.Contains(date(2026, time.December, 24)), "start date is inclusive")
	assert.True(t, p.Contains(date(2026, time.December, 31)), "end date is inclusive")
	assert.True(t, p.Contains(date(2026, time.December, 28)))
	assert.False(t, p.Contains(date(2026, time.December, 23)))
	assert.False(t, p.Contains(date(2027, time.January, 1)))

	// Время суток игнорируется
	assert.True(t, p.Contains(time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC)))
}

func TestFindBlockingPeriodFirstMatchWins(t *testing.T) {
	first := &DisabledPeriod{
		StartDate: date(2026, time.August, 1),
		EndDate:   date(2026, time.August, 20),
		Reason:    "congés d'été",
	}
	second := &DisabledPeriod{
		StartDate: date(2026, time.August, 10),
		EndDate:   date(2026, time.August, 15),
		Reason:    "travaux",
	}

	blocking := FindBlockingPeriod([]*DisabledPeriod{first, second}, date(2026, time.August, 12))
	require.NotNil(t, blocking)
	assert.Equal(t, "congés d'été", blocking.Reason)

	assert.Nil(t, FindBlockingPeriod([]*DisabledPeriod{first, second}, date(2026, time.September, 1)))
	assert.Nil(t, FindBlockingPeriod(nil, date(2026, time.August, 12)))
}

func TestPatientConflictsWith(t *testing.T) {
	p := &Patient{
		FirstName:   "Amine",
		LastName:    "Benali",
		Sex:         "M",
		DateOfBirth: date(1990, time.March, 15),
	}

	assert.False(t, p.ConflictsWith("Amine", "Benali", "M", date(1990, time.March, 15)))
	assert.False(t, p.ConflictsWith("amine", "BENALI", "m", date(1990, time.March, 15)), "names compare case-insensitively")
	assert.False(t, p.ConflictsWith(" Amine ", "Benali", "M", date(1990, time.March, 15)), "whitespace is trimmed")

	assert.True(t, p.ConflictsWith("Karim", "Benali", "M", date(1990, time.March, 15)))
	assert.True(t, p.ConflictsWith("Amine", "Benali", "F", date(1990, time.March, 15)))
	assert.True(t, p.ConflictsWith("Amine", "Benali", "M", date(1990, time.March, 16)))
}
