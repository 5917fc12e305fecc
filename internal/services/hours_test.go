package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/services"
)

// clock builds a fixed instant on a known weekday. 2024-01-01 is a Monday.
func clock(t *testing.T, weekday time.Weekday, hour, minute int) time.Time {
	t.Helper()
	base := time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
	base = base.AddDate(0, 0, int(weekday-time.Monday))
	if base.Weekday() != weekday {
		t.Fatalf("expected %s, got %s", weekday, base.Weekday())
	}
	return base
}

func TestIsOpenAt(t *testing.T) {
	hours := []models.OpeningHourDay{
		{Day: "Monday", Hours: "09:00 - 18:00"},
		{Day: "Tuesday", Hours: "Closed"},
		{Day: "Friday", Hours: "09:00 - 12:00, 14:00 - 18:00"},
	}

	// Inside the range
	assert.True(t, services.IsOpenAt(hours, clock(t, time.Monday, 10, 0)))
	// Outside the range
	assert.False(t, services.IsOpenAt(hours, clock(t, time.Monday, 20, 0)))
	// Exactly at open is open, exactly at close is closed
	assert.True(t, services.IsOpenAt(hours, clock(t, time.Monday, 9, 0)))
	assert.False(t, services.IsOpenAt(hours, clock(t, time.Monday, 18, 0)))
	// "Closed" entries carry no range
	assert.False(t, services.IsOpenAt(hours, clock(t, time.Tuesday, 10, 0)))
	// Only the first range of a split day is evaluated
	assert.True(t, services.IsOpenAt(hours, clock(t, time.Friday, 10, 0)))
	assert.False(t, services.IsOpenAt(hours, clock(t, time.Friday, 15, 0)))
	// No entry for the day at all
	assert.False(t, services.IsOpenAt(hours, clock(t, time.Sunday, 10, 0)))
}

func TestIsOpenAt_OvernightRange(t *testing.T) {
	hours := []models.OpeningHourDay{
		{Day: "Monday", Hours: "22:00 - 02:00"},
	}

	assert.True(t, services.IsOpenAt(hours, clock(t, time.Monday, 23, 30)))
	assert.False(t, services.IsOpenAt(hours, clock(t, time.Monday, 20, 0)))
	// Early morning still counts against Monday's entry when "now" is Monday
	assert.True(t, services.IsOpenAt(hours, clock(t, time.Monday, 1, 0)))
	assert.False(t, services.IsOpenAt(hours, clock(t, time.Monday, 3, 0)))
}

func TestIsOpenAt_CaseInsensitiveDayMatch(t *testing.T) {
	hours := []models.OpeningHourDay{
		{Day: "monday", Hours: "09:00 - 18:00"},
	}
	assert.True(t, services.IsOpenAt(hours, clock(t, time.Monday, 12, 0)))
}

func TestIsOpenAt_UnparseableRange(t *testing.T) {
	hours := []models.OpeningHourDay{
		{Day: "Monday", Hours: "open late"},
	}
	assert.False(t, services.IsOpenAt(hours, clock(t, time.Monday, 12, 0)))
}
