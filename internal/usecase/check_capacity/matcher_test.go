package check_capacity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func day(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestIsApplicable_SingleDate(t *testing.T) {
	rule := &domain.CapacityRule{
		DateMode:  domain.DateModeSingle,
		Date:      ptr.Ptr(day("2025-09-09")),
		StartTime: "00:00",
		EndTime:   "23:59",
	}

	assert.True(t, IsApplicable(rule, day("2025-09-09"), "12:00"))
	assert.False(t, IsApplicable(rule, day("2025-09-10"), "12:00"))
	assert.False(t, IsApplicable(rule, day("2025-09-08"), "12:00"))
}

func TestIsApplicable_SingleDate_IgnoresClockAndZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	rule := &domain.CapacityRule{
		DateMode:  domain.DateModeSingle,
		Date:      ptr.Ptr(time.Date(2025, 9, 9, 23, 30, 0, 0, tokyo)),
		StartTime: "00:00",
		EndTime:   "23:59",
	}

	assert.True(t, IsApplicable(rule, day("2025-09-09"), "12:00"))
}

func TestIsApplicable_Range(t *testing.T) {
	rule := &domain.CapacityRule{
		DateMode:  domain.DateModeRange,
		StartDate: ptr.Ptr(day("2025-12-24")),
		EndDate:   ptr.Ptr(day("2026-01-03")),
		StartTime: "00:00",
		EndTime:   "23:59",
	}

	tests := []struct {
		date string
		want bool
	}{
		{date: "2025-12-23", want: false},
		{date: "2025-12-24", want: true},
		{date: "2025-12-31", want: true},
		{date: "2026-01-03", want: true},
		{date: "2026-01-04", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, IsApplicable(rule, day(tt.date), "12:00"))
		})
	}
}

func TestIsApplicable_WeeklySunday(t *testing.T) {
	rule := &domain.CapacityRule{
		DateMode: domain.DateModeWeekly,
		Weekday:  ptr.Ptr(0),
		// Поля других режимов не должны влиять на результат
		Date:      ptr.Ptr(day("2025-09-10")),
		StartDate: ptr.Ptr(day("2025-01-01")),
		EndDate:   ptr.Ptr(day("2025-01-02")),
		StartTime: "00:00",
		EndTime:   "23:59",
	}

	start := day("2025-09-01") // понедельник
	for i := 0; i < 28; i++ {
		d := start.AddDate(0, 0, i)
		assert.Equal(t, d.Weekday() == time.Sunday, IsApplicable(rule, d, "12:00"), d.Format(domain.DateFormat))
	}
}

func TestIsApplicable_TimeWindowInclusive(t *testing.T) {
	rule := &domain.CapacityRule{
		DateMode:  domain.DateModeSingle,
		Date:      ptr.Ptr(day("2025-09-09")),
		StartTime: "18:00",
		EndTime:   "21:00",
	}

	tests := []struct {
		slot types.TimeString
		want bool
	}{
		{slot: "17:59", want: false},
		{slot: "18:00", want: true},
		{slot: "19:30", want: true},
		{slot: "21:00", want: true},
		{slot: "21:01", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.slot.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, IsApplicable(rule, day("2025-09-09"), tt.slot))
		})
	}
}

func TestIsApplicable_IncompleteRule(t *testing.T) {
	date := day("2025-09-09")

	assert.False(t, IsApplicable(&domain.CapacityRule{DateMode: domain.DateModeSingle, StartTime: "00:00", EndTime: "23:59"}, date, "12:00"))
	assert.False(t, IsApplicable(&domain.CapacityRule{DateMode: domain.DateModeRange, StartDate: ptr.Ptr(date), StartTime: "00:00", EndTime: "23:59"}, date, "12:00"))
	assert.False(t, IsApplicable(&domain.CapacityRule{DateMode: domain.DateModeWeekly, StartTime: "00:00", EndTime: "23:59"}, date, "12:00"))
	assert.False(t, IsApplicable(&domain.CapacityRule{DateMode: "monthly", StartTime: "00:00", EndTime: "23:59"}, date, "12:00"))
}
