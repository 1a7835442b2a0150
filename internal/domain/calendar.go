package domain

import "time"

// Holiday is a named national holiday on a specific calendar date.
// Date carries day granularity only (midnight UTC); it is never an instant.
type Holiday struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// CalendarDay is one cell of a displayed month grid. It is derived on
// demand and never persisted.
type CalendarDay struct {
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"is_current_month"`
	IsToday        bool      `json:"is_today"`
	IsHoliday      bool      `json:"is_holiday"`
	HolidayName    string    `json:"holiday_name,omitempty"`
}

// MigrationReport summarizes one legacy migration pass.
// CleanupSafe is true only when at least one schedule migrated and no date
// failed, meaning the legacy copies may be discarded.
type MigrationReport struct {
	Migrated    int  `json:"migrated"`
	Errors      int  `json:"errors"`
	CleanupSafe bool `json:"cleanup_safe"`
}

// DateOnly normalizes t to its calendar date: midnight UTC of the same
// year/month/day. All date keys in this codebase pass through it so that
// equality checks and DB date columns never see a time-of-day component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date,
// ignoring time of day and location-independent.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
