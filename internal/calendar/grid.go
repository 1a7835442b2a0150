package calendar

import (
	"time"

	"github.com/abarros/agenda-servicos/backend/internal/domain"
)

// MonthGrid returns the calendar cells displayed for the month containing
// anchor: every day of the month plus the leading and trailing days needed
// to fill whole Sunday-to-Saturday weeks. Cells outside the month are
// flagged IsCurrentMonth=false. The result length is always a multiple of 7.
func (c *Calendar) MonthGrid(anchor time.Time) []domain.CalendarDay {
	today := domain.DateOnly(c.now())

	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	// Walk back to the Sunday on or before the 1st, and forward to the
	// Saturday on or after the last day. time.Weekday is 0 on Sunday.
	start := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	end := lastOfMonth.AddDate(0, 0, int(time.Saturday-lastOfMonth.Weekday()))

	var cells []domain.CalendarDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		cell := domain.CalendarDay{
			Date:           d,
			IsCurrentMonth: d.Month() == anchor.Month(),
			IsToday:        domain.SameDay(d, today),
		}
		if name, ok := c.HolidayName(d); ok {
			cell.IsHoliday = true
			cell.HolidayName = name
		}
		cells = append(cells, cell)
	}
	return cells
}
