package calendar

import (
	"sync"
	"time"

	"github.com/abarros/agenda-servicos/backend/internal/domain"
)

// Calendar owns the per-year holiday cache. Holiday rules for a given year
// never change, so entries are computed once and never evicted.
//
// The zero value is not usable; construct with New.
type Calendar struct {
	mu    sync.RWMutex
	years map[int][]domain.Holiday

	// now is swapped out in tests to pin "today".
	now func() time.Time
}

// New returns a Calendar with an empty cache.
func New() *Calendar {
	return &Calendar{
		years: make(map[int][]domain.Holiday),
		now:   time.Now,
	}
}

// fixedHoliday is a (name, month, day) triple for a holiday that falls on
// the same date every year.
type fixedHoliday struct {
	name  string
	month time.Month
	day   int
}

var fixedHolidays = []fixedHoliday{
	{"Confraternização Universal", time.January, 1},
	{"Tiradentes", time.April, 21},
	{"Dia do Trabalhador", time.May, 1},
	{"Independência do Brasil", time.September, 7},
	{"Nossa Senhora Aparecida", time.October, 12},
	{"Finados", time.November, 2},
	{"Proclamação da República", time.November, 15},
	{"Natal", time.December, 25},
}

// computeHolidays builds the full 12-holiday list for a year: the 8 fixed
// national holidays followed by the 4 Easter-relative ones. The returned
// order is build order, not chronological — callers that need chronological
// order must sort.
func computeHolidays(year int) []domain.Holiday {
	holidays := make([]domain.Holiday, 0, len(fixedHolidays)+4)
	for _, f := range fixedHolidays {
		holidays = append(holidays, domain.Holiday{
			Name: f.name,
			Date: time.Date(year, f.month, f.day, 0, 0, 0, 0, time.UTC),
		})
	}

	// AddDate rolls month and year boundaries correctly, so Carnival lands
	// in February even when Easter is in April.
	easter := easterSunday(year)
	holidays = append(holidays,
		domain.Holiday{Name: "Carnaval", Date: easter.AddDate(0, 0, -47)},
		domain.Holiday{Name: "Sexta-feira Santa", Date: easter.AddDate(0, 0, -2)},
		domain.Holiday{Name: "Páscoa", Date: easter},
		domain.Holiday{Name: "Corpus Christi", Date: easter.AddDate(0, 0, 60)},
	)
	return holidays
}

// Holidays returns the 12 national holidays of the given year, computing
// and caching them on first request.
func (c *Calendar) Holidays(year int) []domain.Holiday {
	c.mu.RLock()
	hs, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return hs
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have filled the entry between the two locks.
	if hs, ok := c.years[year]; ok {
		return hs
	}
	hs = computeHolidays(year)
	c.years[year] = hs
	return hs
}

// IsHoliday reports whether date falls on a national holiday.
func (c *Calendar) IsHoliday(date time.Time) bool {
	_, ok := c.HolidayName(date)
	return ok
}

// HolidayName returns the holiday name for date, if any. A linear scan over
// the year's 12 entries is plenty at this scale.
func (c *Calendar) HolidayName(date time.Time) (string, bool) {
	for _, h := range c.Holidays(date.Year()) {
		if domain.SameDay(h.Date, date) {
			return h.Name, true
		}
	}
	return "", false
}
