package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarros/agenda-servicos/backend/internal/domain"
)

// date is a shorthand for a midnight-UTC calendar date.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEasterSunday_KnownYears(t *testing.T) {
	// Reference dates from published Easter tables.
	cases := map[int]time.Time{
		2023: date(2023, time.April, 9),
		2024: date(2024, time.March, 31),
		2025: date(2025, time.April, 20),
		2026: date(2026, time.April, 5),
		2027: date(2027, time.March, 28),
	}
	for year, want := range cases {
		assert.Equal(t, want, easterSunday(year), "easter %d", year)
	}
}

func TestHolidays_CountAndComposition(t *testing.T) {
	c := New()
	for year := 2023; year <= 2027; year++ {
		hs := c.Holidays(year)
		require.Len(t, hs, 12, "year %d", year)

		easter := easterSunday(year)
		byName := map[string]time.Time{}
		for _, h := range hs {
			byName[h.Name] = h.Date
		}
		require.Len(t, byName, 12, "holiday names must be unique in %d", year)

		// The four moveable holidays sit at fixed offsets from Easter.
		assert.Equal(t, easter.AddDate(0, 0, -47), byName["Carnaval"])
		assert.Equal(t, easter.AddDate(0, 0, -2), byName["Sexta-feira Santa"])
		assert.Equal(t, easter, byName["Páscoa"])
		assert.Equal(t, easter.AddDate(0, 0, 60), byName["Corpus Christi"])
	}
}

func TestHolidays_WorkedExample2024(t *testing.T) {
	c := New()
	hs := c.Holidays(2024)

	byName := map[string]time.Time{}
	for _, h := range hs {
		byName[h.Name] = h.Date
	}

	// Easter 2024-03-31: Carnival rolls back across the month boundary
	// into February, Corpus Christi rolls forward into May.
	assert.Equal(t, date(2024, time.February, 13), byName["Carnaval"])
	assert.Equal(t, date(2024, time.March, 29), byName["Sexta-feira Santa"])
	assert.Equal(t, date(2024, time.March, 31), byName["Páscoa"])
	assert.Equal(t, date(2024, time.May, 30), byName["Corpus Christi"])
}

func TestIsHoliday_AgreesWithHolidayList(t *testing.T) {
	c := New()

	for year := 2023; year <= 2027; year++ {
		members := map[string]bool{}
		for _, h := range c.Holidays(year) {
			members[h.Date.Format(time.DateOnly)] = true
		}

		// Walk every day of the year and cross-check the point lookup.
		for d := date(year, time.January, 1); d.Year() == year; d = d.AddDate(0, 0, 1) {
			assert.Equal(t, members[d.Format(time.DateOnly)], c.IsHoliday(d), "%s", d.Format(time.DateOnly))
		}
	}
}

func TestHolidayName(t *testing.T) {
	c := New()

	name, ok := c.HolidayName(date(2024, time.February, 13))
	require.True(t, ok)
	assert.Equal(t, "Carnaval", name)

	_, ok = c.HolidayName(date(2024, time.February, 14))
	assert.False(t, ok)
}

func TestHolidays_CacheReturnsSameSlice(t *testing.T) {
	c := New()
	first := c.Holidays(2025)
	second := c.Holidays(2025)
	// Same backing array — the cache is filled once and reused.
	require.NotEmpty(t, first)
	assert.Equal(t, &first[0], &second[0])
}

// newTestCalendar pins "today" so IsToday assertions are deterministic.
func newTestCalendar(today time.Time) *Calendar {
	c := New()
	c.now = func() time.Time { return today }
	return c
}

func TestMonthGrid_Shape(t *testing.T) {
	c := newTestCalendar(date(2024, time.June, 15))

	for month := time.January; month <= time.December; month++ {
		grid := c.MonthGrid(date(2024, month, 10))

		require.NotEmpty(t, grid, "%s", month)
		assert.Zero(t, len(grid)%7, "%s: length %d not a multiple of 7", month, len(grid))
		assert.GreaterOrEqual(t, len(grid), 28, "%s", month)
		assert.Equal(t, time.Sunday, grid[0].Date.Weekday(), "%s: first cell", month)
		assert.Equal(t, time.Saturday, grid[len(grid)-1].Date.Weekday(), "%s: last cell", month)
	}
}

func TestMonthGrid_EveryMonthDayExactlyOnce(t *testing.T) {
	c := newTestCalendar(date(2024, time.June, 15))
	grid := c.MonthGrid(date(2024, time.February, 1))

	seen := map[int]int{}
	for _, cell := range grid {
		if cell.IsCurrentMonth {
			assert.Equal(t, time.February, cell.Date.Month())
			seen[cell.Date.Day()]++
		}
	}
	require.Len(t, seen, 29, "February 2024 is a leap month")
	for day, n := range seen {
		assert.Equal(t, 1, n, "day %d", day)
	}
}

func TestMonthGrid_LeadingTrailingFlags(t *testing.T) {
	// June 2024 starts on a Saturday: six leading May cells.
	c := newTestCalendar(date(2024, time.June, 15))
	grid := c.MonthGrid(date(2024, time.June, 1))

	require.Equal(t, date(2024, time.May, 26), grid[0].Date)
	for i := 0; i < 6; i++ {
		assert.False(t, grid[i].IsCurrentMonth, "cell %d", i)
	}
	assert.True(t, grid[6].IsCurrentMonth)
	assert.Equal(t, date(2024, time.June, 1), grid[6].Date)
}

func TestMonthGrid_TodayAndHolidayFlags(t *testing.T) {
	c := newTestCalendar(date(2024, time.February, 13))
	grid := c.MonthGrid(date(2024, time.February, 1))

	var todays, carnaval int
	for _, cell := range grid {
		if cell.IsToday {
			todays++
			assert.Equal(t, date(2024, time.February, 13), cell.Date)
		}
		if cell.HolidayName == "Carnaval" {
			carnaval++
			assert.True(t, cell.IsHoliday)
		}
	}
	assert.Equal(t, 1, todays)
	assert.Equal(t, 1, carnaval)
}

func TestMonthGrid_AdjacentYearHoliday(t *testing.T) {
	// A December grid can trail into January of the next year; the New Year
	// cell must be flagged from the next year's holiday table.
	c := newTestCalendar(date(2025, time.December, 10))
	grid := c.MonthGrid(date(2025, time.December, 1))

	var found bool
	for _, cell := range grid {
		if domain.SameDay(cell.Date, date(2026, time.January, 1)) {
			found = true
			assert.False(t, cell.IsCurrentMonth)
			assert.True(t, cell.IsHoliday)
			assert.Equal(t, "Confraternização Universal", cell.HolidayName)
		}
	}
	require.True(t, found, "grid should include 2026-01-01")
}
