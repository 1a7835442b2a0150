// Package calendar computes Brazilian national holidays and month grids.
// Everything here is a pure function of the calendar plus an explicit
// per-year cache; nothing touches the database.
package calendar

import "time"

// easterSunday returns Easter Sunday for the given Gregorian year, computed
// with the Gauss anonymous congruence algorithm. Integer arithmetic only;
// Go's integer division already floors for the non-negative operands used here.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
