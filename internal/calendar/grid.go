package calendar

import "time"

// DayCell is one positioned day in a Sunday-first month grid.
//
// Weekday is 0=Sunday..6=Saturday and doubles as the grid column.
// Cells are ephemeral: recomputed per render, never cached.
type DayCell struct {
	Date    time.Time
	Day     int
	Weekday int
	Row     int
	Col     int
}

// Cells enumerates the days of m's resolved real month in ascending
// order, assigning each date its Sunday-first grid position.
//
// Only dates belonging to the real month appear; leading and trailing
// slots of partial weeks are simply absent. Row assignment is stable:
// row = (offset from the 1st + weekday of the 1st) / 7.
func Cells(m Month) []DayCell {
	year, month := m.Resolve()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	firstWeekday := int(first.Weekday())

	// Day 0 of the next month is the last day of this one.
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make([]DayCell, 0, days)
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		weekday := int(date.Weekday())
		cells = append(cells, DayCell{
			Date:    date,
			Day:     day,
			Weekday: weekday,
			Row:     (day - 1 + firstWeekday) / 7,
			Col:     weekday,
		})
	}
	return cells
}
