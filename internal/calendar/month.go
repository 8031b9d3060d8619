// Package calendar provides the logical-month arithmetic and day-grid
// layout behind the generated calendar pages.
package calendar

import (
	"fmt"
	"time"
)

// Month is a logical calendar slot for a fixed target year.
//
// Slot ranges over 1..13. Slots 1..12 are the ordinary months of Year;
// slot 13 is a display-only alias for January of Year+1, so that the
// December page run can end with a thirteenth page showing the following
// New Year. Slot is the number printed on the page; the real calendar
// month is only ever obtained through Resolve.
type Month struct {
	Year int
	Slot int
}

// Resolve returns the real calendar year and month for m.
//
// Resolve is total and stateless: slot 13 maps to January of the
// following year, every other slot maps to itself.
func (m Month) Resolve() (int, time.Month) {
	if m.Slot == 13 {
		return m.Year + 1, time.January
	}
	return m.Year, time.Month(m.Slot)
}

// Prev returns the logical month displayed before m.
//
// The slot-13 page sits between slot 12 and the next year, so its
// predecessor is December of the same logical year.
func (m Month) Prev() Month {
	switch m.Slot {
	case 13:
		return Month{Year: m.Year, Slot: 12}
	case 1:
		return Month{Year: m.Year - 1, Slot: 12}
	default:
		return Month{Year: m.Year, Slot: m.Slot - 1}
	}
}

// Next returns the logical month displayed after m.
//
// December's successor is the slot-13 page of the same logical year;
// slot 13's successor is February of the following year.
func (m Month) Next() Month {
	switch m.Slot {
	case 12:
		return Month{Year: m.Year, Slot: 13}
	case 13:
		return Month{Year: m.Year + 1, Slot: 2}
	default:
		return Month{Year: m.Year, Slot: m.Slot + 1}
	}
}

// YYMM returns the two-digit year and two-digit month of the resolved
// real month, e.g. "2701" for the slot-13 page of 2026. It names both
// the page's backing image (YYMM.jpg) and its output file (YYMM.svg).
func (m Month) YYMM() string {
	year, month := m.Resolve()
	return fmt.Sprintf("%02d%02d", year%100, int(month))
}

// SecondMonday returns the day of month of the second Monday of the
// given real year and month.
//
// The offset to the first Monday is computed in the Monday=0..Sunday=6
// ordinal convention: 0 if the month opens on a Monday, otherwise
// (7 - weekday) % 7 days forward. The second Monday is seven days
// later and, for any Gregorian month, always falls within the month.
func SecondMonday(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	mondayOrdinal := (int(first.Weekday()) + 6) % 7
	offset := (7 - mondayOrdinal) % 7
	return first.AddDate(0, 0, offset+7).Day()
}
