// Package holiday builds the per-year map of Japanese national holidays
// that the page composer annotates, including the synthetic slot-13
// entries for the following January.
package holiday

import (
	"fmt"
	"strings"
	"time"

	"github.com/zapponejosh/koyomi/internal/calendar"
)

// Canonical holiday names used by the synthetic slot-13 entries and by
// substitute-holiday normalization.
const (
	NewYearsDay    = "元日"
	ComingOfAgeDay = "成人の日"
	SubstituteDay  = "振替休日"
)

// Key identifies one day in the logical calendar. Month ranges 1..13:
// the slot-13 entries are stored under month 13, matching how the
// composer looks days up by their logical position.
type Key struct {
	Year  int
	Month int
	Day   int
}

// Map holds the holiday names for one target year. It is built once
// per run and read-only thereafter.
type Map map[Key]string

// Build filters the fetched dataset (ISO date string -> name) down to
// baseYear and adds the slot-13 entries for the following January.
//
// Any name containing 振替休日 is normalized to exactly that string,
// so substitute holidays carry one canonical label regardless of how
// the upstream dataset phrases them.
func Build(dataset map[string]string, baseYear int) (Map, error) {
	holidays := make(Map)

	for dateStr, name := range dataset {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("holiday dataset: bad date %q: %w", dateStr, err)
		}
		if date.Year() != baseYear {
			continue
		}
		if strings.Contains(name, SubstituteDay) {
			name = SubstituteDay
		}
		holidays[Key{Year: date.Year(), Month: int(date.Month()), Day: date.Day()}] = name
	}

	// Slot 13 shows January of the following year, but only New Year's
	// Day and Coming of Age Day are annotated there.
	holidays[Key{Year: baseYear, Month: 13, Day: 1}] = NewYearsDay
	secondMonday := calendar.SecondMonday(baseYear+1, time.January)
	holidays[Key{Year: baseYear, Month: 13, Day: secondMonday}] = ComingOfAgeDay

	return holidays, nil
}
