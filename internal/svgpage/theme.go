// Package svgpage renders one printable SVG calendar page per logical
// month: backing image, month label, weekday header, day grid with
// holiday annotations, and mini previews of the adjacent months.
package svgpage

// Theme fixes the page geometry and typography. All lengths are user
// units of the A3 viewBox, which the page maps 1:1 to millimeters.
// Layout changes (other paper sizes, different grids) are theme edits;
// the composer never hardcodes a coordinate.
type Theme struct {
	// Page size, also the viewBox extent.
	PageWidth  int
	PageHeight int

	// Backing photo placement.
	ImageX    int
	ImageY    int
	ImageSize int

	// Font sizes.
	FontMonthMain   int
	FontWeekday     int
	FontDayMain     int
	FontMonthMini   int
	FontDayMini     int
	FontHolidayName int

	FontFamily string

	// Main grid: month label, weekday header, day origin and steps.
	MonthX   int
	MonthY   int
	WeekdayX int
	WeekdayY int
	DayX     int
	DayY     int
	ColStep  int
	RowStep  int

	// Rule under the weekday header.
	RuleX1 int
	RuleY1 int
	RuleX2 int
	RuleY2 int

	// Holiday name sits this far below its day number.
	HolidayNameOffsetY int

	// Mini previews of the previous and next logical month.
	PrevMonthX  int
	PrevMonthY  int
	PrevDayX    int
	PrevDayY    int
	PrevColStep int
	PrevRowStep int

	NextMonthX  int
	NextMonthY  int
	NextDayX    int
	NextDayY    int
	NextColStep int
	NextRowStep int
}

// DefaultTheme is the A3 portrait layout the generator ships with.
func DefaultTheme() Theme {
	return Theme{
		PageWidth:  297,
		PageHeight: 420,

		ImageX:    30,
		ImageY:    20,
		ImageSize: 226,

		FontMonthMain:   36,
		FontWeekday:     8,
		FontDayMain:     12,
		FontMonthMini:   10,
		FontDayMini:     4,
		FontHolidayName: 4,

		FontFamily: "Franklin Gothic Medium Cond",

		MonthX:   45,
		MonthY:   290,
		WeekdayX: 84,
		WeekdayY: 270,
		DayX:     84,
		DayY:     295,
		ColStep:  28,
		RowStep:  19,

		RuleX1: 70,
		RuleY1: 276,
		RuleX2: 266,
		RuleY2: 276,

		HolidayNameOffsetY: 4,

		PrevMonthX:  45,
		PrevMonthY:  305,
		PrevDayX:    24,
		PrevDayY:    312,
		PrevColStep: 7,
		PrevRowStep: 6,

		NextMonthX:  45,
		NextMonthY:  350,
		NextDayX:    24,
		NextDayY:    357,
		NextColStep: 7,
		NextRowStep: 6,
	}
}
