package svgpage

import (
	"bytes"
	"fmt"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/zapponejosh/koyomi/internal/calendar"
	"github.com/zapponejosh/koyomi/internal/holiday"
)

// Display colors. Holidays and Sundays share orangered; weekday cells
// dim to darkslategray in the mini grids so they recede next to the
// main grid.
const (
	colorHoliday     = "orangered"
	colorSunday      = "orangered"
	colorSaturday    = "royalblue"
	colorWeekday     = "black"
	colorWeekdayMini = "darkslategray"
)

var weekdayLabels = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// Composer renders the pages for one target year. It holds no mutable
// state: Render is a pure function of (Year, Holidays, Theme, slot),
// so identical inputs produce byte-identical documents.
type Composer struct {
	Year     int
	Holidays holiday.Map
	Theme    Theme
}

// FileName returns the output filename for a logical slot, derived
// from the resolved real year and month (e.g. slot 13 of 2026 is
// "2701.svg").
func (c *Composer) FileName(slot int) string {
	return calendar.Month{Year: c.Year, Slot: slot}.YYMM() + ".svg"
}

// Render produces the complete SVG document for one logical slot.
//
// The large month label shows the logical slot verbatim (a slot-13
// page is labeled "13"), while the mini previews are labeled with
// their resolved real month number.
func (c *Composer) Render(slot int) string {
	t := c.Theme
	m := calendar.Month{Year: c.Year, Slot: slot}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.StartviewUnit(t.PageWidth, t.PageHeight, "mm", 0, 0, t.PageWidth, t.PageHeight)

	canvas.Image(t.ImageX, t.ImageY, t.ImageSize, t.ImageSize, m.YYMM()+".jpg")

	canvas.Text(t.MonthX, t.MonthY, strconv.Itoa(slot),
		c.textStyle(t.FontMonthMain, ""))

	for i, label := range weekdayLabels {
		canvas.Text(t.WeekdayX+i*t.ColStep, t.WeekdayY, label,
			c.textStyle(t.FontWeekday, headerColor(i)))
	}

	canvas.Line(t.RuleX1, t.RuleY1, t.RuleX2, t.RuleY2,
		"stroke:black;stroke-width:0.3")

	for _, cell := range calendar.Cells(m) {
		x := t.DayX + cell.Col*t.ColStep
		y := t.DayY + cell.Row*t.RowStep

		// Holiday lookup is by logical position: the slot-13 page
		// checks (year, 13, day), where the synthetic entries live.
		key := holiday.Key{Year: m.Year, Month: m.Slot, Day: cell.Day}
		canvas.Text(x, y, strconv.Itoa(cell.Day),
			c.textStyle(t.FontDayMain, c.dayColor(cell.Weekday, key, false)))

		if name, ok := c.Holidays[key]; ok {
			canvas.Text(x, y+t.HolidayNameOffsetY, name,
				c.textStyle(t.FontHolidayName, colorHoliday))
		}
	}

	c.renderMini(canvas, m.Prev(),
		t.PrevMonthX, t.PrevMonthY, t.PrevDayX, t.PrevDayY, t.PrevColStep, t.PrevRowStep)
	c.renderMini(canvas, m.Next(),
		t.NextMonthX, t.NextMonthY, t.NextDayX, t.NextDayY, t.NextColStep, t.NextRowStep)

	canvas.End()
	return buf.String()
}

// renderMini draws a condensed preview grid for an adjacent logical
// month: real month number as label, then the day grid with mini
// coloring and no holiday names.
func (c *Composer) renderMini(canvas *svg.SVG, m calendar.Month, monthX, monthY, dayX, dayY, colStep, rowStep int) {
	t := c.Theme
	_, realMonth := m.Resolve()

	canvas.Text(monthX, monthY, strconv.Itoa(int(realMonth)),
		c.textStyle(t.FontMonthMini, ""))

	for _, cell := range calendar.Cells(m) {
		key := holiday.Key{Year: m.Year, Month: m.Slot, Day: cell.Day}
		canvas.Text(dayX+cell.Col*colStep, dayY+cell.Row*rowStep,
			strconv.Itoa(cell.Day),
			c.textStyle(t.FontDayMini, c.dayColor(cell.Weekday, key, true)))
	}
}

// dayColor picks a day cell's fill. Holiday membership wins over the
// weekday rule; Sundays and holidays share a color.
func (c *Composer) dayColor(weekday int, key holiday.Key, mini bool) string {
	if _, ok := c.Holidays[key]; ok {
		return colorHoliday
	}
	switch weekday {
	case 0:
		return colorSunday
	case 6:
		return colorSaturday
	default:
		if mini {
			return colorWeekdayMini
		}
		return colorWeekday
	}
}

// headerColor colors the SUN..SAT header labels.
func headerColor(weekday int) string {
	switch weekday {
	case 0:
		return colorSunday
	case 6:
		return colorSaturday
	default:
		return colorWeekday
	}
}

// textStyle builds the shared style string for text elements. An empty
// fill leaves the element at the SVG default (black).
func (c *Composer) textStyle(fontSize int, fill string) string {
	style := fmt.Sprintf(
		"font-family:%s;font-size:%d;text-anchor:middle;dominant-baseline:text-after-edge",
		c.Theme.FontFamily, fontSize)
	if fill != "" {
		style += ";fill:" + fill
	}
	return style
}
