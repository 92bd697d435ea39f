package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mariechen/ticked/internal/service"
)

// FormatCalendar renders a month grid with due counts, one week per row.
// Days with items due show their count next to the day number.
func FormatCalendar(cal *service.CalendarMonth, today time.Time) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", cal.Month, cal.Year)
	b.WriteString(Header(title))
	b.WriteString("\n")

	for _, wd := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(strings.Repeat(" ", 5))
		b.WriteString(Dim(wd))
	}
	b.WriteString("\n")

	isThisMonth := today.Year() == cal.Year && today.Month() == cal.Month

	for i, day := range cal.Cells {
		if day == 0 {
			b.WriteString(strings.Repeat(" ", 7))
		} else {
			dayStyle := StyleFg
			if isThisMonth && day == today.Day() {
				dayStyle = StyleHeader
			}
			cell := dayStyle.Render(fmt.Sprintf("%2d", day))
			if n := cal.DueByDay[day]; n > 0 {
				cell += StyleRed.Render(fmt.Sprintf("•%d", n))
			}
			if pad := 7 - lipgloss.Width(cell); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(cell)
		}
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
