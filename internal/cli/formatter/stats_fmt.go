package formatter

import (
	"fmt"
	"strings"

	"github.com/mariechen/ticked/internal/service"
)

const histogramBarWidth = 20

// RenderBar renders a proportional histogram bar like "████░ 4".
func RenderBar(count, max, width int) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if max > 0 {
		filled = count * width / max
	}
	if count > 0 && filled == 0 {
		filled = 1
	}
	bar := strings.Repeat("█", filled)
	if bar == "" {
		bar = Dim("·")
	} else {
		bar = StyleGreen.Render(bar)
	}
	return fmt.Sprintf("%s %d", bar, count)
}

// FormatSummary renders the analytics dashboard shown by "ticked stats".
func FormatSummary(s *service.Summary) string {
	var b strings.Builder

	b.WriteString(Header("Overview"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d   %s %d   %s %d   %s %d\n",
		Dim("total"), s.Total,
		StyleGreen.Render("done"), s.Completed,
		StyleYellow.Render("active"), s.Active,
		StyleRed.Render("overdue"), s.Overdue,
	)
	fmt.Fprintf(&b, "%s %d   %s %d %s\n",
		Dim("this week"), s.CompletedThisWeek,
		Dim("streak"), s.Streak, Dim("days"),
	)

	b.WriteString("\n")
	b.WriteString(Header("Last 7 Days"))
	b.WriteString("\n")

	max := 0
	for _, bucket := range s.Histogram {
		if bucket.Count > max {
			max = bucket.Count
		}
	}
	for _, bucket := range s.Histogram {
		fmt.Fprintf(&b, "%s  %s\n",
			Dim(bucket.Day.Format("Mon 01-02")),
			RenderBar(bucket.Count, max, histogramBarWidth),
		)
	}

	return b.String()
}
