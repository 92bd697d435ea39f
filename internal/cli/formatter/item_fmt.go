package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mariechen/ticked/internal/domain"
)

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatDue(item *domain.Item, now time.Time) string {
	if item.DueAt == nil {
		return Dim("-")
	}
	due := item.DueAt.Format("2006-01-02 15:04")
	if item.Overdue(now) {
		return StyleRed.Render(due)
	}
	return StyleFg.Render(due)
}

func formatTitle(item *domain.Item) string {
	title := item.Title
	if item.Pinned {
		title = "📌 " + title
	}
	if item.Completed {
		return StyleDim.Strikethrough(true).Render(title)
	}
	return StyleFg.Render(title)
}

// FormatItemList renders the item table shown by "ticked list".
func FormatItemList(items []*domain.Item, now time.Time) string {
	headers := []string{"", "ID", "TITLE", "DUE", "PRI", "EVERY", "CATEGORY"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		every := Dim("-")
		if item.Recurrence != domain.RecurrenceNone {
			every = StylePurple.Render(strings.ToLower(string(item.Recurrence)))
		}
		category := Dim("-")
		if item.Category != "" {
			category = StyleBlue.Render(item.Category)
		}
		rows = append(rows, []string{
			StatusMark(item.Completed),
			Dim(shortID(item.ID)),
			formatTitle(item),
			formatDue(item, now),
			PriorityLabel(item.Priority),
			every,
			category,
		})
	}
	return RenderTable(headers, rows)
}

// FormatSubtaskList renders subtasks indented under their parent.
func FormatSubtaskList(subs []*domain.Subtask) string {
	var b strings.Builder
	for _, sub := range subs {
		title := sub.Title
		if sub.Completed {
			title = StyleDim.Strikethrough(true).Render(title)
		} else {
			title = StyleFg.Render(title)
		}
		fmt.Fprintf(&b, "  %s %s %s\n", StatusMark(sub.Completed), Dim(shortID(sub.ID)), title)
	}
	return b.String()
}
