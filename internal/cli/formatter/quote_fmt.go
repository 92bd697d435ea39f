package formatter

import (
	"fmt"
	"strings"

	"github.com/mariechen/ticked/internal/domain"
	"github.com/mariechen/ticked/internal/quote"
)

func toneStyle(tone domain.Tone) string {
	switch tone {
	case domain.ToneCelebratory:
		return StyleGreen.Render(string(tone))
	case domain.ToneReflective:
		return StylePurple.Render(string(tone))
	default:
		return StyleYellow.Render(string(tone))
	}
}

// FormatQuote renders a single quote with attribution and tone tag.
func FormatQuote(res quote.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", StyleFg.Italic(true).Render("“"+res.Text+"”"))
	fmt.Fprintf(&b, "  %s %s\n", Dim("—"), Bold(res.Author))
	fmt.Fprintf(&b, "  %s %s\n", toneStyle(res.Tone), Dim("("+res.Source+")"))
	return b.String()
}

// FormatFavorites renders the saved quotes list.
func FormatFavorites(favs []*domain.FavoriteQuote) string {
	headers := []string{"ID", "QUOTE", "AUTHOR", "TONE"}
	rows := make([][]string, 0, len(favs))
	for _, f := range favs {
		rows = append(rows, []string{
			Dim(shortID(f.ID)),
			StyleFg.Render(f.Quote),
			Bold(f.Author),
			toneStyle(f.Tone),
		})
	}
	return RenderTable(headers, rows)
}
