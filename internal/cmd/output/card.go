package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentstation/quotegen/pkg/quotes"
)

// Palette colors for quote cards.
const (
	colorBorder   = "#7D56F4"
	colorText     = "#E6E6E6"
	colorCategory = "#43BF6D"
	colorMuted    = "#8A8A8A"
)

// cardWidth is the content width a card wraps quote text to.
const cardWidth = 60

// CardStyles holds the lipgloss styles used to draw a quote card.
type CardStyles struct {
	Frame    lipgloss.Style
	Text     lipgloss.Style
	Category lipgloss.Style
	ID       lipgloss.Style
}

// DefaultCardStyles returns the standard card look.
func DefaultCardStyles() CardStyles {
	return CardStyles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(1, 2).
			Width(cardWidth),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)).
			Italic(true),
		Category: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorCategory)).
			Bold(true),
		ID: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),
	}
}

// Card renders q as a bordered block with the text on top and the
// category and id underneath.
func Card(q quotes.Quote, styles CardStyles) string {
	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Category.Render(q.Category),
		styles.ID.Render(fmt.Sprintf("  #%d", q.ID)),
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Text.Render(fmt.Sprintf("%q", q.Text)),
		"",
		footer,
	)
	return styles.Frame.Render(body)
}

// Plain renders q on two lines without styling, for pipes and logs.
func Plain(q quotes.Quote) string {
	return fmt.Sprintf("%q\n  - %s (#%d)", q.Text, q.Category, q.ID)
}

// WriteQuote writes a single quote in format. Tables become a card on a
// terminal and plain text otherwise.
func WriteQuote(w io.Writer, format Format, q quotes.Quote, terminal bool) error {
	switch format {
	case FormatJSON, FormatYAML:
		return NewFormatter(format).Format(w, q)
	}
	out := Plain(q)
	if terminal {
		out = Card(q, DefaultCardStyles())
	}
	_, err := io.WriteString(w, strings.TrimRight(out, "\n")+"\n")
	return err
}
