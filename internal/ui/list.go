package ui

import (
	"fmt"
	"strings"

	"github.com/ajgould/bookdeck/internal/catalog"
)

const (
	coverGlyph       = "▣"
	coverPlaceholder = "▢"
	audioGlyph       = "♪"

	noSummaryText = "No summary available."
)

// renderList renders the book list with the expanded-summary pane inline
// under its entry.
func (m Model) renderList() string {
	styles := m.theme.Styles()

	if m.searching {
		return m.searchInput.View() + "\n\n" + m.renderRows()
	}
	if len(m.snapshot.Books) == 0 {
		if m.loading {
			return styles.MutedText.Render("Fetching books…")
		}
		if !m.query.IsZero() {
			return styles.MutedText.Render("No books match the current filters.")
		}
		return styles.MutedText.Render("No books yet — press a to add one.")
	}
	return m.renderRows()
}

func (m Model) renderRows() string {
	styles := m.theme.Styles()
	titleWidth := m.columnWidth()

	var b strings.Builder
	for i, book := range m.snapshot.Books {
		line := m.renderRow(book, titleWidth)
		if i == m.selected {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")

		if desc := firstLine(book.Description); desc != "" {
			b.WriteString(styles.FaintText.Render("      " + truncate(desc, m.width-8)))
			b.WriteString("\n")
		}
		if book.ID == m.expandedID {
			b.WriteString(styles.PaneFocus.Render(m.summary.View()))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderRow(book catalog.Book, titleWidth int) string {
	styles := m.theme.Styles()

	cover := styles.MutedText.Render(coverPlaceholder)
	if book.HasCover() {
		cover = styles.InfoText.Render(coverGlyph)
	}
	audio := " "
	if book.HasAudio() {
		audio = styles.AccentText.Render(audioGlyph)
	}

	return fmt.Sprintf(" %s %s %s  %s  %s",
		cover,
		audio,
		styles.Text.Render(padRight(truncate(book.Title, titleWidth), titleWidth)),
		styles.MutedText.Render(padRight(truncate(book.Author, 24), 24)),
		styles.Badge.Render(truncate(book.Category, 16)),
	)
}

// summaryContent builds the expanded pane for a book: full description, the
// text summary (or its placeholder), and the media links.
func (m Model) summaryContent(book catalog.Book) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(book.Title))
	b.WriteString(styles.MutedText.Render(" — " + book.Author))
	b.WriteString("\n\n")

	if desc := strings.TrimSpace(book.Description); desc != "" {
		b.WriteString(styles.Text.Render(desc))
		b.WriteString("\n\n")
	}

	summary := strings.TrimSpace(book.TextSummary)
	if summary == "" {
		b.WriteString(styles.FaintText.Render(noSummaryText))
	} else {
		b.WriteString(styles.Text.Render(summary))
	}
	b.WriteString("\n\n")

	if book.HasCover() {
		b.WriteString(styles.MutedText.Render(coverGlyph + " cover  "))
		b.WriteString(styles.InfoText.Render(truncateMiddle(book.CoverImageURL, m.width-16)))
	} else {
		b.WriteString(styles.FaintText.Render(coverPlaceholder + " no cover image"))
	}
	b.WriteString("\n")
	if book.HasAudio() {
		b.WriteString(styles.MutedText.Render(audioGlyph + " audio  "))
		b.WriteString(styles.InfoText.Render(truncateMiddle(book.AudioSummaryURL, m.width-16)))
		b.WriteString(styles.FaintText.Render("  (open in your player)"))
	}
	return b.String()
}

func (m Model) columnWidth() int {
	w := m.width - 56
	if w < 20 {
		w = 20
	}
	if w > 48 {
		w = 48
	}
	return w
}
