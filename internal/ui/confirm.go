package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderConfirm renders the destructive-action guard for deletes.
func (m Model) renderConfirm() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Delete book?"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(fmt.Sprintf("%s — %s", truncate(m.confirm.Title, 40), truncate(m.confirm.Author, 30))))
	b.WriteString("\n\n")
	b.WriteString(styles.DangerText.Render("y"))
	b.WriteString(styles.MutedText.Render(" delete   "))
	b.WriteString(styles.SuccessText.Render("n"))
	b.WriteString(styles.MutedText.Render(" keep"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Width(52)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
