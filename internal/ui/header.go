package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the top status line: logo, backend address, book
// count, active filters, in-flight indicator, and reachability.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{
		styles.Logo.Render("BOOKDECK"),
		styles.FaintText.Render(truncateMiddle(m.backendURL, 32)),
		styles.MutedText.Render(fmt.Sprintf("%d books", len(m.snapshot.Books))),
	}

	if text := strings.TrimSpace(m.query.Text); text != "" {
		parts = append(parts, styles.AccentText.Render(fmt.Sprintf("q:%q", text)))
	}
	if m.query.Category != "" {
		parts = append(parts, styles.AccentText.Render("category:"+m.query.Category))
	}

	switch {
	case m.submitting:
		parts = append(parts, m.spin.View()+styles.WarningText.Render("saving"))
	case m.loading:
		parts = append(parts, m.spin.View()+styles.WarningText.Render("loading"))
	}

	switch m.ping {
	case pingOK:
		parts = append(parts, styles.SuccessText.Render("backend ok"))
	case pingFailed:
		parts = append(parts, styles.DangerText.Render("backend unreachable"))
	}

	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, styles.FaintText.Render(m.snapshot.LastUpdated.Format("15:04:05")))
	}

	return strings.Join(parts, "  ")
}

// renderBanner renders the single session-level error line, or nothing.
func (m Model) renderBanner() string {
	if m.errorMsg == "" {
		return ""
	}
	styles := m.theme.Styles()
	return styles.DangerText.Render("✗ " + truncate(m.errorMsg, m.width-4))
}

// renderFooter renders the context-sensitive key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var hints []string
	switch {
	case m.currentView == ViewForm:
		hints = []string{"enter submit", "tab next field", "esc cancel"}
	case m.searching:
		hints = []string{"enter search", "esc cancel"}
	default:
		hints = []string{"enter summary", "a add", "x delete", "/ search", "f filter", "r refresh", "? help", "q quit"}
	}
	return styles.FaintText.Render(strings.Join(hints, " · "))
}
