package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ajgould/bookdeck/internal/catalog"
)

// Form field order matches the create payload.
type formField int

const (
	fieldTitle formField = iota
	fieldAuthor
	fieldCategory
	fieldDescription
	fieldTextSummary
	fieldCoverURL
	fieldAudioURL
	fieldCount
)

var formLabels = [fieldCount]string{
	"Title *",
	"Author *",
	"Category *",
	"Description",
	"Text summary",
	"Cover image URL",
	"Audio summary URL",
}

// formModel holds the create-form draft: one input per Book field minus the
// backend-assigned id.
type formModel struct {
	inputs [fieldCount]textinput.Model
	focus  formField
}

func newFormModel() formModel {
	var f formModel
	placeholders := [fieldCount]string{
		"The Left Hand of Darkness",
		"Ursula K. Le Guin",
		"Sci-Fi",
		"one or two lines shown in the list",
		"long-form summary shown when expanded",
		"https://…/cover.jpg",
		"https://…/summary.mp3",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 512
		ti.Prompt = ""
		f.inputs[i] = ti
	}
	f.inputs[fieldTextSummary].CharLimit = 8192
	f.inputs[fieldTitle].Focus()
	return f
}

// draft assembles the current input values.
func (f *formModel) draft() catalog.Draft {
	return catalog.Draft{
		Title:           strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Author:          strings.TrimSpace(f.inputs[fieldAuthor].Value()),
		Category:        strings.TrimSpace(f.inputs[fieldCategory].Value()),
		Description:     strings.TrimSpace(f.inputs[fieldDescription].Value()),
		TextSummary:     strings.TrimSpace(f.inputs[fieldTextSummary].Value()),
		CoverImageURL:   strings.TrimSpace(f.inputs[fieldCoverURL].Value()),
		AudioSummaryURL: strings.TrimSpace(f.inputs[fieldAudioURL].Value()),
	}
}

// reset clears every input and returns focus to the title field.
func (f *formModel) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = fieldTitle
	f.inputs[fieldTitle].Focus()
}

func (f *formModel) setWidth(width int) {
	for i := range f.inputs {
		f.inputs[i].Width = width
	}
}

func (f *formModel) nextField() {
	f.setFocus((f.focus + 1) % fieldCount)
}

func (f *formModel) prevField() {
	f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *formModel) setFocus(field formField) {
	f.inputs[f.focus].Blur()
	f.focus = field
	f.inputs[f.focus].Focus()
}

// update routes input events to the focused field.
func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// view renders the form with labels, marking the focused field.
func (f formModel) view(theme Theme, width int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Add a book"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("* required — enter submits, tab moves, esc cancels"))
	b.WriteString("\n\n")

	for i := range f.inputs {
		label := formLabels[i]
		if formField(i) == f.focus {
			b.WriteString(styles.AccentText.Render(padRight("▸ "+label, 20)))
		} else {
			b.WriteString(styles.MutedText.Render(padRight("  "+label, 20)))
		}
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	pane := styles.Pane
	if width > 4 {
		pane = pane.Width(width - 2)
	}
	return pane.Render(b.String())
}
