package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Book mirrors a catalog record as returned by the backend. The id is
// backend-assigned and immutable; media URLs are plain strings and may be
// empty.
type Book struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	TextSummary     string `json:"text_summary"`
	CoverImageURL   string `json:"cover_image_url"`
	AudioSummaryURL string `json:"audio_summary_url"`
}

// HasCover reports whether the book carries a cover image link.
func (b Book) HasCover() bool {
	return strings.TrimSpace(b.CoverImageURL) != ""
}

// HasAudio reports whether the book carries an audio summary link.
func (b Book) HasAudio() bool {
	return strings.TrimSpace(b.AudioSummaryURL) != ""
}

// Draft is the in-progress, not-yet-submitted representation of a new Book.
// The zero value is the empty draft.
type Draft struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	TextSummary     string `json:"text_summary"`
	CoverImageURL   string `json:"cover_image_url"`
	AudioSummaryURL string `json:"audio_summary_url"`
}

// Validate checks the required fields. It reports the first missing one so
// the form can surface a single actionable message.
func (d Draft) Validate() error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"title", d.Title},
		{"author", d.Author},
		{"category", d.Category},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s is required", field.name)
		}
	}
	return nil
}

// Query carries the list filters. Empty fields mean "no filter".
type Query struct {
	Text     string
	Category string
}

// IsZero reports whether no filter is active.
func (q Query) IsZero() bool {
	return strings.TrimSpace(q.Text) == "" && strings.TrimSpace(q.Category) == ""
}

// Categories derives the selectable category options from a book list: the
// distinct non-empty trimmed category values, sorted lexicographically.
// Trimming does not fold case, so case-distinct values stay distinct.
func Categories(books []Book) []string {
	seen := make(map[string]struct{}, len(books))
	var out []string
	for _, b := range books {
		c := strings.TrimSpace(b.Category)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
