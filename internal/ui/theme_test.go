package ui

import "testing"

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	got := GetTheme("no-such-theme")
	if got.Name != "Nightfox" {
		t.Fatalf("GetTheme fallback = %q, want Nightfox", got.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	if len(names) < 2 {
		t.Fatalf("ThemeNames = %v, want at least 2", names)
	}

	seen := map[string]bool{}
	current := names[0]
	for range names {
		seen[current] = true
		current = NextTheme(current)
	}
	if current != names[0] {
		t.Fatalf("cycle did not wrap: ended at %q", current)
	}
	for _, name := range names {
		if !seen[name] {
			t.Fatalf("theme %q never visited", name)
		}
	}

	if got := NextTheme("no-such-theme"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestThemes_HaveCompletePalettes(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for field, value := range map[string]string{
			"Background": theme.Background,
			"Text":       theme.Text,
			"Muted":      theme.Muted,
			"Accent":     theme.Accent,
			"Danger":     theme.Danger,
		} {
			if value == "" {
				t.Fatalf("theme %q missing %s", name, field)
			}
		}
	}
}
