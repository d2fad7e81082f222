package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		value string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-ten.", 12, "exactly-ten."},
		{"a very long title that keeps going", 10, "a very lo…"},
		{"  padded  ", 10, "padded"},
		{"abc", 0, "abc"},
		{"abcdef", 2, "ab"},
	}
	for _, tc := range cases {
		if got := truncate(tc.value, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.value, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("https://example.com/covers/dune-first-edition.jpg", 20)
	if len([]rune(got)) != 20 {
		t.Fatalf("truncateMiddle length = %d, want 20 (%q)", len([]rune(got)), got)
	}
	if got[:5] != "https" {
		t.Fatalf("truncateMiddle = %q, want prefix preserved", got)
	}
	if got := truncateMiddle("short", 20); got != "short" {
		t.Fatalf("truncateMiddle(short) = %q, want unchanged", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("padRight = %q, want unchanged when longer", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("one\ntwo\nthree"); got != "one" {
		t.Fatalf("firstLine = %q, want one", got)
	}
	if got := firstLine("  solo  "); got != "solo" {
		t.Fatalf("firstLine = %q, want solo", got)
	}
}
