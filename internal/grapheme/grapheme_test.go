package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "世" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestStringWidth_WideAndCombining(t *testing.T) {
	if got := StringWidth("é"); got != 1 {
		t.Fatalf("combining width=%d, want 1", got)
	}
	if got := StringWidth("世界"); got != 4 {
		t.Fatalf("wide width=%d, want 4", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		text  string
		width int
		tail  string
		want  string
	}{
		{"hello", 10, "…", "hello"},
		{"hello", 5, "…", "hello"},
		{"hello", 4, "…", "hel…"},
		{"hello", 3, "", "hel"},
		{"hello", 0, "…", ""},
		// A wide cluster never straddles the limit.
		{"a世b", 2, "", "a"},
		{"ééé", 2, "", "éé"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.text, tt.width, tt.tail); got != tt.want {
			t.Fatalf("Truncate(%q,%d,%q)=%q, want %q", tt.text, tt.width, tt.tail, got, tt.want)
		}
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 4, "…"); got != "ab  " {
		t.Fatalf("pad=%q, want %q", got, "ab  ")
	}
	if got := Pad("abcdef", 4, "…"); got != "abc…" {
		t.Fatalf("pad truncated=%q, want %q", got, "abc…")
	}
	if got := Pad("a世b", 2, ""); got != "a " {
		t.Fatalf("pad wide=%q, want %q", got, "a ")
	}
}

func TestFlatten(t *testing.T) {
	if got := Flatten("a\nb\tc"); got != "a b c" {
		t.Fatalf("flatten=%q, want %q", got, "a b c")
	}
	if got := Flatten("plain"); got != "plain" {
		t.Fatalf("flatten plain=%q", got)
	}
}
