package types

import (
	"testing"
)

func TestEditSetLastOccurrenceWins(t *testing.T) {
	set := NewEditSet()
	set.Add(FileEdit{Path: "a.txt", Content: "first"})
	set.Add(FileEdit{Path: "b.txt", Content: "other"})
	set.Add(FileEdit{Path: "a.txt", Content: "second"})

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
	if content, _ := set.Get("a.txt"); content != "second" {
		t.Errorf("Get(a.txt) = %q, want %q", content, "second")
	}
	if set.Edits()[0].Path != "a.txt" {
		t.Errorf("insertion order not preserved: %v", set.Edits())
	}
}

func TestValidRelativePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"main.go", true},
		{"src/app.py", true},
		{"a/b/../c.txt", true},
		{"", false},
		{"/etc/passwd", false},
		{"..", false},
		{"../escape.txt", false},
		{"a/../../escape.txt", false},
	}
	for _, tt := range tests {
		if got := ValidRelativePath(tt.path); got != tt.want {
			t.Errorf("ValidRelativePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestParseScaffoldType(t *testing.T) {
	tests := []struct {
		in   string
		want ScaffoldType
	}{
		{"CREATES_OWN_DIR", ScaffoldCreatesOwnDir},
		{" needs_empty_dir ", ScaffoldNeedsEmptyDir},
		{"IN_PLACE", ScaffoldInPlace},
		{"NONE", ScaffoldNone},
		{"", ScaffoldNone},
		{"something else", ScaffoldNone},
	}
	for _, tt := range tests {
		if got := ParseScaffoldType(tt.in); got != tt.want {
			t.Errorf("ParseScaffoldType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
