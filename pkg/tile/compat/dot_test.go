package compat

import (
	"strings"
	"testing"
)

func TestToDOT(t *testing.T) {
	tab := Build([]string{
		"a_10000000.png",
		"b_00100000.png",
		"decor/pebbles.png",
	})

	dot := tab.ToDOT(DotOptions{})

	if !strings.HasPrefix(dot, "graph Palette {") {
		t.Errorf("DOT does not start with graph header:\n%s", dot)
	}
	if !strings.Contains(dot, "t0 ") || !strings.Contains(dot, "t1 ") {
		t.Errorf("DOT missing tile nodes:\n%s", dot)
	}
	// pebbles has no signature and must not appear.
	if strings.Contains(dot, "t2 ") {
		t.Errorf("DOT contains node for unparseable tile:\n%s", dot)
	}
	// a and b are rotations of each other, so they share variant keys.
	if !strings.Contains(dot, "t0 -- t1") {
		t.Errorf("DOT missing interchange edge:\n%s", dot)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	tab := Build([]string{"a_10000000.png", "b_00100000.png"})

	dot := tab.ToDOT(DotOptions{Detailed: true})
	if !strings.Contains(dot, "10000000") {
		t.Errorf("detailed DOT missing mask keys:\n%s", dot)
	}
}

func TestTileLabel(t *testing.T) {
	tests := []struct {
		identity string
		want     string
	}{
		{"roads/corner_10000010.png", "corner"},
		{"cap_00100000", "cap"},
		{"10000010.png", "10000010"},
	}
	for _, tt := range tests {
		if got := tileLabel(tt.identity); got != tt.want {
			t.Errorf("tileLabel(%q) = %q, want %q", tt.identity, got, tt.want)
		}
	}
}
