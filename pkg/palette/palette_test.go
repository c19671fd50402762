package palette

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	p, err := New([]string{"a_10000000.png", "b_00100000.png"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}

	if _, err := New(nil); err == nil {
		t.Error("New(nil) error = nil, want error")
	}
	if _, err := New([]string{"a.png", "a.png"}); err == nil {
		t.Error("New with duplicates error = nil, want error")
	}
}

func TestNew_CopiesInput(t *testing.T) {
	in := []string{"a_10000000.png", "b_00100000.png"}
	p, err := New(in)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	in[0] = "mutated.png"
	if p.Identities[0] != "a_10000000.png" {
		t.Error("New should copy the input slice")
	}
}

func TestSignature(t *testing.T) {
	a, _ := New([]string{"x.png", "y.png"})
	b, _ := New([]string{"y.png", "x.png"})
	if a.Signature() == b.Signature() {
		t.Error("Signature should depend on palette order")
	}
}

func TestTable(t *testing.T) {
	p, _ := New([]string{"a_10000000.png", "b_00100000.png"})
	tab := p.Table()
	if tab.Size() != 2 {
		t.Errorf("Table().Size() = %d, want 2", tab.Size())
	}
}

func TestSortByConnections(t *testing.T) {
	p, _ := New([]string{
		"cross_10101010.png",    // 4 connectors
		"decor/pebbles.png",     // no signature
		"cap_00100000.png",      // 1 connector
		"straight_00100010.png", // 2 connectors
	})

	sorted := p.SortByConnections()
	want := []string{
		"cap_00100000.png",
		"straight_00100010.png",
		"cross_10101010.png",
		"decor/pebbles.png",
	}
	if !slices.Equal(sorted.Identities, want) {
		t.Errorf("SortByConnections() = %v, want %v", sorted.Identities, want)
	}

	// The receiver keeps its original order.
	if p.Identities[0] != "cross_10101010.png" {
		t.Error("SortByConnections mutated the receiver")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.txt")
	content := "# roads\nroads/cap_00100000.png\n\nroads/straight_00100010.png\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	want := []string{"roads/cap_00100000.png", "roads/straight_00100010.png"}
	if !slices.Equal(p.Identities, want) {
		t.Errorf("LoadFile() = %v, want %v", p.Identities, want)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("LoadFile(missing) error = nil, want error")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"roads/cap_00100000.png",
		"roads/straight_00100010.png",
		"decor/pebbles.png",
		"notes.txt", // skipped
	}
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	p, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir error: %v", err)
	}
	want := []string{
		"decor/pebbles.png",
		"roads/cap_00100000.png",
		"roads/straight_00100010.png",
	}
	if !slices.Equal(p.Identities, want) {
		t.Errorf("LoadDir() = %v, want %v", p.Identities, want)
	}
}
