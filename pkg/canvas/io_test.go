package canvas

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tileforge/mosaic/pkg/tile"
)

func TestJSONRoundTrip(t *testing.T) {
	c := testCanvas(t)
	if err := c.Set(4, tile.Placement{Tile: 1, Rotation: 3, MirrorX: true}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(c, &buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	if got.ID != c.ID || got.Name != c.Name {
		t.Errorf("round trip changed identity: %s/%s vs %s/%s", got.ID, got.Name, c.ID, c.Name)
	}
	if got.Geometry != c.Geometry {
		t.Errorf("round trip changed geometry: %+v vs %+v", got.Geometry, c.Geometry)
	}
	if p := got.At(4); p != c.At(4) {
		t.Errorf("round trip changed cell 4: %+v vs %+v", p, c.At(4))
	}
}

func TestReadJSON_Validation(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{"name":`},
		{"empty name", `{"name":"","geometry":{"rows":3,"columns":3,"tile_size":50},"palette":["a.png"]}`},
		{"bad geometry", `{"name":"x","geometry":{"rows":0,"columns":3,"tile_size":50},"palette":["a.png"]}`},
		{"empty palette", `{"name":"x","geometry":{"rows":3,"columns":3,"tile_size":50},"palette":[]}`},
		{"cell out of grid", `{"name":"x","geometry":{"rows":3,"columns":3,"tile_size":50},"palette":["a.png"],"cells":{"9":{"tile":0}}}`},
		{"cell tile out of palette", `{"name":"x","geometry":{"rows":3,"columns":3,"tile_size":50},"palette":["a.png"],"cells":{"0":{"tile":5}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.json)); err == nil {
				t.Error("ReadJSON error = nil, want error")
			}
		})
	}
}

func TestImportExportJSON(t *testing.T) {
	c := testCanvas(t)
	if err := c.Set(0, tile.Placement{Tile: 0}); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "canvas.json")
	if err := ExportJSON(c, path); err != nil {
		t.Fatalf("ExportJSON error: %v", err)
	}

	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON error: %v", err)
	}
	if got.At(0) != c.At(0) {
		t.Errorf("imported cell 0 = %+v, want %+v", got.At(0), c.At(0))
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportJSON(missing) error = nil, want error")
	}
}
