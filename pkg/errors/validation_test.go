package errors

import (
	"strings"
	"testing"
)

func TestValidateIdentity(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		wantErr  bool
	}{
		{"simple identity", "roads/corner_10000010.png", false},
		{"no signature", "decor/pebbles.png", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 257), true},
		{"control character", "tile\x01.png", true},
		{"path traversal", "../etc/passwd", true},
		{"double slash", "roads//corner.png", true},
		{"backslash", "roads\\corner.png", true},
		{"absolute path", "/roads/corner.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentity(tt.identity)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentity(%q) error = %v, wantErr %v", tt.identity, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidIdentity) {
				t.Errorf("ValidateIdentity(%q) code = %v, want %v", tt.identity, GetCode(err), ErrCodeInvalidIdentity)
			}
		})
	}
}

func TestValidatePalette(t *testing.T) {
	tests := []struct {
		name    string
		palette []string
		wantErr bool
	}{
		{"valid", []string{"a_10000000.png", "b_00100000.png"}, false},
		{"empty", nil, true},
		{"duplicate identity", []string{"a.png", "a.png"}, true},
		{"bad entry", []string{"a.png", "../b.png"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePalette(tt.palette)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePalette(%v) error = %v, wantErr %v", tt.palette, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPalette) {
				t.Errorf("ValidatePalette(%v) code = %v, want %v", tt.palette, GetCode(err), ErrCodeInvalidPalette)
			}
		})
	}
}

func TestValidateCanvasName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Garden Path", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("x", 121), true},
		{"control character", "bad\nname", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCanvasName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCanvasName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGeometry(t *testing.T) {
	tests := []struct {
		name          string
		rows, columns int
		tileSize, gap float64
		wantErr       bool
	}{
		{"valid", 8, 10, 50, 2, false},
		{"zero rows", 0, 10, 50, 0, true},
		{"negative columns", 8, -1, 50, 0, true},
		{"too many cells", 5000, 10, 50, 0, true},
		{"zero tile size", 8, 10, 0, 0, true},
		{"negative gap", 8, 10, 50, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGeometry(tt.rows, tt.columns, tt.tileSize, tt.gap)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGeometry(%d, %d, %v, %v) error = %v, wantErr %v",
					tt.rows, tt.columns, tt.tileSize, tt.gap, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGeometry) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidGeometry)
			}
		})
	}
}
