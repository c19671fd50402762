package cli

import "testing"

func TestParseRect(t *testing.T) {
	tests := []struct {
		input   string
		want    [4]int
		wantErr bool
	}{
		{input: "0,0,2,2", want: [4]int{0, 0, 2, 2}},
		{input: "1, 2, 3, 4", want: [4]int{1, 2, 3, 4}},
		{input: "1,2,3", wantErr: true},
		{input: "1,2,3,4,5", wantErr: true},
		{input: "a,2,3,4", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			minRow, minCol, maxRow, maxCol, err := parseRect(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseRect(%q) = nil error, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRect(%q) error: %v", tt.input, err)
			}
			got := [4]int{minRow, minCol, maxRow, maxCol}
			if got != tt.want {
				t.Errorf("parseRect(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
