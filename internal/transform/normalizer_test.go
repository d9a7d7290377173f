package transform

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name      string
		candidate any
		want      string
	}{
		{"Trims and uppercases", "  john doe  ", "JOHN DOE"},
		{"Already uppercase", "JANE", "JANE"},
		{"Empty string", "", ""},
		{"Nil", nil, ""},
		{"Non-string", 7.0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.candidate); got != tt.want {
				t.Errorf("NormalizeName(%v) = %q, want %q", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestFullAddress(t *testing.T) {
	tests := []struct {
		name      string
		candidate any
		want      string
	}{
		{
			name: "All components",
			candidate: map[string]any{
				"street":  "123 Main St",
				"suite":   "Apt 4",
				"city":    "New York",
				"zipcode": "10001",
			},
			want: "123 Main St, Apt 4, New York, 10001",
		},
		{
			name: "Empty component skipped, order preserved",
			candidate: map[string]any{
				"street":  "123 Main St",
				"suite":   "",
				"city":    "New York",
				"zipcode": "10001",
			},
			want: "123 Main St, New York, 10001",
		},
		{
			name: "Components trimmed",
			candidate: map[string]any{
				"city":    "  Springfield  ",
				"zipcode": " 62704 ",
			},
			want: "Springfield, 62704",
		},
		{
			name: "Fixed order regardless of insertion",
			candidate: map[string]any{
				"zipcode": "10001",
				"street":  "123 Main St",
			},
			want: "123 Main St, 10001",
		},
		{
			name: "Non-string component skipped",
			candidate: map[string]any{
				"street": 123.0,
				"city":   "New York",
			},
			want: "New York",
		},
		{"Empty map", map[string]any{}, ""},
		{"All components blank", map[string]any{"street": "  ", "city": ""}, ""},
		{"Nil", nil, ""},
		{"Non-map", "123 Main St", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FullAddress(tt.candidate); got != tt.want {
				t.Errorf("FullAddress(%v) = %q, want %q", tt.candidate, got, tt.want)
			}
		})
	}
}
