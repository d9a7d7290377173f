package transform

import "testing"

func TestNewEmailValidator(t *testing.T) {
	v := NewEmailValidator()
	if v == nil {
		t.Fatal("NewEmailValidator returned nil")
	}
}

func TestEmailValidator_Validate(t *testing.T) {
	v := NewEmailValidator()

	tests := []struct {
		name      string
		candidate any
		want      bool
	}{
		{"Simple address", "test@example.com", true},
		{"Dotted local part and multi-label domain", "user.name@domain.co.uk", true},
		{"Plus tag", "user+tag@example.com", true},
		{"Percent and underscore", "user_%x@example.com", true},
		{"Hyphenated local part", "first-last@example.com", true},
		{"Surrounding whitespace", "  test@example.com  ", true},
		{"Missing local part", "@example.com", false},
		{"Missing domain", "test@", false},
		{"Domain ends in dot", "test@example.", false},
		{"No at sign", "testexample.com", false},
		{"Single-letter TLD", "test@example.c", false},
		{"Numeric TLD", "test@example.12", false},
		{"Consecutive dots in local part", "a..b@example.com", false},
		{"Empty string", "", false},
		{"Nil", nil, false},
		{"Non-string number", 42.0, false},
		{"Non-string slice", []any{"test@example.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Validate(tt.candidate); got != tt.want {
				t.Errorf("Validate(%v) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}
