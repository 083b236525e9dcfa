package parser

import "testing"

func TestParseCompactNumber(t *testing.T) {
	tests := []struct {
		token string
		want  int64
		ok    bool
	}{
		{"1.2k", 1200, true},
		{"3m", 3000000, true},
		{"452", 452, true},
		{"1,234", 1234, true},
		{"2.5K", 2500, true},
		{"1.1M", 1100000, true},
		{" 42 ", 42, true},
		{"", 0, false},
		{"abc", 0, false},
		{"k", 0, false},
		{"12x", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseCompactNumber(tt.token)
		if ok != tt.ok {
			t.Errorf("ParseCompactNumber(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseCompactNumber(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}
