package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"  Treatment Approaches ", 0, "Treatment Approaches"},
		{"Treatment", 20, "Treatment"},
		{"Treatment Approaches", 12, "Treatment..."},
		{"Treatment", 2, "Tr"},
		{"رویکردهای درمانی", 7, "رویک..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}
