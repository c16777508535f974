package answer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hallo ", "hallo"},
		{"für", "fur"},
		{"ÄÖÜ", "aou"},
		{"Straße", "strasse"},
		{"STRASSE", "strasse"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		input, expected string
		want            bool
	}{
		{"für", "fur", true},
		{"fur", "für", true},
		{"für", "fuer", false},
		{"Müller", "MULLER", true},
		{"Müller", "Mueller", false},
		{"der hund", "der Hund", true},
		{"strasse", "Straße", true},
		{"hund", "der Hund", false},
		{" schön ", "schon", true},
	}
	for _, tt := range tests {
		if got := Matches(tt.input, tt.expected); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.input, tt.expected, got, tt.want)
		}
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in     string
		n      int
		want   int
		wantOK bool
	}{
		{"1", 4, 0, true},
		{" 4 ", 4, 3, true},
		{"5", 4, 0, false},
		{"0", 4, 0, false},
		{"-1", 4, 0, false},
		{"abc", 4, 0, false},
		{"", 4, 0, false},
		{"2", 2, 1, true},
	}
	for _, tt := range tests {
		got, ok := ParseChoice(tt.in, tt.n)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseChoice(%q, %d) = (%d, %v), want (%d, %v)", tt.in, tt.n, got, ok, tt.want, tt.wantOK)
		}
	}
}
