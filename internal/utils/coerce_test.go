package utils

import "testing"

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string // "" means nil expected
	}{
		{"2024-03-15", "2024-03-15"},
		{"03/15/2024", "2024-03-15"},
		{"2024/03/15", "2024-03-15"},
		{"15-Mar-2024", "2024-03-15"},
		{"Mar 15, 2024", "2024-03-15"},
		{"March 15, 2024", "2024-03-15"},
		{"", ""},
		{"not a date", ""},
		{"TBD", ""},
	}
	for _, tc := range cases {
		got := ParseDate(tc.in)
		if tc.want == "" {
			if got != nil {
				t.Errorf("ParseDate(%q) = %v, want nil", tc.in, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseDate(%q) = nil, want %s", tc.in, tc.want)
			continue
		}
		if got.Format("2006-01-02") != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got.Format("2006-01-02"), tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		nil_ bool
	}{
		{"100.00", 100, false},
		{"$1,234.50", 1234.5, false},
		{"  42 ", 42, false},
		{"-15.25", -15.25, false},
		{"USD 99.99", 99.99, false},
		{"", 0, true},
		{"N/A", 0, true},
	}
	for _, tc := range cases {
		got := ParseAmount(tc.in)
		if tc.nil_ {
			if got != nil {
				t.Errorf("ParseAmount(%q) = %v, want nil", tc.in, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseAmount(%q) = nil, want %v", tc.in, tc.want)
			continue
		}
		if *got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, *got, tc.want)
		}
	}
}
