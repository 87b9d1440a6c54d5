package domain

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"09:05", 545},
		{"23:59", 1439},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseClockInvalid(t *testing.T) {
	cases := []string{
		"",
		"8",
		"08:00:00",
		"24:00",
		"12:60",
		"-1:30",
		"ab:cd",
		"12-30",
	}

	for _, c := range cases {
		_, err := ParseClock(c)
		if err == nil {
			t.Errorf("ParseClock(%q) expected error, got nil", c)
			continue
		}
		if !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("ParseClock(%q) error = %v, want ErrInvalidTimeFormat", c, err)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "00:00"},
		{480, "08:00"},
		{545, "09:05"},
		{1439, "23:59"},
		// No day-wrap: offsets past midnight render out of range.
		{1500, "25:00"},
	}

	for _, c := range cases {
		if got := FormatClock(c.in); got != c.want {
			t.Errorf("FormatClock(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "08:15", "13:45", "23:59"} {
		m, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q) unexpected error: %v", s, err)
		}
		if got := FormatClock(m); got != s {
			t.Errorf("FormatClock(ParseClock(%q)) = %q", s, got)
		}
	}
}
