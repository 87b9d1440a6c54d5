package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Returned when a meeting's wall-clock string is not a valid "HH:MM" time.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// Convert an "HH:MM" wall-clock string to minutes since midnight.
// The string must be exactly two colon-separated integers with hour 0-23
// and minute 0-59; anything else wraps ErrInvalidTimeFormat.
func ParseClock(s string) (int64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return int64(hour)*60 + int64(minute), nil
}

// Render minutes since midnight as a zero-padded "HH:MM" string.
// No day-wrap is performed: minute 1500 renders as "25:00". Placements
// spilling past midnight keep their raw offsets so evening overflow stays
// visible to the caller instead of silently folding into the next day.
func FormatClock(minutes int64) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
