package geo

import (
	"math"
	"testing"

	"meeting-itinerary-service/internal/domain"
)

func TestDistanceMiles(t *testing.T) {
	sf := domain.Location{Lat: 37.7749, Lon: -122.4194}
	la := domain.Location{Lat: 34.0522, Lon: -118.2437}

	got := DistanceMiles(sf, la)
	// Known great-circle distance SF -> LA is roughly 347 miles.
	if math.Abs(got-347.4) > 1.5 {
		t.Errorf("DistanceMiles(SF, LA) = %.2f, want ~347.4", got)
	}

	if back := DistanceMiles(la, sf); math.Abs(back-got) > 1e-9 {
		t.Errorf("distance not symmetric: %.6f vs %.6f", got, back)
	}
}

func TestDistanceMilesSamePoint(t *testing.T) {
	p := domain.Location{Lat: 40.0, Lon: -75.0}
	if got := DistanceMiles(p, p); got != 0 {
		t.Errorf("DistanceMiles(p, p) = %v, want 0", got)
	}
}

func TestDistanceMilesOutOfRangeDoesNotPanic(t *testing.T) {
	a := domain.Location{Lat: 500, Lon: -1000}
	b := domain.Location{Lat: -500, Lon: 1000}
	got := DistanceMiles(a, b)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("DistanceMiles out-of-range = %v, want finite", got)
	}
}

func TestTravelMinutes(t *testing.T) {
	cases := []struct {
		miles float64
		want  int64
	}{
		{0, 0},
		{30, 60},
		{1, 2},
		{15.1, 30},
		{0.2, 0},
		{45, 90},
	}

	for _, c := range cases {
		if got := TravelMinutes(c.miles); got != c.want {
			t.Errorf("TravelMinutes(%v) = %d, want %d", c.miles, got, c.want)
		}
	}
}
