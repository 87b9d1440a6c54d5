package domain

// Immutable geographic coordinates in decimal degrees.
type Location struct {
	Lat float64
	Lon float64
}
