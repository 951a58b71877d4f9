package entity

import "fmt"

// Intensity is the training load category for a single day. The values form
// an ordered ladder; Distance measures how many categories apart two values
// are, which drives the scheduler's replan decision.
type Intensity string

const (
	IntensityRest     Intensity = "rest"
	IntensityDeload   Intensity = "deload"
	IntensityEasy     Intensity = "easy"
	IntensityModerate Intensity = "moderate"
	IntensityHard     Intensity = "hard"
	IntensityPeak     Intensity = "peak"
)

// IntensityLadder lists all intensities ordered low to high.
var IntensityLadder = []Intensity{
	IntensityRest,
	IntensityDeload,
	IntensityEasy,
	IntensityModerate,
	IntensityHard,
	IntensityPeak,
}

// Index returns the position of the intensity on the ladder, or -1 for an
// unknown value.
func (i Intensity) Index() int {
	for idx, v := range IntensityLadder {
		if v == i {
			return idx
		}
	}
	return -1
}

// Valid reports whether the value is one of the known intensities.
func (i Intensity) Valid() bool {
	return i.Index() >= 0
}

// Distance returns the absolute ladder distance between two intensities.
func (i Intensity) Distance(other Intensity) int {
	d := i.Index() - other.Index()
	if d < 0 {
		return -d
	}
	return d
}

// ParseIntensity converts a stored string into an Intensity.
func ParseIntensity(s string) (Intensity, error) {
	i := Intensity(s)
	if !i.Valid() {
		return "", fmt.Errorf("unknown intensity %q", s)
	}
	return i, nil
}
