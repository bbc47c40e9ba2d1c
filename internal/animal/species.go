package animal

import (
	"image/color"

	"ropepen/internal/rng"
)

// Species is the fixed kind of an animal.
type Species int

const (
	Wolf Species = iota
	Sheep
	Cow
	speciesCount
)

var speciesInfo = [speciesCount]struct {
	name  string
	color color.RGBA
}{
	Wolf:  {"Wolf", color.RGBA{R: 130, G: 130, B: 130, A: 255}},
	Sheep: {"Sheep", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	Cow:   {"Cow", color.RGBA{R: 127, G: 106, B: 79, A: 255}},
}

func (s Species) valid() bool {
	return s >= 0 && s < speciesCount
}

func (s Species) String() string {
	if !s.valid() {
		return "Unknown"
	}
	return speciesInfo[s].name
}

// Color is the display color of the species.
func (s Species) Color() color.RGBA {
	if !s.valid() {
		return color.RGBA{A: 255}
	}
	return speciesInfo[s].color
}

// RandomSpecies picks one species uniformly.
func RandomSpecies(src rng.Source) Species {
	return Species(rng.Range(src, 0, int(speciesCount)-1))
}
