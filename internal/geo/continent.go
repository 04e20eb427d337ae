package geo

import "image/color"

// Continent is one of the fixed region labels used to classify countries.
type Continent string

// Known continent labels.
const (
	Americas   Continent = "Americas"
	Oceania    Continent = "Oceania"
	Europe     Continent = "Europe"
	Africa     Continent = "Africa"
	Asia       Continent = "Asia"
	Antarctica Continent = "Antarctica"
)

// Continents lists every known label.
var Continents = []Continent{Americas, Oceania, Europe, Africa, Asia, Antarctica}

// UnknownColor is used for labels outside the known set.
var UnknownColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

var palette = map[Continent]color.RGBA{
	Africa:     {R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
	Asia:       {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	Europe:     {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	Americas:   {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	Oceania:    {R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
	Antarctica: {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// Valid reports whether c is one of the known labels.
func (c Continent) Valid() bool {
	_, ok := palette[c]
	return ok
}

// Color returns the display color shared with the web viewer.
func (c Continent) Color() color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return UnknownColor
}

func (c Continent) String() string {
	return string(c)
}
