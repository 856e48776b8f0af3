package text

// CharacterCoordinates holds the cached layout metrics of one character of
// a Line.
//
// The box is in scaled pixel space with the y axis pointing down, relative
// to the pen position on the baseline. Width is the rounded scaled advance.
// LeftBearing stays in font units and is scaled at placement time.
// KerningOffset is the rounded scaled kerning towards the character that
// followed the first occurrence of this character in the line.
type CharacterCoordinates struct {
	X1, Y1 int
	X2, Y2 int

	Width         int
	LeftBearing   int
	KerningOffset int
}

// BoxWidth returns the width of the glyph bitmap box.
func (c CharacterCoordinates) BoxWidth() int {
	return c.X2 - c.X1
}

// BoxHeight returns the height of the glyph bitmap box.
func (c CharacterCoordinates) BoxHeight() int {
	return c.Y2 - c.Y1
}
