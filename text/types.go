package text

// GlyphID is a glyph index within a font.
type GlyphID uint16

// Rect represents a rectangle for glyph bounds.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// CharacterRange is an inclusive interval of codepoints packed into an atlas.
//
// A range derived from an alphabet covers every codepoint between the
// smallest and the largest byte of the alphabet, not only the bytes that
// appear in it. "![a-zA-Z]~" therefore covers all 94 printable ASCII
// characters from '!' to '~'.
type CharacterRange struct {
	Min rune
	Max rune
}

// RangeFromAlphabet returns the character range spanned by the bytes of alphabet.
// It returns ErrEmptyAlphabet if alphabet has no bytes.
func RangeFromAlphabet(alphabet string) (CharacterRange, error) {
	if len(alphabet) == 0 {
		return CharacterRange{}, ErrEmptyAlphabet
	}
	lo, hi := alphabet[0], alphabet[0]
	for i := 1; i < len(alphabet); i++ {
		c := alphabet[i]
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	return CharacterRange{Min: rune(lo), Max: rune(hi)}, nil
}

// Len returns the number of codepoints in the range.
func (r CharacterRange) Len() int {
	if r.Max < r.Min {
		return 0
	}
	return int(r.Max-r.Min) + 1
}

// Contains reports whether c lies inside the range.
func (r CharacterRange) Contains(c rune) bool {
	return c >= r.Min && c <= r.Max
}

// Index returns the position of c inside the range, or -1 if c is outside.
func (r CharacterRange) Index(c rune) int {
	if !r.Contains(c) {
		return -1
	}
	return int(c - r.Min)
}

// String returns a printable form of the range, e.g. "['!', '~']".
func (r CharacterRange) String() string {
	return "[" + quoteRune(r.Min) + ", " + quoteRune(r.Max) + "]"
}
