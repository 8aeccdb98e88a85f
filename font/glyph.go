package font

import "errors"
import "strconv"

// Default glyph range for bitmap fonts: 32 (space) to 287.
const (
	DefaultFirstChar rune = 32
	DefaultNumChars int = 256
)

// Returned (wrapped) when trying to add a glyph outside the table range.
var ErrGlyphRange = errors.New("glyph outside of the font range")

// Metrics for a single character of a bitmap font.
//
// The glyph image is drawn at (caretX + HOffset, caretY + VOffset), and
// the caret is then advanced by Advance.
type Glyph struct {
	Char rune
	Advance int
	HOffset int
	VOffset int
}

// A mapping from characters to [Glyph] metrics, covering a contiguous
// range of code points. Characters without a glyph are unmapped: they
// have no advance and are never drawn.
//
// Glyph tables are immutable once created.
type GlyphTable struct {
	first rune
	glyphs []Glyph
	mapped []bool
	count int
}

// Creates a glyph table for the range [first, first + numChars) with
// the given glyphs. Later glyphs override earlier ones for the same
// character. Glyphs outside the range return an error wrapping
// [ErrGlyphRange].
func NewGlyphTable(first rune, numChars int, glyphs []Glyph) (*GlyphTable, error) {
	if numChars <= 0 { return nil, errors.New("glyph table requires numChars > 0") }
	if first < 0 { return nil, errors.New("glyph table requires first >= 0") }

	table := &GlyphTable{
		first: first,
		glyphs: make([]Glyph, numChars),
		mapped: make([]bool, numChars),
	}
	for _, glyph := range glyphs {
		index := int(glyph.Char - first)
		if glyph.Char < first || index >= numChars {
			return nil, &glyphRangeError{ char: glyph.Char, first: first, last: first + rune(numChars) - 1 }
		}
		if !table.mapped[index] { table.count += 1 }
		table.glyphs[index] = glyph
		table.mapped[index] = true
	}
	return table, nil
}

// Returns the glyph for the given character, if mapped.
func (self *GlyphTable) Get(codePoint rune) (Glyph, bool) {
	index := int(codePoint - self.first)
	if codePoint < self.first || index >= len(self.glyphs) { return Glyph{}, false }
	if !self.mapped[index] { return Glyph{}, false }
	return self.glyphs[index], true
}

// Returns the sheet frame index for the given character. The result
// is only meaningful for characters within the table range.
func (self *GlyphTable) Frame(codePoint rune) int {
	return int(codePoint - self.first)
}

// Returns the first character of the range.
func (self *GlyphTable) FirstChar() rune { return self.first }

// Returns the size of the range (mapped or not).
func (self *GlyphTable) NumChars() int { return len(self.glyphs) }

// Returns the number of mapped characters.
func (self *GlyphTable) Count() int { return self.count }

// Calls the given function for each mapped glyph, in code point order.
func (self *GlyphTable) Each(fn func(Glyph)) {
	for i, glyph := range self.glyphs {
		if self.mapped[i] { fn(glyph) }
	}
}

type glyphRangeError struct { char, first, last rune }
func (self *glyphRangeError) Error() string {
	return ErrGlyphRange.Error() + ": char " + strconv.Itoa(int(self.char)) +
		" not in [" + strconv.Itoa(int(self.first)) + ", " + strconv.Itoa(int(self.last)) + "]"
}
func (self *glyphRangeError) Unwrap() error { return ErrGlyphRange }
