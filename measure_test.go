package bftxt

import "errors"
import "testing"

import "github.com/tinne26/bftxt/bfcode"
import "github.com/tinne26/bftxt/font"

func TestMeasureExample(t *testing.T) {
	renderer := NewRenderer(newTestFont(font.AllEffects()))
	for _, text := range []string{ "Hello", "[b]Hello[/b]", "[b]Hel[/b]lo", "[i][u][shake=3]Hello" } {
		width, err := renderer.MeasureWidth(text, true)
		if err != nil { t.Fatalf("%q: unexpected error %v", text, err) }
		if width != 37 { t.Fatalf("%q: expected width 37, got %d", text, width) }
	}
}

func TestMeasureWidth(t *testing.T) {
	renderer := NewRenderer(newTestFont(font.AllEffects()))
	tests := []struct {
		text string
		bfcode bool
		width int
	}{
		{ "", true, 0 },
		{ "H", true, 10 },
		{ "Hello\nHe", true, 37 },
		{ "He\nHello\n", true, 37 },
		{ "\tH", true, 34 },
		{ "H e", true, 24 },
		{ "a~b", true, 14 }, // '~' unmapped
		{ "[b]", true, 0 },
		{ "[b]", false, 21 },
		{ "a[image=1]b", true, 7 + testAuxWidth + 7 },
		{ "abc[bold", true, 56 },
		{ "[frobnicate]", true, 10*7 + 9 + 8 },
		{ "[Color=red]", true, 7*7 + 9 + 5 + 9 + 8 }, // case sensitive
		{ "x[/color][/rainbow]y", true, 14 },
	}
	for _, test := range tests {
		width, err := renderer.MeasureWidth(test.text, test.bfcode)
		if err != nil { t.Fatalf("%q: unexpected error %v", test.text, err) }
		if width != test.width {
			t.Fatalf("%q (bfcode = %t): expected width %d, got %d", test.text, test.bfcode, test.width, width)
		}
	}
}

func TestMeasureWidthAdditive(t *testing.T) {
	bmFont := newTestFont(font.AllEffects())
	renderer := NewRenderer(bmFont)
	for _, text := range []string{ "Hello world", "lol", " H e l o ", "{}!?" } {
		var expected int
		for _, codePoint := range text {
			glyph, found := bmFont.Glyphs.Get(codePoint)
			if !found { t.Fatalf("missing glyph %q", codePoint) }
			expected += glyph.Advance
		}
		width, err := renderer.MeasureWidth(text, true)
		if err != nil { t.Fatal(err) }
		if width != expected { t.Fatalf("%q: expected %d, got %d", text, expected, width) }
	}
}

func TestMeasureHeight(t *testing.T) {
	renderer := NewRenderer(newTestFont(font.AllEffects()))
	tests := []struct {
		text string
		lines int
	}{
		{ "", 0 },
		{ "abc", 1 },
		{ "a\nb\nc", 3 },
		{ "a\n", 1 },
		{ "\n", 1 },
		{ "\n\n", 2 },
		{ "a\n[b]", 2 },
		{ "[b]", 1 },
		{ "[b=\n]x", 1 }, // extra args ignored, the line break is inside the tag
	}
	for _, test := range tests {
		height, err := renderer.MeasureHeight(test.text, true)
		if err != nil { t.Fatalf("%q: unexpected error %v", test.text, err) }
		if height != test.lines*testFrameHeight {
			t.Fatalf("%q: expected height %d, got %d", test.text, test.lines*testFrameHeight, height)
		}
	}

	height, err := renderer.MeasureHeight("[b=\n]x", false)
	if err != nil || height != 2*testFrameHeight { t.Fatalf("expected 2 lines without bfcode, got %d (%v)", height, err) }
}

func TestNoTagEquivalence(t *testing.T) {
	renderer := NewRenderer(newTestFont(font.AllEffects()))
	texts := []string{ "Hello", "Hello\nworld\n", "\ttabs\tand ~ missing", "a]b", "" }
	for _, text := range texts {
		widthOn, errOn := renderer.MeasureWidth(text, true)
		widthOff, errOff := renderer.MeasureWidth(text, false)
		if errOn != nil || errOff != nil || widthOn != widthOff {
			t.Fatalf("%q: width mismatch %d vs %d", text, widthOn, widthOff)
		}
		heightOn, errOn := renderer.MeasureHeight(text, true)
		heightOff, errOff := renderer.MeasureHeight(text, false)
		if errOn != nil || errOff != nil || heightOn != heightOff {
			t.Fatalf("%q: height mismatch %d vs %d", text, heightOn, heightOff)
		}
		for i := 0; i <= len(text) + 1; i++ {
			xOn, yOn, errOn := renderer.CharacterPosition(text, i, true)
			xOff, yOff, errOff := renderer.CharacterPosition(text, i, false)
			if errOn != nil || errOff != nil || xOn != xOff || yOn != yOff {
				t.Fatalf("%q[%d]: position mismatch (%d, %d) vs (%d, %d)", text, i, xOn, yOn, xOff, yOff)
			}
		}
	}
}

func TestUnterminatedTag(t *testing.T) {
	renderer := NewRenderer(newTestFont(font.AllEffects()))
	pairs := [][2]string{
		{ "abc[bold", "abc[bold" },
		{ "[b]abc[", "abc[" },
		{ "[[b]x", "[x" },
		{ "a[color=red", "a[color=red" },
	}
	for _, pair := range pairs {
		withTags, err := renderer.MeasureWidth(pair[0], true)
		if err != nil { t.Fatal(err) }
		withoutTags, err := renderer.MeasureWidth(pair[1], false)
		if err != nil { t.Fatal(err) }
		if withTags != withoutTags { t.Fatalf("%q: expected %d, got %d", pair[0], withoutTags, withTags) }
	}
}

func TestCharacterPosition(t *testing.T) {
	renderer := NewRenderer(newTestFont(font.AllEffects()))
	expected := [][2]int{ {0, 0}, {10, 0}, {18, 0}, {23, 0}, {0, 16}, {5, 16}, {14, 16}, {14, 16} }
	for i, position := range expected {
		x, y, err := renderer.CharacterPosition("Hel\nlo", i, true)
		if err != nil { t.Fatal(err) }
		if x != position[0] || y != position[1] {
			t.Fatalf("index %d: expected (%d, %d), got (%d, %d)", i, position[0], position[1], x, y)
		}
	}

	// tags are not characters
	x, y, err := renderer.CharacterPosition("[b]He[/b]llo", 2, true)
	if err != nil || x != 18 || y != 0 { t.Fatalf("expected (18, 0), got (%d, %d) (%v)", x, y, err) }
	x, _, err = renderer.CharacterPosition("[b]He[/b]llo", 2, false)
	if err != nil || x != 14 { t.Fatalf("expected 14 without bfcode, got %d (%v)", x, err) }
	x, _, err = renderer.CharacterPosition("a[image=0]b", 1, true)
	if err != nil || x != 7 { t.Fatalf("expected to stop before the image, got %d (%v)", x, err) }
	x, _, err = renderer.CharacterPosition("a[image=0]b", 2, true)
	if err != nil || x != 7 + testAuxWidth + 7 { t.Fatalf("expected image advance, got %d (%v)", x, err) }

	// literal '[' and tabs are characters
	x, _, err = renderer.CharacterPosition("[zz]\tH", 5, true)
	if err != nil || x != 4*7 + 4*6 { t.Fatalf("expected %d, got %d (%v)", 4*7 + 4*6, x, err) }

	// argument errors after the index are not reached
	_, _, err = renderer.CharacterPosition("ab[shake=x]", 1, true)
	if err != nil { t.Fatalf("unexpected error %v", err) }
	_, _, err = renderer.CharacterPosition("ab[shake=x]", 3, true)
	if err == nil { t.Fatal("expected argument error") }

	if doesNotPanic(func() { _, _, _ = renderer.CharacterPosition("abc", -1, true) }) {
		t.Fatal("expected panic on negative index")
	}
}

func TestCharacterPositionMonotonic(t *testing.T) {
	renderer := NewRenderer(newTestFont(font.AllEffects()))
	text := "[b]Hi[/b] there\n[shake]line[/shake] two\n\tend"
	prevX, prevY := 0, 0
	for i := 0; i < 40; i++ {
		x, y, err := renderer.CharacterPosition(text, i, true)
		if err != nil { t.Fatal(err) }
		if y == prevY && x < prevX { t.Fatalf("index %d: x decreased from %d to %d", i, prevX, x) }
		if y < prevY { t.Fatalf("index %d: y decreased from %d to %d", i, prevY, y) }
		if y > prevY && x != 0 { t.Fatalf("index %d: expected x = 0 after line break, got %d", i, x) }
		prevX, prevY = x, y
	}
}

func TestMeasureArgumentErrors(t *testing.T) {
	renderer := NewRenderer(newTestFont(font.AllEffects()))
	for _, text := range []string{ "[shake=fast]x", "a[color=1,2]", "[image=-1]", "[image=2]" } {
		var argErr *bfcode.ArgumentError
		_, err := renderer.MeasureWidth(text, true)
		if !errors.As(err, &argErr) { t.Fatalf("%q: expected *bfcode.ArgumentError, got %v", text, err) }
		_, err = renderer.MeasureHeight(text, true)
		if !errors.As(err, &argErr) { t.Fatalf("%q: expected *bfcode.ArgumentError, got %v", text, err) }
		_, _, err = renderer.CharacterPosition(text, 99, true)
		if !errors.As(err, &argErr) { t.Fatalf("%q: expected *bfcode.ArgumentError, got %v", text, err) }
		err = renderer.Draw(newRecordingTarget(0xFFFFFFFF), text, 0, 0, 0, true)
		if !errors.As(err, &argErr) { t.Fatalf("%q: expected *bfcode.ArgumentError, got %v", text, err) }

		_, err = renderer.MeasureWidth(text, false)
		if err != nil { t.Fatalf("%q: unexpected error without bfcode: %v", text, err) }
	}
}

func TestDisabledEffects(t *testing.T) {
	renderer := NewRenderer(newTestFont(font.Effects{}))
	width, err := renderer.MeasureWidth("a[image=1]b", true)
	if err != nil || width != 14 { t.Fatalf("disabled images must not advance, got %d (%v)", width, err) }
	width, err = renderer.MeasureWidth("a[image=9]b", true)
	if err != nil || width != 14 { t.Fatalf("disabled images are not validated, got %d (%v)", width, err) }
	_, err = renderer.MeasureWidth("[color=bad]", true)
	if err == nil { t.Fatal("arguments must be validated even for disabled effects") }
}

func TestScale(t *testing.T) {
	renderer := NewRenderer(newTestFont(font.AllEffects()))
	renderer.SetScale(2)
	if renderer.GetScale() != 2 { t.Fatalf("expected scale 2, got %f", renderer.GetScale()) }
	width, _ := renderer.MeasureWidth("Hello", true)
	height, _ := renderer.MeasureHeight("a\nb", true)
	if width != 74 || height != 64 { t.Fatalf("expected 74x64, got %dx%d", width, height) }
	x, y, _ := renderer.CharacterPosition("H\ne", 3, true)
	if x != 16 || y != 32 { t.Fatalf("expected (16, 32), got (%d, %d)", x, y) }

	renderer.SetScale(1.5)
	width, _ = renderer.MeasureWidth("Hello", true)
	if width != 56 { t.Fatalf("expected 56, got %d", width) }

	if doesNotPanic(func() { renderer.SetScale(0) }) { t.Fatal("expected panic on zero scale") }
	if doesNotPanic(func() { renderer.SetScale(-1) }) { t.Fatal("expected panic on negative scale") }
	if doesNotPanic(func() { renderer.SetFont(nil) }) { t.Fatal("expected panic on nil font") }
}
