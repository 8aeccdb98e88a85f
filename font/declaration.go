package font

import "errors"
import "strconv"
import "unicode/utf8"

import "gopkg.in/yaml.v3"

// The YAML document describing a bitmap font. Image paths are
// relative to the declaration file. A minimal example:
//   name: pixel
//   glyphs:
//     - { char: " ", width: 4 }
//     - { char: "A", width: 6, v_offset: 1 }
//   images:
//     normal: { path: pixel.png, frame_width: 8, frame_height: 10 }
// See [Load]() for the defaults and validation rules.
type Declaration struct {
	Name string `yaml:"name"`
	FirstChar *CharValue `yaml:"first_char"`
	NumChars int `yaml:"num_chars"`
	Glyphs []GlyphDecl `yaml:"glyphs"`
	Images struct {
		Normal *SheetDecl `yaml:"normal"`
		Bold *SheetDecl `yaml:"bold"`
		Italic *SheetDecl `yaml:"italic"`
	} `yaml:"images"`
	Effects Effects `yaml:"effects"`
	Palette []string `yaml:"palette"`
	Shadow struct {
		HOffset int `yaml:"h_offset"`
		VOffset int `yaml:"v_offset"`
		Color string `yaml:"color"`
	} `yaml:"shadow"`
	AuxImages *SheetDecl `yaml:"aux_images"`
}

// A glyph entry in a [Declaration].
type GlyphDecl struct {
	Char CharValue `yaml:"char"`
	Width int `yaml:"width"`
	HOffset int `yaml:"h_offset"`
	VOffset int `yaml:"v_offset"`
}

// An image sheet entry in a [Declaration].
type SheetDecl struct {
	Path string `yaml:"path"`
	FrameWidth int `yaml:"frame_width"`
	FrameHeight int `yaml:"frame_height"`
	Columns int `yaml:"columns"`
}

// A character in a [Declaration]. It can be written either as a code
// point number (72) or as a single character string ("H").
type CharValue rune

// Implements [yaml.Unmarshaler].
func (self *CharValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode { return errors.New("char must be a scalar") }
	if node.Tag == "!!int" {
		value, err := strconv.ParseInt(node.Value, 0, 32)
		if err != nil { return err }
		if value < 0 { return errors.New("char can't be negative") }
		*self = CharValue(value)
		return nil
	}

	codePoint, size := utf8.DecodeRuneInString(node.Value)
	if size == 0 || size != len(node.Value) {
		return errors.New("char '" + node.Value + "' must be a single character or a code point number")
	}
	*self = CharValue(codePoint)
	return nil
}
