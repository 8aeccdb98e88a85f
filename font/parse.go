package font

import "os"
import "io"
import "io/fs"
import "path"
import "bytes"
import "errors"
import "strings"
import "path/filepath"

import "image"
import _ "image/png"
import _ "image/gif"
import _ "image/jpeg"
import _ "golang.org/x/image/bmp"
import _ "golang.org/x/image/webp"

import "gopkg.in/yaml.v3"

import "github.com/tinne26/bftxt/argb"

const defaultShadowColor argb.Color = 0x80000000

// Attempts to parse the font declaration at the given path and returns
// the font along its name and any possible error. Declarations must
// have a .yaml or .yml extension. If the declaration doesn't include
// a name, the file name without extension is used.
//
// This is a low level function; you may prefer to use a [Library]
// instead.
func ParseFromPath(filePath string) (*Font, string, error) {
	if !hasValidDeclExtension(filePath) {
		return nil, "", errors.New("invalid font declaration path '" + filePath + "'")
	}

	data, err := os.ReadFile(filePath)
	if err != nil { return nil, "", err }
	dir := filepath.Dir(filePath)
	font, err := ParseFromBytes(data, os.DirFS(dir), stem(filePath))
	if err != nil { return nil, "", err }
	return font, font.Name, nil
}

// Same as [ParseFromPath](), but for embedded and virtual filesystems.
//
// This is a low level function; you may prefer to use a [Library]
// instead.
func ParseFromFS(filesys fs.FS, filePath string) (*Font, string, error) {
	if !hasValidDeclExtension(filePath) {
		return nil, "", errors.New("invalid font declaration path '" + filePath + "'")
	}

	data, err := fs.ReadFile(filesys, filePath)
	if err != nil { return nil, "", err }
	dir := path.Dir(filePath)
	if dir != "." {
		filesys, err = fs.Sub(filesys, dir)
		if err != nil { return nil, "", err }
	}
	font, err := ParseFromBytes(data, filesys, stem(filePath))
	if err != nil { return nil, "", err }
	return font, font.Name, nil
}

// Parses a YAML font declaration and loads it with [Load](). Image paths
// are resolved on the given filesystem. If the declaration has no name,
// defaultName is used instead.
//
// Unknown declaration fields are rejected, so typos in effect names
// and similar don't go unnoticed.
func ParseFromBytes(data []byte, filesys fs.FS, defaultName string) (*Font, error) {
	var decl Declaration
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	err := decoder.Decode(&decl)
	if err != nil && err != io.EOF {
		return nil, loadErr(defaultName, "declaration", &declError{ err })
	}
	if decl.Name == "" { decl.Name = defaultName }
	return Load(&decl, filesys)
}

// Creates a font from the given declaration, loading its images from
// the given filesystem.
//
// Defaults: first_char 32, num_chars 256, the built-in palette and a
// semi-transparent black shadow. The normal image is always required,
// and the bold, italic and auxiliary images are required only when their
// effects are enabled. All errors are [*LoadError] values.
func Load(decl *Declaration, filesys fs.FS) (*Font, error) {
	name := decl.Name

	// glyph table
	first, numChars := DefaultFirstChar, DefaultNumChars
	if decl.FirstChar != nil { first = rune(*decl.FirstChar) }
	if decl.NumChars != 0 { numChars = decl.NumChars }
	glyphs := make([]Glyph, 0, len(decl.Glyphs))
	for _, glyphDecl := range decl.Glyphs {
		glyphs = append(glyphs, Glyph{
			Char: rune(glyphDecl.Char),
			Advance: glyphDecl.Width,
			HOffset: glyphDecl.HOffset,
			VOffset: glyphDecl.VOffset,
		})
	}
	table, err := NewGlyphTable(first, numChars, glyphs)
	if err != nil { return nil, loadErr(name, "glyphs", err) }

	font := &Font{
		Name: name,
		Glyphs: table,
		Effects: decl.Effects,
		Shadow: Shadow{ HOffset: decl.Shadow.HOffset, VOffset: decl.Shadow.VOffset, Color: defaultShadowColor },
	}

	// images
	if decl.Images.Normal == nil { return nil, loadErr(name, "images.normal", ErrMissingImage) }
	font.Normal, err = loadSheet(filesys, decl.Images.Normal, true)
	if err != nil { return nil, loadErr(name, "images.normal", err) }
	if decl.Images.Bold != nil {
		font.Bold, err = loadSheet(filesys, decl.Images.Bold, true)
		if err != nil { return nil, loadErr(name, "images.bold", err) }
	}
	if decl.Images.Italic != nil {
		font.Italic, err = loadSheet(filesys, decl.Images.Italic, true)
		if err != nil { return nil, loadErr(name, "images.italic", err) }
	}
	if decl.AuxImages != nil {
		font.AuxImages, err = loadSheet(filesys, decl.AuxImages, false)
		if err != nil { return nil, loadErr(name, "aux_images", err) }
	}

	// colors
	if decl.Shadow.Color != "" {
		font.Shadow.Color, err = argb.Parse(decl.Shadow.Color)
		if err != nil { return nil, loadErr(name, "shadow.color", err) }
	}
	if len(decl.Palette) == 0 {
		font.Palette = DefaultPalette()
	} else {
		font.Palette = make(Palette, 0, len(decl.Palette))
		for _, str := range decl.Palette {
			clr, err := argb.Parse(str)
			if err != nil { return nil, loadErr(name, "palette", err) }
			font.Palette = append(font.Palette, clr)
		}
	}

	err = font.Validate()
	if err != nil { return nil, err }
	return font, nil
}

// ---- helpers ----

func loadSheet(filesys fs.FS, decl *SheetDecl, mask bool) (*Sheet, error) {
	if decl.Path == "" { return nil, ErrMissingImage }
	file, err := filesys.Open(decl.Path)
	if err != nil { return nil, err }
	img, _, err := image.Decode(file)
	closeErr := file.Close()
	if err != nil { return nil, err }
	if closeErr != nil { return nil, closeErr }

	sheet := &Sheet{
		Image: img,
		FrameWidth: decl.FrameWidth,
		FrameHeight: decl.FrameHeight,
		Columns: decl.Columns,
		Mask: mask,
	}
	err = sheet.validate()
	if err != nil { return nil, err }
	return sheet, nil
}

// Whether the path ends in .yaml or .yml.
func hasValidDeclExtension(filePath string) bool {
	ext := strings.ToLower(path.Ext(filePath))
	return ext == ".yaml" || ext == ".yml"
}

func stem(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// wraps yaml errors so they can be matched against ErrBadDeclaration
type declError struct { err error }
func (self *declError) Error() string { return ErrBadDeclaration.Error() + ": " + self.err.Error() }
func (self *declError) Unwrap() error { return ErrBadDeclaration }
