package font

import "io/fs"
import "errors"
import "path/filepath"

// Bitmap fonts indexed by their declared name.
//
// Fonts usually get here from YAML declarations, one file per font,
// either one by one or from a whole directory. Fonts built in code
// (for example, with [FromFace]()) can be added too, as long as they
// have a name.
type Library struct {
	fonts map[string]*Font
}

// Creates an empty [Library].
func NewLibrary() *Library {
	return &Library {
		fonts: make(map[string]*Font),
	}
}

// Returns the number of fonts stored.
func (self *Library) Size() int { return len(self.fonts) }

// Returns whether a font has been stored under the given name.
func (self *Library) HasFont(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the font stored under the given name, or nil.
func (self *Library) GetFont(name string) *Font {
	font, found := self.fonts[name]
	if found { return font }
	return nil
}

// Returned when a font's name is already taken in the [Library]. The
// new font is discarded and the stored one is kept.
var ErrAlreadyPresent = errors.New("font already present in the library")

// Returned by [Library.AddFont]() for fonts with an empty Name. Fonts
// loaded from declarations always have a name, since it defaults to
// the file name.
var ErrUnnamed = errors.New("can't add unnamed font to the library")

// Stores a font under its Name. Nil fonts will panic.
//
// Meant for fonts built in code. Declarations can go through
// [Library.ParseFromPath]() instead.
func (self *Library) AddFont(font *Font) error {
	if font == nil { panic("nil font") }
	if font.Name == "" { return ErrUnnamed }
	return self.addNewFont(font, font.Name)
}

// Removes the font stored under the given name. Returns false if
// there was no such font.
func (self *Library) RemoveFont(name string) bool {
	_, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	return true
}

// Loads the declaration at the given path (see [ParseFromPath]()) and
// stores the resulting font. The font name is returned even when the
// name was already taken and [ErrAlreadyPresent] is returned.
func (self *Library) ParseFromPath(path string) (string, error) {
	font, name, err := ParseFromPath(path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// Like [Library.ParseFromPath](), but the declaration and its sheet
// images are read from the given filesystem.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (string, error) {
	font, name, err := ParseFromFS(filesys, path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

func (self *Library) addNewFont(font *Font, name string) error {
	if self.HasFont(name) { return ErrAlreadyPresent }
	self.fonts[name] = font
	return nil
}

// Can be returned from the [Library.EachFont]() callback to stop
// visiting fonts without making EachFont() fail.
var ErrBreakEach = errors.New("EachFont() early break")

// Visits every stored font in no particular order. The first error
// returned by the callback stops the iteration and is returned, unless
// it's [ErrBreakEach].
func (self *Library) EachFont(fontFunc func(string, *Font) error) error {
	for name, font := range self.fonts {
		err := fontFunc(name, font)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}

// Loads every .yaml and .yml declaration directly inside the given
// directory, without descending into subdirectories. Declarations whose
// font name is already taken count as skipped. Any other error stops the
// process, keeping the fonts loaded so far.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }

	err = filepath.WalkDir(absDirPath,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}

			if !hasValidDeclExtension(path) { return nil }
			_, err = self.ParseFromPath(path)
			if err == ErrAlreadyPresent {
				skipped += 1
				return nil
			}
			if err == nil { added += 1 }
			return err
		})
	return added, skipped, err
}

// Like [Library.ParseAllFromPath](), for declarations stored in the
// given filesystem. Use "." for its root.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }

	if dirName == "." {
		dirName = ""
	} else if len(dirName) == 0 || dirName[len(dirName) - 1] != '/' {
		dirName += "/"
	}

	for _, entry := range entries {
		if entry.IsDir() { continue }
		path := dirName + entry.Name()
		if !hasValidDeclExtension(path) { continue }
		_, err := self.ParseFromFS(filesys, path)
		if err == ErrAlreadyPresent {
			skipped += 1
		} else if err != nil {
			return added, skipped, err
		} else {
			added += 1
		}
	}
	return added, skipped, nil
}
