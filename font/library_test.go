package font

import "errors"
import "testing"

const minimalDecl = "images: { normal: { path: sheet.png, frame_width: 8, frame_height: 10 } }\n"

func TestLibrary(t *testing.T) {
	filesys := testFS(map[string]string{
		"one.yaml": minimalDecl,
		"two.yml": minimalDecl,
		"dupe.yaml": "name: one\n" + minimalDecl,
		"notes.txt": "not a font",
		"fonts/pixel.yaml": testDecl,
	})

	lib := NewLibrary()
	added, skipped, err := lib.ParseAllFromFS(filesys, ".")
	if err != nil { t.Fatal(err) }
	if added != 2 || skipped != 1 { t.Fatalf("expected 2 added and 1 skipped, got %d and %d", added, skipped) }
	if !lib.HasFont("one") || !lib.HasFont("two") || lib.HasFont("dupe") {
		t.Fatal("unexpected library contents")
	}

	name, err := lib.ParseFromFS(filesys, "fonts/pixel.yaml")
	if err != nil || name != "pixel" { t.Fatalf("unexpected result %q, %v", name, err) }
	_, err = lib.ParseFromFS(filesys, "fonts/pixel.yaml")
	if err != ErrAlreadyPresent { t.Fatalf("expected ErrAlreadyPresent, got %v", err) }
	if lib.Size() != 3 { t.Fatalf("expected 3 fonts, got %d", lib.Size()) }

	pixel := lib.GetFont("pixel")
	if pixel == nil || pixel.SpaceAdvance() != 6 { t.Fatal("bad font for 'pixel'") }
	if lib.GetFont("none") != nil { t.Fatal("unexpected font for 'none'") }

	unnamed := *pixel
	unnamed.Name = ""
	if lib.AddFont(&unnamed) != ErrUnnamed { t.Fatal("expected ErrUnnamed") }
	unnamed.Name = "copy"
	if lib.AddFont(&unnamed) != nil { t.Fatal("failed to add font copy") }
	if doesNotPanic(func() { _ = lib.AddFont(nil) }) { t.Fatal("expected panic on nil font") }

	var count int
	err = lib.EachFont(func(name string, font *Font) error {
		count += 1
		if count == 2 { return ErrBreakEach }
		return nil
	})
	if err != nil || count != 2 { t.Fatalf("unexpected EachFont result %d, %v", count, err) }
	custom := errors.New("custom")
	err = lib.EachFont(func(string, *Font) error { return custom })
	if err != custom { t.Fatalf("expected custom error, got %v", err) }

	if !lib.RemoveFont("copy") || lib.RemoveFont("copy") { t.Fatal("unexpected RemoveFont results") }
	if lib.Size() != 3 { t.Fatalf("expected 3 fonts, got %d", lib.Size()) }
}
