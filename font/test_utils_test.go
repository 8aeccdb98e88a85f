package font

import "bytes"
import "image"
import "image/png"
import "image/color"
import "testing/fstest"

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

// encodes a w x h PNG with a single opaque pixel at the
// top-left corner of every 8x10 frame
func testSheetPNG(width, height int) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y += 10 {
		for x := 0; x < width; x += 8 {
			img.SetNRGBA(x, y, color.NRGBA{ 255, 255, 255, 255 })
		}
	}
	var buffer bytes.Buffer
	err := png.Encode(&buffer, img)
	if err != nil { panic(err) }
	return buffer.Bytes()
}

func testFS(files map[string]string) fstest.MapFS {
	filesys := make(fstest.MapFS, len(files) + 3)
	sheet := testSheetPNG(128, 60) // 16 x 6 frames of 8x10
	for name, content := range files {
		filesys[name] = &fstest.MapFile{ Data: []byte(content) }
	}
	filesys["sheet.png"] = &fstest.MapFile{ Data: sheet }
	filesys["fonts/sheet.png"] = &fstest.MapFile{ Data: sheet }
	filesys["big.png"] = &fstest.MapFile{ Data: testSheetPNG(128, 160) }
	return filesys
}
