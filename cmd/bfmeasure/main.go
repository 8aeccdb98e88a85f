// Command bfmeasure measures BFCode text with a bitmap font and
// optionally renders it to a PNG.
//
// Usage:
//   bfmeasure [flags] text...
//
// The font can be a YAML declaration, a .ttf/.otf font rasterized at
// the given size, or "basic" for the built-in 7x13 face.
package main

import "os"
import "io"
import "fmt"
import "log"
import "errors"
import "image"
import "image/png"
import "strings"
import "path/filepath"

import "github.com/spf13/pflag"
import "golang.org/x/image/font/basicfont"
import "golang.org/x/image/font/opentype"

import "github.com/tinne26/bftxt"
import "github.com/tinne26/bftxt/argb"
import "github.com/tinne26/bftxt/font"

func main() {
	err := run(os.Args[1 : ], os.Stdout)
	if errors.Is(err, pflag.ErrHelp) { return }
	if err != nil { log.Fatal(err) }
}

type options struct {
	fontPath string
	size float64
	plain bool
	index int
	pngPath string
	scale float64
	color string
}

func run(args []string, stdout io.Writer) error {
	var opts options
	flags := pflag.NewFlagSet("bfmeasure", pflag.ContinueOnError)
	flags.StringVarP(&opts.fontPath, "font", "f", "basic", "Path to a font declaration (.yaml), a .ttf/.otf font, or \"basic\"")
	flags.Float64Var(&opts.size, "size", 16, "Size in pixels for .ttf/.otf fonts")
	flags.BoolVar(&opts.plain, "plain", false, "Disable BFCode, measuring tags as regular text")
	flags.IntVarP(&opts.index, "index", "i", -1, "Also print the caret position for the given character index")
	flags.StringVarP(&opts.pngPath, "png", "o", "", "Render the text to the given PNG file")
	flags.Float64VarP(&opts.scale, "scale", "s", 1, "Scaling factor")
	flags.StringVarP(&opts.color, "color", "c", "white", "Base text color for rendering")
	err := flags.Parse(args)
	if err != nil { return err }
	if flags.NArg() == 0 { return errors.New("no text provided") }
	if opts.scale <= 0 { return errors.New("scale must be positive") }
	text := strings.Join(flags.Args(), " ")

	bmFont, err := loadFont(opts.fontPath, opts.size)
	if err != nil { return err }
	renderer := bftxt.NewRenderer(bmFont)
	renderer.SetScale(opts.scale)

	// measure
	bfcodeEnabled := !opts.plain
	width, err := renderer.MeasureWidth(text, bfcodeEnabled)
	if err != nil { return err }
	height, err := renderer.MeasureHeight(text, bfcodeEnabled)
	if err != nil { return err }
	fmt.Fprintf(stdout, "font: %s\nwidth: %d\nheight: %d\n", bmFont.Name, width, height)
	if opts.index >= 0 {
		x, y, err := renderer.CharacterPosition(text, opts.index, bfcodeEnabled)
		if err != nil { return err }
		fmt.Fprintf(stdout, "position[%d]: %d, %d\n", opts.index, x, y)
	}

	// render
	if opts.pngPath == "" { return nil }
	clr, err := argb.Parse(opts.color)
	if err != nil { return err }
	return renderPNG(renderer, text, bfcodeEnabled, width, height, clr, opts.pngPath)
}

func loadFont(path string, size float64) (*font.Font, error) {
	if path == "basic" { return font.FromFace(basicfont.Face7x13, "basic") }

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		data, err := os.ReadFile(path)
		if err != nil { return nil, err }
		sfntFont, err := opentype.Parse(data)
		if err != nil { return nil, err }
		return font.FromSfnt(sfntFont, size)
	default:
		bmFont, _, err := font.ParseFromPath(path)
		return bmFont, err
	}
}

func renderPNG(renderer *bftxt.Renderer, text string, bfcodeEnabled bool, width, height int, clr argb.Color, path string) error {
	// leave some room for shadows and shaking
	const margin = 4
	img := image.NewNRGBA(image.Rect(0, 0, width + margin*2, height + margin*2))
	target := bftxt.NewImageTarget(img)
	target.SetForegroundColor(clr)
	err := renderer.Draw(target, text, margin, margin, 0, bfcodeEnabled)
	if err != nil { return err }

	file, err := os.Create(path)
	if err != nil { return err }
	err = png.Encode(file, img)
	if err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
