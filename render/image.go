package render

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"turm/orbit"
	"turm/replay"
)

var (
	// PenColor is the replay pen colour.
	PenColor   = color.RGBA{R: 240, G: 192, B: 32, A: 255}
	AxisColor  = color.RGBA{G: 255, B: 255, A: 255}
	Background = color.Black
)

// DefaultPenWidth matches the replay turtle's pen.
const DefaultPenWidth = 15.0

type ImageOptions struct {
	Width, Height int
	PenWidth      float64
	Axes          bool
	Caption       string
}

// Image is a replay.Renderer drawing onto a gg context.
type Image struct {
	*Turtle
	dc   *gg.Context
	opts ImageOptions
}

// NewImage prepares a black canvas, with axes through origin when requested.
func NewImage(origin orbit.Point, opts ImageOptions) *Image {
	if opts.PenWidth <= 0 {
		opts.PenWidth = DefaultPenWidth
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(Background)
	dc.Clear()

	if opts.Axes {
		dc.SetColor(AxisColor)
		dc.SetLineWidth(1)
		dc.DrawLine(0, float64(origin.Y), float64(opts.Width), float64(origin.Y))
		dc.DrawLine(float64(origin.X), 0, float64(origin.X), float64(opts.Height))
		dc.Stroke()
	}

	im := &Image{Turtle: NewTurtle(origin), dc: dc, opts: opts}
	im.Line = im.line
	return im
}

func (im *Image) line(x0, y0, x1, y1 float64) {
	im.dc.SetColor(PenColor)
	im.dc.SetLineWidth(im.opts.PenWidth)
	im.dc.SetLineCapRound()
	im.dc.DrawLine(x0, y0, x1, y1)
	im.dc.Stroke()
}

// Finish draws the caption, if any, in the top left corner.
func (im *Image) Finish() error {
	if im.opts.Caption == "" {
		return nil
	}
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	im.dc.SetFontFace(face)
	im.dc.SetColor(color.White)
	im.dc.DrawStringAnchored(im.opts.Caption, 6, 6, 0, 1)
	return nil
}

func (im *Image) Image() image.Image { return im.dc.Image() }

func (im *Image) SavePNG(path string) error { return im.dc.SavePNG(path) }

// ExportPNG replays strokes onto a new image and writes it to path.
func ExportPNG(path string, origin orbit.Point, strokes []orbit.Stroke, opts ImageOptions) error {
	if len(strokes) == 0 {
		return fmt.Errorf("nothing to export")
	}
	im := NewImage(origin, opts)
	if err := replay.Play(context.Background(), strokes, im, 0); err != nil {
		return err
	}
	if err := im.Finish(); err != nil {
		return err
	}
	return im.SavePNG(path)
}
