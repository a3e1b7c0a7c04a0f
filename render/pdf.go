package render

import (
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"turm/orbit"
	"turm/replay"
)

// PDF is a replay.Renderer drawing onto a single page, one point per canvas
// unit.
type PDF struct {
	*Turtle
	pdf *gofpdf.Fpdf
}

func NewPDF(origin orbit.Point, opts ImageOptions) *PDF {
	if opts.PenWidth <= 0 {
		opts.PenWidth = DefaultPenWidth
	}
	w, h := float64(opts.Width), float64(opts.Height)
	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.AddPage()
	p.SetFillColor(0, 0, 0)
	p.Rect(0, 0, w, h, "F")

	if opts.Axes {
		p.SetDrawColor(0, 255, 255)
		p.SetLineWidth(1)
		p.Line(0, float64(origin.Y), w, float64(origin.Y))
		p.Line(float64(origin.X), 0, float64(origin.X), h)
	}
	if opts.Caption != "" {
		p.SetFont("Courier", "", 10)
		p.SetTextColor(255, 255, 255)
		p.Text(6, 14, opts.Caption)
	}

	p.SetDrawColor(int(PenColor.R), int(PenColor.G), int(PenColor.B))
	p.SetLineWidth(opts.PenWidth)
	p.SetLineCapStyle("round")

	r := &PDF{Turtle: NewTurtle(origin), pdf: p}
	r.Line = p.Line
	return r
}

// ExportPDF replays strokes onto a new PDF page and writes it to path.
func ExportPDF(path string, origin orbit.Point, strokes []orbit.Stroke, opts ImageOptions) error {
	if len(strokes) == 0 {
		return fmt.Errorf("nothing to export")
	}
	r := NewPDF(origin, opts)
	if err := replay.Play(context.Background(), strokes, r, 0); err != nil {
		return err
	}
	return r.pdf.OutputFileAndClose(path)
}
