package main

import (
	"fmt"
	"os"
	"path/filepath"

	"turm/render"
)

func (m *model) imageOptions() render.ImageOptions {
	caption := appTitle
	if m.current != "" {
		caption = displayName(filepath.Base(m.current))
	}
	return render.ImageOptions{
		Width:    m.config.Width,
		Height:   m.config.Height,
		PenWidth: m.config.PenWidth,
		Axes:     true,
		Caption:  fmt.Sprintf("%s  %d strokes", caption, m.ctl.Orbit.Len()),
	}
}

func (m *model) exportPNG(filename string) error {
	o := m.ctl.Orbit
	return render.ExportPNG(filename, o.Origin(), o.Strokes(), m.imageOptions())
}

func (m *model) exportPDF(filename string) error {
	o := m.ctl.Orbit
	return render.ExportPDF(filename, o.Origin(), o.Strokes(), m.imageOptions())
}

// exportVisualTXT writes the canvas as it is drawn on screen, without colour.
func (m *model) exportVisualTXT(filename string) error {
	if m.ctl.Orbit.Len() == 0 {
		return fmt.Errorf("nothing to export")
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range m.drawScene().Render(false) {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}
	return nil
}

// defaultExportName is offered in the export prompt.
func (m *model) defaultExportName() string {
	if m.current != "" {
		return displayName(filepath.Base(m.current))
	}
	return "orbit"
}
