package circles

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/matzehuels/circlegrid/pkg/errors"
)

// RenderPNG rasterizes the layout at the given scale (2.0 for 2x
// resolution). Unlike the PDF sink it needs no external tools.
func RenderPNG(l Layout, scale float64, opts ...Option) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	o := newOptions(opts...)

	w, h := int(l.FrameWidth()*scale+0.5), int(l.FrameHeight()*scale+0.5)
	if w <= 0 || h <= 0 {
		return nil, errors.InvalidInput("cannot rasterize a %dx%d image", w, h)
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Scale(scale, scale)
	dc.Translate(l.Margin, l.Margin)

	if o.grid {
		dc.SetHexColor(gridColor)
		dc.SetLineWidth(1)
		dc.SetDash(4, 4)
		for _, cell := range l.Cells {
			dc.DrawRectangle(cell.X, cell.Y, cell.Width, cell.Height)
			dc.Stroke()
		}
		dc.SetDash()
	}

	for _, c := range l.Visible(o.outlines) {
		if c.R <= 0 {
			continue
		}
		dc.DrawCircle(c.X, c.Y, c.R)
		dc.SetHexColor(o.fill(c.Depth))
		dc.FillPreserve()
		dc.SetHexColor(strokeColor)
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	if o.labels {
		dc.SetHexColor(labelColor)
		for _, c := range l.Visible(false) {
			if c.Leaf && c.R >= minLabelRadius {
				dc.DrawStringAnchored(c.Key, c.X, c.Y, 0.5, 0.5)
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
