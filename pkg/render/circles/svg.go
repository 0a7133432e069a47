package circles

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/circlegrid/pkg/pack"
)

// RenderSVG draws the layout as a standalone SVG document.
func RenderSVG(l Layout, opts ...Option) []byte {
	o := newOptions(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.FrameWidth(), l.FrameHeight(), l.FrameWidth(), l.FrameHeight())
	fmt.Fprintf(&buf, `  <g transform="translate(%.2f,%.2f)">`+"\n", l.Margin, l.Margin)

	if o.grid {
		renderGrid(&buf, l)
	}
	for _, c := range l.Visible(o.outlines) {
		renderCircle(&buf, c, o)
	}
	if o.labels {
		for _, c := range l.Visible(false) {
			if c.Leaf && c.R >= minLabelRadius {
				renderLabel(&buf, c)
			}
		}
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func renderGrid(buf *bytes.Buffer, l Layout) {
	for _, cell := range l.Cells {
		fmt.Fprintf(buf, `    <rect class="cell" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-dasharray="4 4"/>`+"\n",
			cell.X, cell.Y, cell.Width, cell.Height, gridColor)
	}
}

func renderCircle(buf *bytes.Buffer, c pack.Circle, o options) {
	fmt.Fprintf(buf, `    <circle id="c%d-%s" class="depth-%d" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="1"><title>%s (%g)</title></circle>`+"\n",
		c.Cluster, html.EscapeString(c.ID), c.Depth, c.X, c.Y, c.R, o.fill(c.Depth), strokeColor,
		html.EscapeString(c.Key), c.Value)
}

func renderLabel(buf *bytes.Buffer, c pack.Circle) {
	size := min(c.R/2, 14)
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		c.X, c.Y, size, labelColor, html.EscapeString(c.Key))
}
