package circles

import (
	"context"

	"github.com/matzehuels/circlegrid/pkg/render"
)

// RenderPDF renders the layout as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, l Layout, opts ...Option) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(l, opts...))
}
