package tree

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/pack"
	"github.com/matzehuels/circlegrid/pkg/render"
	"github.com/matzehuels/circlegrid/pkg/render/circles"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the value and radius in node labels.
	// When false, only the node key is shown.
	Detailed bool
}

// ToDOT converts a layout to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Cluster roots are drawn as grey ellipses; leaves are filled boxes.
func ToDOT(l circles.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")

	for i, group := range byCluster(l.Circles) {
		fmt.Fprintf(&buf, "\n  subgraph \"cluster_%d\" {\n", i)
		fmt.Fprintf(&buf, "    label=\"cluster %d\";\n    style=dashed;\n", i)
		for _, c := range group {
			fmt.Fprintf(&buf, "    %q [%s];\n", nodeID(c.Cluster, c.ID), strings.Join(fmtAttrs(c, opts.Detailed), ", "))
		}
		for _, c := range group {
			if c.HasParent() {
				fmt.Fprintf(&buf, "    %q -> %q;\n", nodeID(c.Cluster, c.ParentID), nodeID(c.Cluster, c.ID))
			}
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// byCluster groups circles by cluster index, keeping their order.
func byCluster(cs []pack.Circle) [][]pack.Circle {
	var out [][]pack.Circle
	for _, c := range cs {
		for len(out) <= c.Cluster {
			out = append(out, nil)
		}
		out[c.Cluster] = append(out[c.Cluster], c)
	}
	return out
}

func nodeID(cluster int, id string) string {
	return strconv.Itoa(cluster) + ":" + id
}

func fmtLabel(c pack.Circle, detailed bool) string {
	if !detailed {
		return c.Key
	}
	return fmt.Sprintf("%s\nvalue: %g\nr: %.1f", c.Key, c.Value, c.R)
}

func fmtAttrs(c pack.Circle, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(c, detailed))}
	switch {
	case !c.HasParent():
		attrs = append(attrs, "shape=ellipse", "fillcolor=lightgrey")
	case c.Leaf:
		attrs = append(attrs, "fillcolor=\"#c6dbef\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// pixel viewBox so the output scales like the circle sink.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
