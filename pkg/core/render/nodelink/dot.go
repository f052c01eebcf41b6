package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/render"
	"github.com/matzehuels/dsaviz/pkg/core/render/style"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// Options configures frame rendering.
type Options struct {
	// Layout selects how elements are connected. Empty means array.
	Layout algo.Display

	// Edges supplies the graph edges for the graph layout.
	Edges []step.Edge

	// Title is drawn above the diagram when set.
	Title string

	// Explain adds the step explanation as a caption.
	Explain bool
}

// ToDOT converts one step to Graphviz DOT.
func ToDOT(s step.Step, opts Options) string {
	var buf bytes.Buffer
	graphKind, edgeOp := "digraph", "->"
	if opts.Layout == algo.DisplayGraph {
		graphKind, edgeOp = "graph", "--"
	}

	fmt.Fprintf(&buf, "%s G {\n", graphKind)
	rankdir := "LR"
	if opts.Layout == algo.DisplayTree {
		rankdir = "TB"
	}
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\", fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [color=\"#9ca3af\"];\n")
	if label := caption(s, opts); label != "" {
		fmt.Fprintf(&buf, "  labelloc=t;\n  label=%q;\n", label)
	}
	buf.WriteString("\n")

	ids := nodeIDs(s, opts.Layout)
	for _, i := range ids {
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(nodeAttrs(s, i, opts.Layout), ", "))
	}

	buf.WriteString("\n")
	for _, e := range edges(s, ids, opts) {
		fmt.Fprintf(&buf, "  n%d %s n%d%s;\n", e.from, edgeOp, e.to, e.attrs)
	}

	writePointers(&buf, s, edgeOp)
	buf.WriteString("}\n")
	return buf.String()
}

func caption(s step.Step, opts Options) string {
	var parts []string
	if opts.Title != "" {
		parts = append(parts, opts.Title)
	}
	if opts.Explain && s.Explanation != "" {
		parts = append(parts, s.Explanation)
	}
	return strings.Join(parts, "\n")
}

// nodeIDs returns the element indices that become nodes. Trees skip nil
// slots; everything else draws every element.
func nodeIDs(s step.Step, layout algo.Display) []int {
	var ids []int
	for i, v := range s.Items {
		if layout == algo.DisplayTree && v == -1 {
			continue
		}
		ids = append(ids, i)
	}
	return ids
}

func nodeAttrs(s step.Step, i int, layout algo.Display) []string {
	st := style.Of(s, i)
	attrs := []string{
		fmt.Sprintf("label=%q", label(s, i, layout)),
		fmt.Sprintf("fillcolor=%q", st.Fill),
		fmt.Sprintf("fontcolor=%q", st.Text),
	}
	if layout == algo.DisplayGraph || layout == algo.DisplayTree {
		attrs = append(attrs, "shape=circle")
	}
	if st.Glow {
		attrs = append(attrs, "penwidth=3", fmt.Sprintf("color=%q", st.Fill))
	}
	if st.Badge != "" {
		attrs = append(attrs, fmt.Sprintf("xlabel=%q", st.Badge))
	}
	return attrs
}

func label(s step.Step, i int, layout algo.Display) string {
	v := s.Items[i]
	switch layout {
	case algo.DisplayText:
		return string(rune(v))
	case algo.DisplayTable:
		if v == -1 {
			return fmt.Sprintf("[%d]\n?", i)
		}
		return fmt.Sprintf("[%d]\n%d", i, v)
	case algo.DisplayArray:
		return fmt.Sprintf("[%d]\n%d", i, v)
	}
	return strconv.Itoa(v)
}

type edge struct {
	from, to int
	attrs    string
}

func edges(s step.Step, ids []int, opts Options) []edge {
	var out []edge
	switch opts.Layout {
	case algo.DisplayList:
		for i, next := range s.Links {
			if next != step.Absent && next < len(s.Items) {
				attrs := ""
				if s.Tag(i) == step.TagReversed {
					attrs = fmt.Sprintf(" [color=%q, penwidth=2]", style.For(step.TagReversed).Fill)
				}
				out = append(out, edge{from: i, to: next, attrs: attrs})
			}
		}
	case algo.DisplayTree:
		for _, i := range ids {
			for _, c := range []int{2*i + 1, 2*i + 2} {
				if slices.Contains(ids, c) {
					out = append(out, edge{from: i, to: c})
				}
			}
		}
	case algo.DisplayGraph:
		seen := map[step.Edge]bool{}
		for _, e := range opts.Edges {
			u, v := min(e[0], e[1]), max(e[0], e[1])
			if u == v || v >= len(s.Items) || seen[step.Edge{u, v}] {
				continue
			}
			seen[step.Edge{u, v}] = true
			out = append(out, edge{from: u, to: v})
		}
	default:
		for k := 1; k < len(ids); k++ {
			out = append(out, edge{from: ids[k-1], to: ids[k], attrs: " [style=invis]"})
		}
	}
	return out
}

// writePointers adds a plaintext node per named pointer that references an
// existing element.
func writePointers(buf *bytes.Buffer, s step.Step, edgeOp string) {
	names := make([]string, 0, len(s.Positions))
	for name, idx := range s.Positions {
		if idx != step.Absent && idx >= 0 && idx < len(s.Items) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return
	}
	slices.Sort(names)
	buf.WriteString("\n")
	for _, name := range names {
		fmt.Fprintf(buf, "  %q [shape=plaintext, style=\"\", fontcolor=\"#9ca3af\", fontsize=14];\n", "p_"+name)
		fmt.Fprintf(buf, "  %q %s n%d [style=dashed, arrowsize=0.6];\n", "p_"+name, edgeOp, s.Positions[name])
	}
}

// =============================================================================
// Rendering
// =============================================================================

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

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

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// Requires rsvg-convert on PATH.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires rsvg-convert on PATH.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}
