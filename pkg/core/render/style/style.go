package style

import (
	"maps"

	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// Style holds the presentation attributes for one highlight tag.
type Style struct {
	// Fill is the background color as a hex string.
	Fill string `json:"fill"`

	// Text is the foreground color used on top of Fill.
	Text string `json:"text"`

	// Badge is a short label drawn next to the element, or empty.
	Badge string `json:"badge,omitempty"`

	// Scale enlarges emphasized elements. 1 means normal size.
	Scale float64 `json:"scale"`

	// Glow requests a halo around the element.
	Glow bool `json:"glow"`

	// ANSI is the 256-color terminal code approximating Fill.
	ANSI string `json:"ansi"`
}

// Default is the style of an element without a known highlight.
var Default = Style{Fill: "#1f2937", Text: "#e5e7eb", Scale: 1, ANSI: "236"}

var table = map[step.Tag]Style{
	step.TagActive:   {Fill: "#f59e0b", Text: "#111827", Badge: "active", Scale: 1.1, Glow: true, ANSI: "214"},
	step.TagVisited:  {Fill: "#4b5563", Text: "#d1d5db", Scale: 1, ANSI: "240"},
	step.TagFound:    {Fill: "#10b981", Text: "#052e16", Badge: "found", Scale: 1.15, Glow: true, ANSI: "42"},
	step.TagPrev:     {Fill: "#8b5cf6", Text: "#f5f3ff", Badge: "prev", Scale: 1, ANSI: "99"},
	step.TagCurr:     {Fill: "#3b82f6", Text: "#eff6ff", Badge: "curr", Scale: 1.1, Glow: true, ANSI: "33"},
	step.TagNext:     {Fill: "#06b6d4", Text: "#083344", Badge: "next", Scale: 1, ANSI: "44"},
	step.TagReversed: {Fill: "#ec4899", Text: "#fdf2f8", Scale: 1, ANSI: "205"},
	step.TagZone:     {Fill: "#1e3a8a", Text: "#dbeafe", Scale: 1, ANSI: "18"},
	step.TagCompare:  {Fill: "#eab308", Text: "#1c1917", Badge: "cmp", Scale: 1.05, ANSI: "178"},
	step.TagDone:     {Fill: "#059669", Text: "#ecfdf5", Scale: 1, ANSI: "29"},
}

// For returns the style for tag, or Default when the tag is unknown.
func For(tag step.Tag) Style {
	if s, ok := table[tag]; ok {
		return s
	}
	return Default
}

// Of returns the style of element i in s.
func Of(s step.Step, i int) Style {
	return For(s.Tag(i))
}

// Table returns a copy of the full tag table, for serving to clients.
func Table() map[step.Tag]Style {
	return maps.Clone(table)
}

// Pointers returns the pointer names that reference element i, in the
// order of names. It drives the pointer row under arrays and lists.
func Pointers(s step.Step, i int, names []string) []string {
	var out []string
	for _, n := range names {
		if v, ok := s.Positions[n]; ok && v == i {
			out = append(out, n)
		}
	}
	return out
}
