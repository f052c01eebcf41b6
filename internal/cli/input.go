package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dsaviz/pkg/core/step"
	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
)

// inputFlags holds the algorithm input flags shared by run, play and dot.
// Only flags the user set override the algorithm's defaults.
type inputFlags struct {
	values   string
	target   int
	left     int
	right    int
	k        int
	cyclePos int
	start    int
	n        int
	text     string
	edges    string
}

// register adds the input flags to cmd.
func (f *inputFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.values, "values", "", "comma-separated integers, e.g. 3,7,12")
	fs.IntVar(&f.target, "target", 0, "search target")
	fs.IntVar(&f.left, "left", 0, "1-based start of the sublist to reverse")
	fs.IntVar(&f.right, "right", 0, "1-based end of the sublist to reverse")
	fs.IntVar(&f.k, "k", 0, "group or window size")
	fs.IntVar(&f.cyclePos, "cycle-pos", 0, "0-based node the tail links back to, -1 for none")
	fs.IntVar(&f.start, "start", 0, "start node for graph traversals")
	fs.IntVar(&f.n, "n", 0, "problem size for recursion and DP")
	fs.StringVar(&f.text, "text", "", "text input for string algorithms")
	fs.StringVar(&f.edges, "edges", "", "undirected edges, e.g. 0-1,1-2")
}

// apply overlays the flags the user set on base.
func (f *inputFlags) apply(cmd *cobra.Command, base step.Input) (step.Input, error) {
	in := base.Clone()
	changed := cmd.Flags().Changed

	if changed("values") {
		v, err := parseValues(f.values)
		if err != nil {
			return in, err
		}
		in.Values = v
	}
	if changed("edges") {
		e, err := parseEdges(f.edges)
		if err != nil {
			return in, err
		}
		in.Edges = e
	}
	ints := []struct {
		name string
		dst  *int
		val  int
	}{
		{"target", &in.Target, f.target},
		{"left", &in.Left, f.left},
		{"right", &in.Right, f.right},
		{"k", &in.K, f.k},
		{"cycle-pos", &in.CyclePos, f.cyclePos},
		{"start", &in.Start, f.start},
		{"n", &in.N, f.n},
	}
	for _, p := range ints {
		if changed(p.name) {
			*p.dst = p.val
		}
	}
	if changed("text") {
		in.Text = f.text
	}

	if err := dserrors.ValidateValues(in.Values); err != nil {
		return in, err
	}
	if err := dserrors.ValidateText(in.Text); err != nil {
		return in, err
	}
	return in, nil
}

// parseValues parses "3, 7,12" into integers. An empty string is an empty
// array.
func parseValues(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, dserrors.New(dserrors.ErrCodeInvalidInput, "invalid value %q in --values", p)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseEdges parses "0-1,1-2" into edges.
func parseEdges(s string) ([]step.Edge, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []step.Edge{}, nil
	}
	var out []step.Edge
	for _, p := range strings.Split(s, ",") {
		a, b, ok := strings.Cut(strings.TrimSpace(p), "-")
		if !ok {
			return nil, dserrors.New(dserrors.ErrCodeInvalidInput, "invalid edge %q in --edges (want u-v)", p)
		}
		u, err1 := strconv.Atoi(a)
		v, err2 := strconv.Atoi(b)
		if err1 != nil || err2 != nil || u < 0 || v < 0 {
			return nil, dserrors.New(dserrors.ErrCodeInvalidInput, "invalid edge %q in --edges (want u-v)", p)
		}
		out = append(out, step.Edge{u, v})
	}
	return out, nil
}

// speedFlag reads --speed, falling back to def when unset.
func speedFlag(cmd *cobra.Command, speed, def time.Duration) (time.Duration, error) {
	if !cmd.Flags().Changed("speed") {
		return def, nil
	}
	if err := dserrors.ValidateSpeed(speed); err != nil {
		return 0, err
	}
	return speed, nil
}
