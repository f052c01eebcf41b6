package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/algo/graph"
	"github.com/matzehuels/dsaviz/pkg/core/algo/linkedlist"
	"github.com/matzehuels/dsaviz/pkg/core/algo/tree"
	"github.com/matzehuels/dsaviz/pkg/core/render/style"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

func TestToDOT_List(t *testing.T) {
	s := linkedlist.ReverseAll.Run(step.Input{Values: []int{3, 7, 12}}).Last()
	dot := ToDOT(s, Options{Layout: algo.DisplayList})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("list frames should be directed")
	}
	for _, want := range []string{"n2 -> n1", "n1 -> n0", `label="12"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "n0 -> n1") {
		t.Error("reversed list still has the original arrow")
	}
}

func TestToDOT_HighlightColors(t *testing.T) {
	s := step.Step{Items: []int{1, 2}, Highlights: step.Mark(step.TagFound, 1)}
	dot := ToDOT(s, Options{})
	if !strings.Contains(dot, style.For(step.TagFound).Fill) {
		t.Error("found element should use the found fill")
	}
	if !strings.Contains(dot, style.Default.Fill) {
		t.Error("untagged element should use the default fill")
	}
	if !strings.Contains(dot, "style=invis") {
		t.Error("array layout should chain elements with invisible edges")
	}
}

func TestToDOT_Graph(t *testing.T) {
	s := graph.BFS.Run(graph.BFS.Defaults).At(1)
	dot := ToDOT(s, Options{Layout: algo.DisplayGraph, Edges: graph.BFS.Defaults.Edges})
	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("graph frames should be undirected")
	}
	if !strings.Contains(dot, "n0 -- n1") || !strings.Contains(dot, "n4 -- n5") {
		t.Errorf("missing graph edges:\n%s", dot)
	}
	if !strings.Contains(dot, `"p_curr" -- n0`) {
		t.Errorf("missing curr pointer:\n%s", dot)
	}
}

func TestToDOT_TreeSkipsNil(t *testing.T) {
	s := tree.LevelOrder.Run(tree.LevelOrder.Defaults).Last()
	dot := ToDOT(s, Options{Layout: algo.DisplayTree})
	if strings.Contains(dot, "n7 [") {
		t.Error("nil slot should not become a node")
	}
	if !strings.Contains(dot, "n3 -> n8") {
		t.Errorf("missing right child edge:\n%s", dot)
	}
	if !strings.Contains(dot, "rankdir=TB") {
		t.Error("trees should lay out top to bottom")
	}
}

func TestToDOT_Caption(t *testing.T) {
	s := step.Step{Items: []int{1}, Explanation: "hello"}
	dot := ToDOT(s, Options{Title: "Demo", Explain: true})
	if !strings.Contains(dot, `label="Demo\nhello"`) {
		t.Errorf("caption missing:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00" xmlns="x"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 10.00 20.00" width="10" height="20"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg>")); string(got) != "<svg>" {
		t.Error("input without viewBox should pass through")
	}
}
