package graph

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// Topic is the graphs topic.
var Topic = &algo.Topic{
	Name:  "graphs",
	Title: "Graphs",
	Description: "A graph is a set of nodes joined by edges. Traversals keep a frontier of " +
		"discovered nodes: a FIFO queue gives breadth-first order (nearest nodes first), a " +
		"LIFO stack gives depth-first order (follow one path as far as it goes).",
	Algorithms: []*algo.Algorithm{BFS, DFS},
}

var sampleEdges = []step.Edge{{0, 1}, {0, 2}, {1, 3}, {2, 4}, {3, 5}, {4, 5}}

// BFS explores nodes in order of distance from the start node.
var BFS = &algo.Algorithm{
	Name:     "bfs",
	Title:    "Breadth-First Search",
	Summary:  "Dequeue a node, then enqueue every undiscovered neighbor.",
	Display:  algo.DisplayGraph,
	Params:   []algo.Param{algo.ParamEdges, algo.ParamStart},
	Defaults: step.Input{Edges: sampleEdges},
	Generate: genBFS,
}

// DFS explores as deep as possible before backtracking, using an explicit stack.
var DFS = &algo.Algorithm{
	Name:     "dfs",
	Title:    "Depth-First Search",
	Summary:  "Pop a node, visit it if new, then push its neighbors in reverse order.",
	Display:  algo.DisplayGraph,
	Params:   []algo.Param{algo.ParamEdges, algo.ParamStart},
	Defaults: step.Input{Edges: sampleEdges},
	Generate: genDFS,
}

// Adjacency builds sorted, de-duplicated undirected adjacency lists from
// edges. Self loops are ignored. The result has one entry per node id.
func Adjacency(edges []step.Edge) [][]int {
	n := 0
	for _, e := range edges {
		n = max(n, e[0]+1, e[1]+1)
	}
	adj := make([][]int, n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v {
			continue
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	for i := range adj {
		slices.Sort(adj[i])
		adj[i] = slices.Compact(adj[i])
	}
	return adj
}

// nodes returns the Items snapshot for a graph: node labels equal ids.
func nodes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func labels(idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = strconv.Itoa(v)
	}
	return out
}

// precheck returns a terminal step body when the graph or start node makes
// traversal impossible.
func precheck(adj [][]int, start int) []step.Step {
	if len(adj) == 0 {
		return step.Single(step.PhaseDone, "The graph has no edges, so there is nothing to traverse.", nil)
	}
	if start < 0 || start >= len(adj) {
		return step.Single(step.PhaseInvalid,
			fmt.Sprintf("Start node %d does not exist; valid nodes are 0..%d.", start, len(adj)-1), nodes(len(adj)))
	}
	return nil
}

func genBFS(in step.Input) []step.Step {
	adj := Adjacency(in.Edges)
	if s := precheck(adj, in.Start); s != nil {
		return s
	}

	items := nodes(len(adj))
	seen := make([]bool, len(adj))
	b := step.NewBuilder()

	queue := []int{in.Start}
	seen[in.Start] = true
	var order []int
	b.Add(step.Step{
		Phase:       step.PhaseSetup,
		Positions:   step.Positions{"start": in.Start},
		Highlights:  step.Mark(step.TagZone, in.Start),
		Explanation: fmt.Sprintf("Mark %d as discovered and enqueue it.", in.Start),
		Items:       items,
		Frames:      labels(queue),
	})

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		var added []int
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				added = append(added, v)
				queue = append(queue, v)
			}
		}
		expl := fmt.Sprintf("Dequeue %d; every neighbor %v was already discovered.", u, adj[u])
		if len(added) > 0 {
			expl = fmt.Sprintf("Dequeue %d and enqueue its undiscovered neighbors %v.", u, added)
		}
		b.Add(step.Step{
			Phase:       step.PhaseTraverse,
			Positions:   step.Positions{"start": in.Start, "curr": u},
			Highlights:  step.Mark(step.TagVisited, order...).With(step.TagZone, queue...).With(step.TagNext, added...).With(step.TagCurr, u),
			Explanation: expl,
			Items:       items,
			Frames:      labels(queue),
			Output:      order,
		})
	}

	return b.Finish(step.Step{
		Positions:   step.Positions{"start": in.Start},
		Highlights:  step.Mark(step.TagDone, order...),
		Explanation: fmt.Sprintf("Queue empty. BFS order from %d: %v (%d of %d nodes reachable).", in.Start, order, len(order), len(adj)),
		Items:       items,
		Output:      order,
	})
}

func genDFS(in step.Input) []step.Step {
	adj := Adjacency(in.Edges)
	if s := precheck(adj, in.Start); s != nil {
		return s
	}

	items := nodes(len(adj))
	visited := make([]bool, len(adj))
	b := step.NewBuilder()

	stack := []int{in.Start}
	var order []int
	b.Add(step.Step{
		Phase:       step.PhaseSetup,
		Positions:   step.Positions{"start": in.Start},
		Highlights:  step.Mark(step.TagZone, in.Start),
		Explanation: fmt.Sprintf("Push the start node %d.", in.Start),
		Items:       items,
		Frames:      labels(stack),
	})

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			b.Add(step.Step{
				Phase:       step.PhaseTraverse,
				Positions:   step.Positions{"start": in.Start, "curr": u},
				Highlights:  step.Mark(step.TagVisited, order...).With(step.TagZone, stack...).With(step.TagCompare, u),
				Explanation: fmt.Sprintf("Pop %d: already visited, skip it.", u),
				Items:       items,
				Frames:      labels(stack),
				Output:      order,
			})
			continue
		}
		visited[u] = true
		order = append(order, u)

		var pushed []int
		for i := len(adj[u]) - 1; i >= 0; i-- {
			if v := adj[u][i]; !visited[v] {
				pushed = append(pushed, v)
				stack = append(stack, v)
			}
		}
		expl := fmt.Sprintf("Pop and visit %d; it has no unvisited neighbors, so backtrack.", u)
		if len(pushed) > 0 {
			expl = fmt.Sprintf("Pop and visit %d; push unvisited neighbors %v so the smallest is on top.", u, pushed)
		}
		b.Add(step.Step{
			Phase:       step.PhaseTraverse,
			Positions:   step.Positions{"start": in.Start, "curr": u},
			Highlights:  step.Mark(step.TagVisited, order...).With(step.TagZone, stack...).With(step.TagCurr, u),
			Explanation: expl,
			Items:       items,
			Frames:      labels(stack),
			Output:      order,
		})
	}

	return b.Finish(step.Step{
		Positions:   step.Positions{"start": in.Start},
		Highlights:  step.Mark(step.TagDone, order...),
		Explanation: fmt.Sprintf("Stack empty. DFS order from %d: %v (%d of %d nodes reachable).", in.Start, order, len(order), len(adj)),
		Items:       items,
		Output:      order,
	})
}
