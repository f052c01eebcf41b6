package tree

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// Nil marks an absent node in heap-ordered input.
const Nil = -1

// Topic is the trees topic.
var Topic = &algo.Topic{
	Name:  "trees",
	Title: "Trees",
	Description: "A binary tree node has at most two children. Depth-first orders (pre, in, post) " +
		"fall out of recursion or an explicit stack; breadth-first order uses a queue and " +
		"visits the tree level by level.",
	Algorithms: []*algo.Algorithm{Inorder, LevelOrder},
}

var sample = []int{8, 4, 12, 2, 6, 10, 14, Nil, 3}

// Inorder traverses left subtree, node, right subtree with an explicit stack.
var Inorder = &algo.Algorithm{
	Name:     "inorder",
	Title:    "Inorder Traversal",
	Summary:  "Push the left spine, pop to visit, then continue with the right child.",
	Display:  algo.DisplayTree,
	Params:   []algo.Param{algo.ParamValues},
	Defaults: step.Input{Values: sample},
	Generate: genInorder,
}

// LevelOrder visits nodes level by level with a queue.
var LevelOrder = &algo.Algorithm{
	Name:     "level-order",
	Title:    "Level-Order Traversal",
	Summary:  "Dequeue a node, visit it, enqueue its children.",
	Display:  algo.DisplayTree,
	Params:   []algo.Param{algo.ParamValues},
	Defaults: step.Input{Values: sample},
	Generate: genLevelOrder,
}

type heap []int

func (h heap) has(i int) bool { return i >= 0 && i < len(h) && h[i] != Nil }

func (h heap) left(i int) int {
	if h.has(2*i + 1) {
		return 2*i + 1
	}
	return step.Absent
}

func (h heap) right(i int) int {
	if h.has(2*i + 2) {
		return 2*i + 2
	}
	return step.Absent
}

func (h heap) label(i int) string {
	if !h.has(i) {
		return "nil"
	}
	return strconv.Itoa(h[i])
}

func (h heap) frames(idx []int) []string {
	out := make([]string, len(idx))
	for i, n := range idx {
		out[i] = h.label(n)
	}
	return out
}

func emptyTree() []step.Step {
	return step.Single(step.PhaseDone, "The tree is empty, so the traversal visits nothing.", nil)
}

func genInorder(in step.Input) []step.Step {
	h := heap(in.Values)
	if !h.has(0) {
		return emptyTree()
	}

	b := step.NewBuilder()
	var stack, visited, output []int
	curr := 0

	for curr != step.Absent || len(stack) > 0 {
		for curr != step.Absent {
			stack = append(stack, curr)
			b.Add(step.Step{
				Phase:       step.PhaseDescend,
				Positions:   step.Positions{"curr": curr},
				Highlights:  step.Mark(step.TagVisited, visited...).With(step.TagZone, stack...).With(step.TagCurr, curr),
				Explanation: fmt.Sprintf("Push %s and go left to %s.", h.label(curr), h.label(2*curr+1)),
				Items:       h,
				Frames:      h.frames(stack),
				Output:      output,
			})
			curr = h.left(curr)
		}

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited = append(visited, node)
		output = append(output, h[node])
		b.Add(step.Step{
			Phase:       step.PhaseUnwind,
			Positions:   step.Positions{"curr": node},
			Highlights:  step.Mark(step.TagVisited, visited...).With(step.TagZone, stack...).With(step.TagFound, node),
			Explanation: fmt.Sprintf("No left child remains: pop and visit %s, then try its right child %s.", h.label(node), h.label(2*node+2)),
			Items:       h,
			Frames:      h.frames(stack),
			Output:      output,
		})
		curr = h.right(node)
	}

	return b.Finish(step.Step{
		Highlights:  step.Mark(step.TagDone, visited...),
		Explanation: fmt.Sprintf("Stack empty and no node pending: inorder = %v.", output),
		Items:       h,
		Output:      output,
	})
}

func genLevelOrder(in step.Input) []step.Step {
	h := heap(in.Values)
	if !h.has(0) {
		return emptyTree()
	}

	b := step.NewBuilder()
	queue := []int{0}
	var visited, output []int
	b.Add(step.Step{
		Phase:       step.PhaseSetup,
		Highlights:  step.Mark(step.TagZone, 0),
		Explanation: fmt.Sprintf("Enqueue the root %s.", h.label(0)),
		Items:       h,
		Frames:      h.frames(queue),
	})

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		visited = append(visited, node)
		output = append(output, h[node])

		var kids []int
		for _, c := range []int{h.left(node), h.right(node)} {
			if c != step.Absent {
				kids = append(kids, c)
				queue = append(queue, c)
			}
		}
		expl := fmt.Sprintf("Dequeue and visit %s; it has no children.", h.label(node))
		if len(kids) > 0 {
			expl = fmt.Sprintf("Dequeue and visit %s; enqueue its children %v.", h.label(node), h.frames(kids))
		}
		b.Add(step.Step{
			Phase:       step.PhaseTraverse,
			Positions:   step.Positions{"curr": node},
			Highlights:  step.Mark(step.TagVisited, visited...).With(step.TagZone, queue...).With(step.TagFound, node),
			Explanation: expl,
			Items:       h,
			Frames:      h.frames(queue),
			Output:      output,
		})
	}

	return b.Finish(step.Step{
		Highlights:  step.Mark(step.TagDone, visited...),
		Explanation: fmt.Sprintf("The queue is empty: level order = %v.", output),
		Items:       h,
		Output:      output,
	})
}
