package linkedlist

import (
	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// Topic is the linked list topic.
var Topic = &algo.Topic{
	Name:  "linked-list",
	Title: "Linked Lists",
	Description: "A singly linked list is a chain of nodes, each holding a value and a pointer " +
		"to the next node. Most list techniques are pointer choreography: keep a few named " +
		"references (prev, curr, next, slow, fast) and rewire arrows in O(1) extra space.",
	Algorithms: []*algo.Algorithm{
		ReverseAll, ReverseBetween, ReverseKGroup, ReverseRecursive, FindMiddle, DetectCycle,
	},
}

var (
	listParams = []algo.Param{algo.ParamValues}
	sample     = []int{3, 7, 12, 25, 18}
)

// ReverseAll reverses a whole list iteratively.
var ReverseAll = &algo.Algorithm{
	Name:     "reverse-all",
	Title:    "Reverse a Linked List",
	Summary:  "Walk the list once, flipping each arrow with prev/curr/next pointers.",
	Display:  algo.DisplayList,
	Params:   listParams,
	Defaults: step.Input{Values: []int{3, 7, 12}},
	Generate: genReverseAll,
}

// ReverseBetween reverses the sublist between two 1-based positions.
var ReverseBetween = &algo.Algorithm{
	Name:     "reverse-between",
	Title:    "Reverse Between",
	Summary:  "Reverse only positions left..right and reconnect the untouched ends.",
	Display:  algo.DisplayList,
	Params:   []algo.Param{algo.ParamValues, algo.ParamLeft, algo.ParamRight},
	Defaults: step.Input{Values: sample, Left: 2, Right: 4},
	Generate: genReverseBetween,
}

// ReverseKGroup reverses the list in consecutive groups of k nodes.
var ReverseKGroup = &algo.Algorithm{
	Name:     "reverse-k-group",
	Title:    "Reverse Nodes in k-Group",
	Summary:  "Reverse every full group of k nodes; a short tail group stays as is.",
	Display:  algo.DisplayList,
	Params:   []algo.Param{algo.ParamValues, algo.ParamK},
	Defaults: step.Input{Values: []int{1, 2, 3, 4, 5, 6, 7}, K: 3},
	Generate: genReverseKGroup,
}

// ReverseRecursive reverses a list with simulated recursion.
var ReverseRecursive = &algo.Algorithm{
	Name:     "reverse-recursive",
	Title:    "Recursive Reversal",
	Summary:  "Descend to the tail, then flip one arrow per returning call.",
	Display:  algo.DisplayList,
	Params:   listParams,
	Defaults: step.Input{Values: []int{3, 7, 12, 25}},
	Generate: genReverseRecursive,
}

// FindMiddle locates the middle node with slow and fast pointers.
var FindMiddle = &algo.Algorithm{
	Name:     "find-middle",
	Title:    "Middle of a Linked List",
	Summary:  "fast moves two nodes for every one slow moves; when fast stops, slow is the middle.",
	Display:  algo.DisplayList,
	Params:   listParams,
	Defaults: step.Input{Values: sample},
	Generate: genFindMiddle,
}

// DetectCycle runs Floyd's cycle detection.
var DetectCycle = &algo.Algorithm{
	Name:     "detect-cycle",
	Title:    "Floyd's Cycle Detection",
	Summary:  "A hare moving twice as fast as the tortoise must catch it inside a cycle.",
	Display:  algo.DisplayList,
	Params:   []algo.Param{algo.ParamValues, algo.ParamCyclePos},
	Defaults: step.Input{Values: sample, CyclePos: 1},
	Generate: genDetectCycle,
}
