package nodelink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/render/nodelink"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

func ExampleToDOT() {
	s := step.Step{
		Items:     []int{3, 7},
		Links:     []int{1, step.Absent},
		Positions: step.Positions{"head": 0},
	}
	dot := nodelink.ToDOT(s, nodelink.Options{Layout: algo.DisplayList})

	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, "->") {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output:
	// n0 -> n1;
	// "p_head" -> n0 [style=dashed, arrowsize=0.6];
}
