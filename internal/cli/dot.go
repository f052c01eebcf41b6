package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dsaviz/pkg/pipeline"
)

// dotCommand renders one frame as a Graphviz diagram.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		input   inputFlags
		index   int
		format  string
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "dot <algorithm>",
		Short: "Render a single step as DOT, SVG, PNG or PDF",
		Long: `Render one step of an algorithm as a node-link diagram.

DOT is written to stdout unless -o is given. Binary formats need -o. PNG
and PDF additionally require rsvg-convert on PATH.`,
		Example: `  dsaviz dot bfs --step 3 | dot -Tsvg > bfs.svg
  dsaviz dot reverse-all --step 2 -f svg -o reverse.svg
  dsaviz dot dfs --edges 0-1,1-2,2-0 --step 4 -f png -o dfs.png`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeAlgorithms,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFrameFormat(format); err != nil {
				return err
			}
			runner := c.newRunner(cmd.Context(), noCache)
			defer runner.Close()

			a, err := runner.Lookup(args[0])
			if err != nil {
				return err
			}
			in, err := input.apply(cmd, runner.DefaultInput(a))
			if err != nil {
				return err
			}
			res, err := runner.Generate(cmd.Context(), a, in)
			if err != nil {
				return err
			}
			if index < 0 {
				index = res.Sequence.Len() - 1
			}

			data, err := spin(cmd.Context(), c.stderr(), fmt.Sprintf("Rendering %s", format), func() ([]byte, error) {
				return runner.RenderFrame(cmd.Context(), a, res, index, format)
			})
			if err != nil {
				return err
			}

			if output == "" {
				if format != pipeline.FormatDOT && format != pipeline.FormatSVG {
					return fmt.Errorf("%s output is binary: use -o to write it to a file", format)
				}
				_, err := c.stdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			st := c.status()
			st.success("Rendered step %d of %d", index+1, res.Sequence.Len())
			st.file(output)
			return nil
		},
	}

	input.register(cmd)
	cmd.Flags().IntVar(&index, "step", 0, "zero-based step index (-1 for the last step)")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatDOT, "output format: dot, svg, png, pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
