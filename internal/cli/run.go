package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/algo/topics"
	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
	dsio "github.com/matzehuels/dsaviz/pkg/io"
	"github.com/matzehuels/dsaviz/pkg/pipeline"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// runCommand prints the steps of one algorithm, or of all of them.
func (c *CLI) runCommand() *cobra.Command {
	var (
		input   inputFlags
		format  string
		frames  bool
		all     bool
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "Print every step of an algorithm",
		Long: `Generate the step sequence of an algorithm and print it.

Input flags override the algorithm's defaults; run 'dsaviz topic <name>'
to see which flags an algorithm reads. Use --all to run every algorithm on
its defaults.`,
		Example: `  dsaviz run binary-search --values 1,3,5,7,9 --target 7
  dsaviz run reverse-between --values 1,2,3,4,5 --left 2 --right 4 --frames
  dsaviz run bfs --edges 0-1,0-2,1-3 --format json
  dsaviz run dfs -o dfs.json
  dsaviz run --all`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeAlgorithms,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := dserrors.ValidateFormat(format, formatTable, formatJSON); err != nil {
				return err
			}
			runner := c.newRunner(cmd.Context(), noCache)
			defer runner.Close()

			if all {
				if len(args) > 0 {
					return dserrors.New(dserrors.ErrCodeInvalidInput, "--all takes no algorithm argument")
				}
				return c.runAll(cmd.Context(), runner, format)
			}
			if len(args) == 0 {
				return dserrors.New(dserrors.ErrCodeInvalidInput, "algorithm name required (see 'dsaviz topics')")
			}

			a, err := runner.Lookup(args[0])
			if err != nil {
				return err
			}
			in, err := input.apply(cmd, runner.DefaultInput(a))
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			res, err := runner.Generate(cmd.Context(), a, in)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Generated %d steps for %s", res.Sequence.Len(), a.Name))

			if output != "" {
				if err := dsio.ExportJSON(res.Sequence, output); err != nil {
					return err
				}
				st := c.status()
				st.success("Exported %d steps", res.Sequence.Len())
				st.file(output)
				st.next("Replay it", "dsaviz play --load "+output)
				return nil
			}

			w := c.stdout()
			switch {
			case format == formatJSON:
				return writeJSON(w, res.Sequence)
			case frames:
				writeFrames(w, a, res)
			default:
				writeStepTable(w, a, res)
			}
			return nil
		},
	}

	input.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json")
	cmd.Flags().BoolVar(&frames, "frames", false, "draw every frame instead of the step table")
	cmd.Flags().BoolVar(&all, "all", false, "run every algorithm with its defaults")
	cmd.Flags().StringVarP(&output, "output", "o", "", "export the sequence as JSON to this file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runAll generates every algorithm concurrently.
func (c *CLI) runAll(ctx context.Context, runner *pipeline.Runner, format string) error {
	algs := topics.Algorithms()
	reqs := make([]pipeline.Request, len(algs))
	for i, a := range algs {
		reqs[i] = pipeline.Request{Algorithm: a.Name}
	}

	p := newProgress(c.Logger)
	results, err := spin(ctx, c.stderr(), fmt.Sprintf("Generating %d sequences", len(reqs)), func() ([]*pipeline.Result, error) {
		return runner.ExecuteAll(ctx, reqs)
	})
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Generated %d sequences", len(results)))

	w := c.stdout()
	if format == formatJSON {
		seqs := make([]any, len(results))
		for i, r := range results {
			seqs[i] = r.Sequence
		}
		return writeJSON(w, seqs)
	}

	t := newTable("Algorithm", "Steps", "Result", "Cache")
	for i, r := range results {
		last := r.Sequence.Last()
		result := "-"
		if last.Result != nil {
			result = strconv.Itoa(*last.Result)
		} else if len(last.Output) > 0 {
			result = fmt.Sprint(last.Output)
		}
		t.Row(algs[i].Name, strconv.Itoa(r.Sequence.Len()), result, cacheLabel(r.Cached))
	}
	fmt.Fprintln(w, t.Render())
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeStepTable(w io.Writer, a *algo.Algorithm, res *pipeline.Result) {
	seq := res.Sequence
	fmt.Fprintln(w, StyleTitle.Render(a.Title)+"  "+StyleDim.Render(algo.Describe(a, seq.Input())))
	t := newTable("#", "Phase", "Pointers", "Explanation")
	for i, s := range seq.Steps() {
		t.Row(strconv.Itoa(i), string(s.Phase), positionsText(s.Positions), s.Explanation)
	}
	fmt.Fprintln(w, t.Render())
	printSequenceStats(w, seq.Len(), seq.Last().Result, res.Cached)
}

func writeFrames(w io.Writer, a *algo.Algorithm, res *pipeline.Result) {
	seq := res.Sequence
	in := seq.Input()
	for i, s := range seq.Steps() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, frame{alg: a, in: in, s: s, index: i, total: seq.Len()}.render())
	}
	fmt.Fprintln(w)
	printSequenceStats(w, seq.Len(), seq.Last().Result, res.Cached)
}

// completeAlgorithms offers algorithm names for shell completion.
func completeAlgorithms(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return algo.Names(topics.All), cobra.ShellCompDirectiveNoFileComp
}
