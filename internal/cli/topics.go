package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/algo/topics"
	"github.com/matzehuels/dsaviz/pkg/pipeline"
)

var tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tableHeaderStyle.Padding(0, 1)
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// topicsCommand lists every topic.
func (c *CLI) topicsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List topics and their algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeTopics(c.stdout(), topics.All)
			return nil
		},
	}
}

func writeTopics(w io.Writer, all []*algo.Topic) {
	t := newTable("Topic", "Title", "#", "Algorithms")
	for _, tp := range all {
		names := make([]string, len(tp.Algorithms))
		for i, a := range tp.Algorithms {
			names[i] = a.Name
		}
		t.Row(tp.Name, tp.Title, fmt.Sprint(len(tp.Algorithms)), strings.Join(names, ", "))
	}
	fmt.Fprintln(w, t.Render())
}

// topicCommand shows one topic in detail.
func (c *CLI) topicCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topic <name>",
		Short: "Describe a topic, its algorithms and practice problems",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			names := make([]string, len(topics.All))
			for i, t := range topics.All {
				names[i] = t.Name
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tp, err := pipeline.NewRunner(nil, nil, c.Logger).LookupTopic(args[0])
			if err != nil {
				return err
			}
			problems, err := topics.Problems(tp.Name)
			if err != nil {
				return fmt.Errorf("load problems: %w", err)
			}
			writeTopic(c.stdout(), tp, problems)
			return nil
		},
	}
}

func writeTopic(w io.Writer, tp *algo.Topic, problems []topics.Problem) {
	fmt.Fprintln(w, StyleTitle.Render(tp.Title))
	fmt.Fprintln(w, lipgloss.NewStyle().Width(explainWidth).Render(tp.Description))
	fmt.Fprintln(w)

	at := newTable("Algorithm", "Title", "Inputs", "Summary")
	for _, a := range tp.Algorithms {
		params := make([]string, len(a.Params))
		for i, p := range a.Params {
			params[i] = "--" + string(p)
		}
		at.Row(a.Name, a.Title, strings.Join(params, " "), a.Summary)
	}
	fmt.Fprintln(w, at.Render())

	if len(problems) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render("Practice"))
	pt := newTable("Problem", "Difficulty", "Technique", "Link")
	for _, p := range problems {
		pt.Row(p.Title, p.Difficulty, p.Technique, StyleLink.Render(p.URL))
	}
	fmt.Fprintln(w, pt.Render())
}
