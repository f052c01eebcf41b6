package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/algo/dp"
	"github.com/matzehuels/dsaviz/pkg/core/algo/tree"
	"github.com/matzehuels/dsaviz/pkg/core/render/style"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// =============================================================================
// Frame View - terminal rendering of one step
// =============================================================================

const explainWidth = 72

var (
	stylePhase   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(colorWhite).Background(lipgloss.Color("238"))
	styleInvalid = stylePhase.Background(colorRed)
	styleDonePh  = stylePhase.Background(lipgloss.Color("29"))
	styleExplain = lipgloss.NewStyle().Width(explainWidth)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	styleBar     = lipgloss.NewStyle().Foreground(colorCyan)
)

// pointerOrder fixes the order pointer names are listed in under a cell.
var pointerOrder = []string{
	"head", "lo", "mid", "hi", "i", "slow", "fast", "prev", "curr", "next",
	"before", "top", "p", "q", "meet", "entry", "start",
}

// frame renders the state of one step for a terminal.
type frame struct {
	alg   *algo.Algorithm
	in    step.Input
	s     step.Step
	index int
	total int
}

func (f frame) render() string {
	var b strings.Builder
	b.WriteString(f.header())
	b.WriteString("\n\n")
	if body := f.body(); body != "" {
		b.WriteString(body)
		b.WriteString("\n\n")
	}
	for _, row := range f.rows() {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleExplain.Render(f.s.Explanation))
	return b.String()
}

func (f frame) header() string {
	ph := stylePhase
	switch f.s.Phase {
	case step.PhaseInvalid:
		ph = styleInvalid
	case step.PhaseDone:
		ph = styleDonePh
	}
	return StyleTitle.Render(f.alg.Title) + "  " +
		ph.Render(string(f.s.Phase)) + "  " +
		StyleDim.Render(fmt.Sprintf("step %d/%d", f.index+1, f.total)) + "  " +
		progressBar(f.index, f.total, 20)
}

func progressBar(index, total, width int) string {
	if total <= 1 {
		return styleBar.Render(strings.Repeat("━", width))
	}
	filled := index * width / (total - 1)
	return styleBar.Render(strings.Repeat("━", filled)) + StyleDim.Render(strings.Repeat("─", width-filled))
}

func (f frame) body() string {
	switch f.alg.Display {
	case algo.DisplayTree:
		return f.treeBody()
	case algo.DisplayStack:
		return f.stackBody()
	}
	return f.rowBody()
}

// label is the text drawn inside cell i.
func (f frame) label(i int) string {
	v := f.s.Items[i]
	switch f.alg.Display {
	case algo.DisplayText:
		if v == ' ' {
			return "␣"
		}
		return string(rune(v))
	case algo.DisplayTable:
		if v == dp.Unfilled {
			return "·"
		}
	case algo.DisplayTree:
		if v == tree.Nil {
			return "·"
		}
	}
	return strconv.Itoa(v)
}

func (f frame) cell(i, width int) string {
	st := style.Of(f.s, i)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Background(lipgloss.Color(st.ANSI)).
		Foreground(lipgloss.Color(st.Text)).
		Bold(st.Glow).
		Render(f.label(i))
}

func (f frame) pointers(i int) string {
	return strings.Join(style.Pointers(f.s, i, pointerOrder), ",")
}

// rowBody lays the elements out left to right with an index row above
// and a pointer row below.
func (f frame) rowBody() string {
	n := len(f.s.Items)
	if n == 0 {
		return ""
	}
	width := 3
	for i := range n {
		width = max(width, lipgloss.Width(f.label(i))+2, len(f.pointers(i)), len(strconv.Itoa(i)))
	}
	cellStyle := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var idx, cells, ptrs, links []string
	for i := range n {
		idx = append(idx, StyleDim.Render(cellStyle.Render(strconv.Itoa(i))))
		cells = append(cells, f.cell(i, width))
		ptrs = append(ptrs, StyleHighlight.Render(cellStyle.Render(f.pointers(i))))
		if f.s.Links != nil {
			links = append(links, StyleDim.Render(cellStyle.Render(f.link(i))))
		}
	}
	lines := []string{strings.Join(idx, " "), strings.Join(cells, " ")}
	if links != nil {
		lines = append(lines, strings.Join(links, " "))
	}
	lines = append(lines, strings.Join(ptrs, " "))
	return strings.Join(lines, "\n")
}

// link describes the successor of list node i.
func (f frame) link(i int) string {
	if i >= len(f.s.Links) || f.s.Links[i] == step.Absent {
		return "→∅"
	}
	return "→" + strconv.Itoa(f.s.Links[i])
}

// treeBody prints a heap-ordered tree one level per line.
func (f frame) treeBody() string {
	n := len(f.s.Items)
	if n == 0 {
		return ""
	}
	width := 3
	for i := range n {
		width = max(width, lipgloss.Width(f.label(i))+2)
	}
	var lines []string
	for lo := 0; lo < n; lo = 2*lo + 1 {
		hi := min(2*lo+1, n)
		gap := strings.Repeat(" ", (1<<max(0, levels(n)-level(lo)-1))*2)
		var cells []string
		for i := lo; i < hi; i++ {
			if f.s.Items[i] == tree.Nil {
				cells = append(cells, StyleDim.Render(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render("·")))
				continue
			}
			cells = append(cells, f.cell(i, width))
		}
		lines = append(lines, gap+strings.Join(cells, gap))
	}
	return strings.Join(lines, "\n")
}

func level(i int) int {
	l := 0
	for i > 0 {
		i = (i - 1) / 2
		l++
	}
	return l
}

func levels(n int) int {
	if n == 0 {
		return 0
	}
	return level(n-1) + 1
}

// stackBody draws call frames with the most recent on top.
func (f frame) stackBody() string {
	if len(f.s.Frames) == 0 {
		return StyleDim.Render("(call stack empty)")
	}
	box := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorDim).Padding(0, 1)
	top := box.BorderForeground(colorCyan).Bold(true)
	frames := slices.Clone(f.s.Frames)
	slices.Reverse(frames)
	var parts []string
	for i, fr := range frames {
		if i == 0 {
			parts = append(parts, top.Render(fr))
			continue
		}
		parts = append(parts, box.Render(fr))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// rows lists the auxiliary state below the diagram.
func (f frame) rows() []string {
	var rows []string
	add := func(key, value string) {
		rows = append(rows, styleLabel.Render(key)+" "+StyleValue.Render(value))
	}

	switch f.alg.Display {
	case algo.DisplayTree, algo.DisplayStack:
		if p := positionsText(f.s.Positions); p != "" {
			add("pointers", p)
		}
	case algo.DisplayGraph:
		add("edges", edgesText(f.in.Edges))
	}
	if f.alg.Display != algo.DisplayStack && len(f.s.Frames) > 0 {
		add(framesLabel(f.alg.Display), "["+strings.Join(f.s.Frames, " ")+"]")
	}
	if f.alg.Display == algo.DisplayStack && len(f.s.Items) > 0 {
		add("args", fmt.Sprint(f.s.Items))
	}
	if len(f.s.Output) > 0 {
		add("output", f.outputText())
	}
	if f.s.Result != nil {
		add("result", StyleNumber.Render(strconv.Itoa(*f.s.Result)))
	}
	return rows
}

func framesLabel(d algo.Display) string {
	switch d {
	case algo.DisplayGraph:
		return "frontier"
	case algo.DisplayTree:
		return "pending"
	}
	return "stack"
}

func (f frame) outputText() string {
	if f.alg.Display == algo.DisplayText {
		r := make([]rune, len(f.s.Output))
		for i, v := range f.s.Output {
			r[i] = rune(v)
		}
		return strconv.Quote(string(r))
	}
	return fmt.Sprint(f.s.Output)
}

func positionsText(p step.Positions) string {
	var parts []string
	for _, name := range pointerOrder {
		if v, ok := p[name]; ok {
			if v == step.Absent {
				parts = append(parts, name+"=∅")
				continue
			}
			parts = append(parts, fmt.Sprintf("%s=%d", name, v))
		}
	}
	return strings.Join(parts, " ")
}

func edgesText(edges []step.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = fmt.Sprintf("%d-%d", e[0], e[1])
	}
	return strings.Join(parts, " ")
}
