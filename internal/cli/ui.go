package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // titles, pointers
	colorGreen  = lipgloss.Color("35")  // success, cached, playing
	colorYellow = lipgloss.Color("220") // warnings
	colorRed    = lipgloss.Color("167") // invalid input phase
	colorBlue   = lipgloss.Color("75")  // links, commands
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle renders algorithm and topic titles.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight renders pointer labels under a frame.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleLink renders practice problem URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Status Output
// =============================================================================

// status writes one-line progress notes. Commands point it at stderr so
// stdout carries only data.
type status struct {
	w io.Writer
}

func (c *CLI) status() status { return status{w: c.stderr()} }

func (s status) line(icon lipgloss.Style, mark, msg string) {
	fmt.Fprintln(s.w, icon.Render(mark)+" "+msg)
}

func (s status) success(format string, args ...any) {
	s.line(styleIconSuccess, "✓", fmt.Sprintf(format, args...))
}

func (s status) warn(format string, args ...any) {
	s.line(styleIconWarning, "!", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func (s status) info(format string, args ...any) {
	s.line(styleIconInfo, "›", fmt.Sprintf(format, args...))
}

// detail is indented under the previous line.
func (s status) detail(format string, args ...any) {
	fmt.Fprintln(s.w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func (s status) file(path string) {
	fmt.Fprintln(s.w, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func (s status) next(description, cmd string) {
	fmt.Fprintln(s.w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

func cacheLabel(cached bool) string {
	if cached {
		return styleCached.Render("cached")
	}
	return styleComputed.Render("fresh")
}

// printSequenceStats prints step count, final result and cache origin on
// a single line.
func printSequenceStats(w io.Writer, steps int, result *int, cached bool) {
	line := "  " + StyleDim.Render(fmt.Sprintf("%d steps", steps))
	if result != nil {
		line += StyleDim.Render(" · ") + StyleDim.Render("result "+strconv.Itoa(*result))
	}
	line += StyleDim.Render(" · ") + cacheLabel(cached)
	fmt.Fprintln(w, line)
}
