package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/step"
	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
	dsio "github.com/matzehuels/dsaviz/pkg/io"
	"github.com/matzehuels/dsaviz/pkg/playback"
)

// playCommand opens the interactive player.
func (c *CLI) playCommand() *cobra.Command {
	var (
		input    inputFlags
		speed    time.Duration
		autoplay bool
		load     string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "Step through an algorithm interactively",
		Long: `Open a terminal player for an algorithm.

Keys: ←/→ step, space play/pause, +/- speed, g/G first/last, r reset,
e regenerate, q quit. --load replays a sequence exported with
'dsaviz run -o'.`,
		Example: `  dsaviz play detect-cycle --values 3,2,0,-4 --cycle-pos 1
  dsaviz play bfs --speed 300ms --autoplay
  dsaviz play --load dfs.json`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeAlgorithms,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := c.newRunner(cmd.Context(), noCache)
			defer runner.Close()

			d, err := speedFlag(cmd, speed, c.Config.Playback.Speed)
			if err != nil {
				return err
			}

			var (
				a   *algo.Algorithm
				in  step.Input
				seq *step.Sequence
			)
			switch {
			case load != "":
				if len(args) > 0 {
					return dserrors.New(dserrors.ErrCodeInvalidInput, "--load takes no algorithm argument")
				}
				if seq, err = dsio.ImportJSON(load); err != nil {
					return err
				}
				if a, err = runner.Lookup(seq.Algorithm()); err != nil {
					return err
				}
				in = seq.Input()
			case len(args) == 0:
				return dserrors.New(dserrors.ErrCodeInvalidInput, "algorithm name or --load required")
			default:
				if a, err = runner.Lookup(args[0]); err != nil {
					return err
				}
				if in, err = input.apply(cmd, runner.DefaultInput(a)); err != nil {
					return err
				}
			}

			ctl := playback.New(runner.Source(cmd.Context(), a), playback.WithSpeed(d))
			defer ctl.Close()

			m := newPlayerModel(ctl, a, in)
			if seq != nil {
				ctl.Load(seq)
			} else {
				ctl.Execute(in)
			}
			if autoplay {
				ctl.TogglePlay()
			}
			m.state = ctl.Snapshot()

			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	input.register(cmd)
	cmd.Flags().DurationVar(&speed, "speed", playback.DefaultSpeed, "delay between frames while playing")
	cmd.Flags().BoolVar(&autoplay, "autoplay", false, "start playing immediately")
	cmd.Flags().StringVar(&load, "load", "", "replay a sequence from a JSON file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// =============================================================================
// PlayerModel - bubbletea model around a playback controller
// =============================================================================

// stateMsg carries a controller state into the bubbletea loop.
type stateMsg playback.State

// playerModel renders the controller's current frame. Timer ticks arrive
// through updates; key presses drive the controller directly.
type playerModel struct {
	ctl     *playback.Controller
	alg     *algo.Algorithm
	in      step.Input
	state   playback.State
	updates chan playback.State
}

func newPlayerModel(ctl *playback.Controller, a *algo.Algorithm, in step.Input) playerModel {
	m := playerModel{
		ctl:     ctl,
		alg:     a,
		in:      in,
		updates: make(chan playback.State, 1),
	}
	ctl.OnChange(m.publish)
	return m
}

// publish keeps only the newest state in the channel. Controllers call it
// from timer goroutines, so it must never block.
func (m playerModel) publish(s playback.State) {
	for {
		select {
		case m.updates <- s:
			return
		default:
		}
		select {
		case <-m.updates:
		default:
		}
	}
}

func (m playerModel) waitForState() tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-m.updates)
	}
}

func (m playerModel) Init() tea.Cmd {
	return m.waitForState()
}

func (m playerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = playback.State(msg)
		return m, m.waitForState()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.ctl.Close()
			return m, tea.Quit
		case "right", "l", "n":
			m.ctl.StepForward()
		case "left", "h", "p":
			m.ctl.StepBack()
		case " ", "enter":
			m.ctl.TogglePlay()
		case "+", "=":
			m.ctl.SetSpeed(m.ctl.Snapshot().Speed * 2 / 3)
		case "-", "_":
			m.ctl.SetSpeed(m.ctl.Snapshot().Speed * 3 / 2)
		case "g", "home":
			m.ctl.Seek(0)
		case "G", "end":
			m.ctl.Seek(m.ctl.Snapshot().Length - 1)
		case "r":
			m.ctl.Reset()
		case "e":
			m.ctl.Execute(m.in)
		}
		m.state = m.ctl.Snapshot()
	}
	return m, nil
}

var styleHelp = lipgloss.NewStyle().Foreground(colorDim)

func (m playerModel) View() string {
	if m.state.Length == 0 {
		return StyleDim.Render("Nothing to play.") + "\n"
	}
	var b strings.Builder
	b.WriteString(frame{
		alg:   m.alg,
		in:    m.in,
		s:     m.state.Step,
		index: m.state.Cursor,
		total: m.state.Length,
	}.render())
	b.WriteString("\n\n")

	status := "⏸ paused"
	if m.state.Playing {
		status = StyleSuccess.Render("▶ playing")
	} else if m.state.AtEnd() {
		status = StyleDim.Render("■ finished")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", status, StyleDim.Render(fmt.Sprintf("speed %s", m.state.Speed))))
	b.WriteString(styleHelp.Render("←/→ step  space play/pause  +/- speed  g/G first/last  r reset  e regenerate  q quit"))
	b.WriteString("\n")
	return b.String()
}
