package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dsaviz/pkg/core/algo/search"
	"github.com/matzehuels/dsaviz/pkg/core/step"
	"github.com/matzehuels/dsaviz/pkg/playback"
)

func newTestPlayer(t *testing.T) playerModel {
	t.Helper()
	a := search.BinarySearch
	in := a.Defaults
	ctl := playback.New(func(in step.Input) *step.Sequence { return a.Run(in) })
	t.Cleanup(ctl.Close)
	m := newPlayerModel(ctl, a, in)
	ctl.Execute(in)
	m.state = ctl.Snapshot()
	require.Greater(t, m.state.Length, 2)
	return m
}

func press(m playerModel, key tea.KeyMsg) (playerModel, tea.Cmd) {
	next, cmd := m.Update(key)
	return next.(playerModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayerKeys(t *testing.T) {
	m := newTestPlayer(t)
	n := m.state.Length

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.state.Cursor)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.state.Cursor)

	m, _ = press(m, runes("G"))
	assert.Equal(t, n-1, m.state.Cursor)
	assert.Contains(t, m.View(), "finished")

	m, _ = press(m, runes("g"))
	assert.Equal(t, 0, m.state.Cursor)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.state.Playing)
	assert.Contains(t, m.View(), "playing")

	m, _ = press(m, runes("r"))
	assert.False(t, m.state.Playing)
	assert.Equal(t, 0, m.state.Cursor)

	before := m.state.Speed
	m, _ = press(m, runes("-"))
	assert.Greater(t, m.state.Speed, before)

	_, cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPlayerSpeedUsesControllerState(t *testing.T) {
	m := newTestPlayer(t)
	m.ctl.SetSpeed(900 * time.Millisecond)
	require.Equal(t, playback.DefaultSpeed, m.state.Speed, "model state lags the controller")

	m, _ = press(m, runes("+"))
	assert.Equal(t, 600*time.Millisecond, m.state.Speed)

	m.ctl.SetSpeed(200 * time.Millisecond)
	m, _ = press(m, runes("-"))
	assert.Equal(t, 300*time.Millisecond, m.state.Speed)
}

func TestPlayerStateMessages(t *testing.T) {
	m := newTestPlayer(t)
	st := m.state
	st.Cursor = 3

	next, cmd := m.Update(stateMsg(st))
	assert.Equal(t, 3, next.(playerModel).state.Cursor)
	assert.NotNil(t, cmd, "keeps waiting for the next state")
}

func TestPublishKeepsLatest(t *testing.T) {
	m := newTestPlayer(t)
	for len(m.updates) > 0 {
		<-m.updates
	}
	for i := range 5 {
		m.publish(playback.State{Cursor: i})
	}
	require.Len(t, m.updates, 1)
	assert.Equal(t, 4, (<-m.updates).Cursor)
}

func TestPlayerViewEmpty(t *testing.T) {
	m := playerModel{alg: search.BinarySearch}
	assert.Contains(t, m.View(), "Nothing to play")
}
