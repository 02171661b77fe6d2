package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/match"
)

func TestHistoryShowsMatches(t *testing.T) {
	store := openStore(t)
	_, err := SaveSummary(store, pong.Summary{
		Result:      match.Result{Winner: core.SideLeft, LeftScore: 5, RightScore: 2},
		LeftDriver:  "human",
		RightDriver: "cpu",
		Duration:    42 * time.Second,
	}, 5)
	require.NoError(t, err)

	m := NewHistoryModel(store, 100, 30)
	view := m.View()

	assert.Contains(t, view, "MATCH HISTORY")
	assert.Contains(t, view, "5-2")
	assert.Contains(t, view, "42s")
	assert.Contains(t, view, "P1 wins  1")
}

func TestHistoryEmpty(t *testing.T) {
	m := NewHistoryModel(openStore(t), 60, 20)
	assert.Contains(t, m.View(), "No matches recorded yet.")
}

func TestHistoryBack(t *testing.T) {
	m := NewHistoryModel(openStore(t), 60, 20)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(HistoryModel)
	assert.True(t, m.IsGoingBack())
	assert.NotNil(t, cmd)

	embedded := NewHistoryModel(openStore(t), 60, 20)
	embedded.embedded = true
	next, cmd = embedded.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(HistoryModel).IsGoingBack())
	assert.Nil(t, cmd, "embedded history returns to the match instead of quitting")
}
