package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bricks/internal/storage"
)

type fakeSource struct {
	runs  []storage.Run
	stats *storage.Stats
	err   error
	calls int
}

func (f *fakeSource) RecentRuns(limit int) ([]storage.Run, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.runs) > limit {
		return f.runs[:limit], nil
	}
	return f.runs, nil
}

func (f *fakeSource) GetStats() (*storage.Stats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

func TestHistoryRow(t *testing.T) {
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")
	run := storage.Run{
		RunID:        id,
		Outcome:      storage.OutcomeWon,
		LevelReached: 3,
		Ticks:        4200,
		CreatedAt:    time.Date(2026, time.March, 4, 18, 30, 0, 0, time.UTC),
	}

	row := HistoryRow(0, run, false)
	require.Equal(t, []string{"1", "won", "3", "4200", "Mar 04 18:30", "0f8fad5b"}, []string(row))

	row = HistoryRow(4, run, true)
	require.Equal(t, "5", row[0])
	require.Equal(t, id.String(), row[5])
}

func TestHistoryModelShowsRuns(t *testing.T) {
	src := &fakeSource{
		runs: []storage.Run{
			{RunID: uuid.New(), Outcome: storage.OutcomeLost, LevelReached: 2, Ticks: 900},
		},
		stats: &storage.Stats{Runs: 1, Losses: 1, BestLevel: 2},
	}

	m := NewHistoryModel(src, 80, 24)
	out := m.View()

	require.Contains(t, out, "RUN HISTORY")
	require.Contains(t, out, "1 runs  0 won  1 lost  best level 2")
	require.Contains(t, out, "lost")
	require.Len(t, m.table.Rows(), 1)
}

func TestHistoryModelEmptyAndErrors(t *testing.T) {
	m := NewHistoryModel(&fakeSource{}, 80, 24)
	require.Contains(t, m.View(), "No runs recorded yet.")

	m = NewHistoryModel(&fakeSource{err: errors.New("locked")}, 80, 24)
	require.Contains(t, m.View(), "locked")

	m = NewHistoryModel(nil, 80, 24)
	require.Contains(t, m.View(), "no runs yet")
}

func TestHistoryModelRefreshAndQuit(t *testing.T) {
	src := &fakeSource{}
	m := NewHistoryModel(src, 80, 24)
	require.Equal(t, 1, src.calls)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(HistoryModel)
	require.Equal(t, 2, src.calls)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.Empty(t, next.View())
}
