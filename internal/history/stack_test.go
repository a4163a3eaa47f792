package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
)

func snap(balance int64) models.Snapshot {
	return models.Snapshot{
		BankBalance: decimal.NewFromInt(balance),
		Timestamp:   time.Now(),
	}
}

func TestStack_UndoThenRedoRoundTrip(t *testing.T) {
	s := NewStack()
	s.Record(snap(100)) // state before the mutation

	current := snap(90) // state after the mutation
	undone := s.Undo(current)
	require.NotNil(t, undone)
	assert.True(t, undone.BankBalance.Equal(decimal.NewFromInt(100)))

	redone := s.Redo(*undone)
	require.NotNil(t, redone)
	assert.True(t, redone.BankBalance.Equal(current.BankBalance), "redo reproduces the pre-undo state")
}

func TestStack_RecordClearsRedo(t *testing.T) {
	s := NewStack()
	s.Record(snap(100))
	require.NotNil(t, s.Undo(snap(90)))
	require.True(t, s.CanRedo())

	s.Record(snap(80))
	assert.False(t, s.CanRedo(), "a new action invalidates the redo history")
}

func TestStack_UndoOnEmptyIsNil(t *testing.T) {
	s := NewStack()
	assert.Nil(t, s.Undo(snap(1)))
	assert.Nil(t, s.Redo(snap(1)))
}

func TestStack_EvictsOldestBeyondDepth(t *testing.T) {
	s := NewStack()
	for i := int64(1); i <= 7; i++ {
		s.Record(snap(i))
	}

	// Only the 5 most recent snapshots survive: 7, 6, 5, 4, 3.
	var popped []string
	for {
		u := s.Undo(snap(0))
		if u == nil {
			break
		}
		popped = append(popped, u.BankBalance.String())
	}
	assert.Equal(t, []string{"7", "6", "5", "4", "3"}, popped)
}

func TestStack_RedoDepthAlsoBounded(t *testing.T) {
	s := NewStack()
	for i := int64(1); i <= 7; i++ {
		s.Record(snap(i))
	}
	for i := 0; i < MaxDepth; i++ {
		require.NotNil(t, s.Undo(snap(int64(100+i))))
	}
	count := 0
	for s.CanRedo() {
		require.NotNil(t, s.Redo(snap(0)))
		count++
		require.LessOrEqual(t, count, MaxDepth, fmt.Sprintf("redo stack exceeded depth %d", MaxDepth))
	}
	assert.Equal(t, MaxDepth, count)
}
