// Package history implements a bounded linear undo/redo stack over full
// state snapshots. Snapshots are deep copies rather than diffs; at a depth
// of 5 the memory cost is negligible.
package history

import "github.com/jayantaf631991/debt-dashboard/internal/models"

// MaxDepth is how many snapshots each side keeps. Older entries are evicted
// from the front.
const MaxDepth = 5

// Stack holds the undo and redo snapshot stacks. Not safe for concurrent
// use; the owning controller serializes access.
type Stack struct {
	undo []models.Snapshot
	redo []models.Snapshot
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Record pushes a snapshot taken before a mutating operation. Any recorded
// action invalidates the redo history.
func (s *Stack) Record(snap models.Snapshot) {
	s.undo = push(s.undo, snap)
	s.redo = nil
}

// Undo pops the most recent undo snapshot, pushing the caller's current
// snapshot onto the redo stack. Returns nil when there is nothing to undo.
func (s *Stack) Undo(current models.Snapshot) *models.Snapshot {
	if len(s.undo) == 0 {
		return nil
	}
	top := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = push(s.redo, current)
	return &top
}

// Redo pops the most recent redo snapshot, pushing the caller's current
// snapshot onto the undo stack. Returns nil when there is nothing to redo.
func (s *Stack) Redo(current models.Snapshot) *models.Snapshot {
	if len(s.redo) == 0 {
		return nil
	}
	top := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = push(s.undo, current)
	return &top
}

// CanUndo reports whether an undo snapshot is available.
func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

func push(stack []models.Snapshot, snap models.Snapshot) []models.Snapshot {
	stack = append(stack, snap)
	if len(stack) > MaxDepth {
		stack = stack[len(stack)-MaxDepth:]
	}
	return stack
}
