package models

import (
	"sync"
)

// Session owns the state of one editing session: the open file, the
// shapes loaded from it and the current selection.
type Session struct {
	mu        sync.RWMutex
	filePath  string
	store     *ShapeStore
	selection map[string]struct{}
}

// NewSession creates a session with an empty store and no file
func NewSession() *Session {
	return &Session{
		store:     NewShapeStore(),
		selection: make(map[string]struct{}),
	}
}

// Store returns the session's shape store
func (s *Session) Store() *ShapeStore {
	return s.store
}

// FilePath returns the path of the open file, empty when none
func (s *Session) FilePath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filePath
}

// SetFilePath records the file the session reads from and saves to
func (s *Session) SetFilePath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filePath = path
}

// IsSelected reports whether the shape is selected
func (s *Session) IsSelected(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selection[id]
	return ok
}

// ToggleSelected flips the selection state of a shape and returns the new state
func (s *Session) ToggleSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.selection[id]; ok {
		delete(s.selection, id)
		return false
	}
	s.selection[id] = struct{}{}
	return true
}

// ClearSelection deselects everything
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = make(map[string]struct{})
}

// SelectedIDs returns the selected identifiers in store order
func (s *Session) SelectedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.selection))
	for _, shape := range s.store.Shapes() {
		if _, ok := s.selection[shape.ID]; ok {
			ids = append(ids, shape.ID)
		}
	}
	return ids
}

// DeleteSelected removes the selected shapes from the store
func (s *Session) DeleteSelected() int {
	ids := s.SelectedIDs()
	removed := s.store.Remove(ids...)
	s.ClearSelection()
	return removed
}

// Reset empties the store and the selection ahead of a reload
func (s *Session) Reset() {
	s.store.Clear()
	s.ClearSelection()
}
