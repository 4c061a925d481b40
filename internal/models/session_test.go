package models

import (
	"testing"

	"desktop-gis/internal/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_DeleteSelected(t *testing.T) {
	session := NewSession()
	store := session.Store()
	store.Add(geometry.NewPoint(100, 100))
	selected := store.Add(geometry.NewSegment(200, 200, 300, 300))

	assert.True(t, session.ToggleSelected(selected.ID))
	assert.Equal(t, []string{selected.ID}, session.SelectedIDs())

	removed := session.DeleteSelected()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, []string{"100 100"}, store.Serialize())
	assert.Empty(t, session.SelectedIDs())
}

func TestSession_DeleteWithEmptySelection(t *testing.T) {
	session := NewSession()
	session.Store().Add(geometry.NewPoint(1, 1))

	assert.Zero(t, session.DeleteSelected())
	assert.Equal(t, 1, session.Store().Len())
}

func TestSession_ToggleSelected(t *testing.T) {
	session := NewSession()
	shape := session.Store().Add(geometry.NewPoint(1, 1))

	require.True(t, session.ToggleSelected(shape.ID))
	assert.True(t, session.IsSelected(shape.ID))

	require.False(t, session.ToggleSelected(shape.ID))
	assert.False(t, session.IsSelected(shape.ID))
}

func TestSession_SelectedIDsFollowStoreOrder(t *testing.T) {
	session := NewSession()
	a := session.Store().Add(geometry.NewPoint(1, 1))
	b := session.Store().Add(geometry.NewPoint(2, 2))
	c := session.Store().Add(geometry.NewPoint(3, 3))

	session.ToggleSelected(c.ID)
	session.ToggleSelected(a.ID)

	assert.Equal(t, []string{a.ID, c.ID}, session.SelectedIDs())
	assert.False(t, session.IsSelected(b.ID))
}

func TestSession_ResetKeepsFilePath(t *testing.T) {
	session := NewSession()
	session.SetFilePath("/tmp/map.txt")
	shape := session.Store().Add(geometry.NewPoint(1, 1))
	session.ToggleSelected(shape.ID)

	session.Reset()

	assert.Zero(t, session.Store().Len())
	assert.Empty(t, session.SelectedIDs())
	assert.Equal(t, "/tmp/map.txt", session.FilePath())
}
