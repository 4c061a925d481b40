package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"desktop-gis/internal/geometry"
	"desktop-gis/internal/logger"
	"desktop-gis/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validData = "100 100\n200 200 300 300\n100 100 200 100 150 200"
const invalidData = "100 100\ninvalid_data\n200 200 300"

type memoryFiles struct {
	files    map[string]string
	readErr  error
	writeErr error
}

func newMemoryFiles() *memoryFiles {
	return &memoryFiles{files: make(map[string]string)}
}

func (m *memoryFiles) ReadAllLines(path string) ([]string, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return geometry.SplitLines([]byte(data))
}

func (m *memoryFiles) WriteAllLines(path string, lines []string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = string(joinLines(lines))
	return nil
}

func newService(files FileSystem) (*DocumentService, *models.Session) {
	session := models.NewSession()
	return NewDocumentService(files, geometry.NewParser(), session, logger.NoOpLogger{}), session
}

func TestDocumentService_LoadValid(t *testing.T) {
	files := newMemoryFiles()
	files.files["map.txt"] = validData
	docs, session := newService(files)

	result, err := docs.Load(context.Background(), "map.txt")

	require.NoError(t, err)
	assert.Equal(t, LoadClean, result.Status)
	assert.Equal(t, 3, result.ShapeCount)
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, "map.txt", session.FilePath())
	assert.Equal(t, []string{"100 100", "200 200 300 300", "100 100 200 100 150 200"}, session.Store().Serialize())
	assert.Equal(t, "Document read without errors.", LoadMessage(result, nil))
}

func TestDocumentService_LoadInvalid(t *testing.T) {
	files := newMemoryFiles()
	files.files["map.txt"] = invalidData
	docs, session := newService(files)

	result, err := docs.Load(context.Background(), "map.txt")

	require.NoError(t, err)
	assert.Equal(t, LoadPartial, result.Status)
	assert.Equal(t, 1, session.Store().Len())
	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, geometry.NonNumericToken, result.Diagnostics[0].Reason)
	assert.Equal(t, geometry.InvalidTokenCount, result.Diagnostics[1].Reason)

	message := LoadMessage(result, nil)
	assert.True(t, strings.HasPrefix(message, "Document read with warnings:\n"))
	assert.Contains(t, message, "Invalid coordinates in line: invalid_data")
	assert.Contains(t, message, "Error: invalid data line: 200 200 300")
}

func TestDocumentService_LoadEmptyKeepsExistingShapes(t *testing.T) {
	files := newMemoryFiles()
	files.files["first.txt"] = validData
	files.files["empty.txt"] = ""
	docs, session := newService(files)

	_, err := docs.Load(context.Background(), "first.txt")
	require.NoError(t, err)

	result, err := docs.Load(context.Background(), "empty.txt")

	require.NoError(t, err)
	assert.Equal(t, LoadEmpty, result.Status)
	assert.Zero(t, result.ShapeCount)
	assert.Equal(t, 3, session.Store().Len())
	assert.Equal(t, "first.txt", session.FilePath())
	assert.Equal(t, "File is empty.", LoadMessage(result, nil))
}

func TestDocumentService_ReloadReplacesShapes(t *testing.T) {
	files := newMemoryFiles()
	files.files["a.txt"] = validData
	files.files["b.txt"] = "5 5\n"
	docs, session := newService(files)

	_, err := docs.Load(context.Background(), "a.txt")
	require.NoError(t, err)
	_, err = docs.Load(context.Background(), "b.txt")
	require.NoError(t, err)

	assert.Equal(t, []string{"5 5"}, session.Store().Serialize())
	assert.Equal(t, "b.txt", session.FilePath())
}

func TestDocumentService_LoadMissingFile(t *testing.T) {
	docs, session := newService(newMemoryFiles())
	session.Store().Add(geometry.NewPoint(1, 1))

	result, err := docs.Load(context.Background(), "missing.txt")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 1, session.Store().Len())
	assert.True(t, strings.HasPrefix(LoadMessage(nil, err), "Error reading file: "))
}

func TestDocumentService_LoadReader(t *testing.T) {
	docs, session := newService(newMemoryFiles())

	result, err := docs.LoadReader(context.Background(), "/picked/map.txt", strings.NewReader(validData))

	require.NoError(t, err)
	assert.Equal(t, LoadClean, result.Status)
	assert.Equal(t, 3, session.Store().Len())
	assert.Equal(t, "/picked/map.txt", session.FilePath())
}

func TestDocumentService_LoadCancelled(t *testing.T) {
	docs, _ := newService(newMemoryFiles())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := docs.Load(ctx, "map.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDocumentService_SaveAfterDelete(t *testing.T) {
	files := newMemoryFiles()
	files.files["map.txt"] = "100 100\n200 200 300 300\n"
	docs, session := newService(files)

	_, err := docs.Load(context.Background(), "map.txt")
	require.NoError(t, err)

	shapes := session.Store().Shapes()
	session.ToggleSelected(shapes[1].ID)
	session.DeleteSelected()

	require.NoError(t, docs.Save(context.Background()))
	assert.Equal(t, "100 100\n", files.files["map.txt"])
}

func TestDocumentService_SaveWithoutFile(t *testing.T) {
	docs, _ := newService(newMemoryFiles())

	err := docs.Save(context.Background())

	assert.ErrorIs(t, err, ErrNoDocument)
	assert.Equal(t, "No file to save.", SaveMessage(err))
}

func TestDocumentService_SaveFailure(t *testing.T) {
	files := newMemoryFiles()
	files.files["map.txt"] = "1 1"
	docs, _ := newService(files)
	_, err := docs.Load(context.Background(), "map.txt")
	require.NoError(t, err)

	files.writeErr = errors.New("read-only file system")
	err = docs.Save(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Error while saving: read-only file system", SaveMessage(err))
}

func TestDocumentService_SaveWriter(t *testing.T) {
	docs, session := newService(newMemoryFiles())
	session.Store().Add(geometry.NewPoint(1.7, 2.2))
	session.Store().Add(geometry.NewSegment(0, 0, 10, 10))

	var buf bytes.Buffer
	require.NoError(t, docs.SaveWriter(context.Background(), &buf))
	assert.Equal(t, "1 2\n0 0 10 10\n", buf.String())
}

func TestOSFileSystem_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.txt")
	fs := OSFileSystem{}

	require.NoError(t, fs.WriteAllLines(path, []string{"1 2", "3 4 5 6"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 2\n3 4 5 6\n", string(data))

	lines, err := fs.ReadAllLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1 2", "3 4 5 6"}, lines)
}

func TestOSFileSystem_Errors(t *testing.T) {
	dir := t.TempDir()
	fs := OSFileSystem{}

	_, err := fs.ReadAllLines(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = fs.WriteAllLines(filepath.Join(dir, "no", "such", "dir.txt"), nil)
	assert.Error(t, err)
}

func TestOSFileSystem_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(validData), 0o644))

	session := models.NewSession()
	docs := NewDocumentService(nil, nil, session, nil)

	result, err := docs.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, LoadClean, result.Status)

	first := session.Store().Shapes()[0]
	session.ToggleSelected(first.ID)
	session.DeleteSelected()
	require.NoError(t, docs.Save(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "200 200 300 300\n100 100 200 100 150 200\n", string(data))
}
