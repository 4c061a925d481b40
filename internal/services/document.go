package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"desktop-gis/internal/geometry"
	"desktop-gis/internal/logger"
	"desktop-gis/internal/models"
)

// ErrNoDocument is returned when saving without an open file
var ErrNoDocument = errors.New("no file to save")

// LoadStatus describes how a load finished
type LoadStatus int

const (
	// LoadClean means every line produced a shape
	LoadClean LoadStatus = iota + 1
	// LoadPartial means some lines were rejected with diagnostics
	LoadPartial
	// LoadEmpty means the file had no lines; the store was left untouched
	LoadEmpty
)

func (s LoadStatus) String() string {
	switch s {
	case LoadClean:
		return "clean"
	case LoadPartial:
		return "partial"
	case LoadEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// LoadResult is the outcome of a successful read
type LoadResult struct {
	Status      LoadStatus
	ShapeCount  int
	Diagnostics []geometry.Diagnostic
	LoadTime    time.Duration
}

// DocumentService moves shapes between text files and a session
type DocumentService struct {
	files   FileSystem
	parser  *geometry.Parser
	session *models.Session
	logger  logger.Logger
}

// NewDocumentService creates a document service over the given session
func NewDocumentService(files FileSystem, parser *geometry.Parser, session *models.Session, log logger.Logger) *DocumentService {
	if files == nil {
		files = OSFileSystem{}
	}
	if parser == nil {
		parser = geometry.NewParser()
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	return &DocumentService{
		files:   files,
		parser:  parser,
		session: session,
		logger:  log,
	}
}

// Load reads the file at path into the session and makes it the open file.
// An empty file leaves the session unchanged.
func (ds *DocumentService) Load(ctx context.Context, path string) (*LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines, err := ds.files.ReadAllLines(path)
	if err != nil {
		ds.logger.Error("DocumentService", err, map[string]interface{}{"path": path})
		return nil, err
	}

	return ds.apply(path, lines), nil
}

// LoadReader reads a document from reader, recording path as the open file
func (ds *DocumentService) LoadReader(ctx context.Context, path string, reader io.Reader) (*LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines, err := readAllLines(reader)
	if err != nil {
		ds.logger.Error("DocumentService", err, map[string]interface{}{"path": path})
		return nil, err
	}

	return ds.apply(path, lines), nil
}

func (ds *DocumentService) apply(path string, lines []string) *LoadResult {
	startTime := time.Now()

	if len(lines) == 0 {
		ds.logger.Info("DocumentService", "file is empty", map[string]interface{}{"path": path})
		return &LoadResult{Status: LoadEmpty, LoadTime: time.Since(startTime)}
	}

	result := ds.parser.Parse(lines)

	ds.session.Reset()
	ds.session.Store().AddAll(result.Records)
	ds.session.SetFilePath(path)

	status := LoadClean
	if result.HadErrors() {
		status = LoadPartial
	}

	loadResult := &LoadResult{
		Status:      status,
		ShapeCount:  len(result.Records),
		Diagnostics: result.Diagnostics,
		LoadTime:    time.Since(startTime),
	}

	ds.logger.Info("DocumentService", "document loaded", map[string]interface{}{
		"path":        path,
		"lines":       len(lines),
		"shapes":      loadResult.ShapeCount,
		"diagnostics": len(loadResult.Diagnostics),
		"status":      status.String(),
	})
	for _, d := range result.Diagnostics {
		ds.logger.Debug("DocumentService", "line rejected", map[string]interface{}{
			"line_number": d.LineNumber,
			"reason":      d.Reason.String(),
			"text":        d.Line,
		})
	}

	return loadResult
}

// Save writes the session's shapes back to its open file
func (ds *DocumentService) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := ds.session.FilePath()
	if path == "" {
		return ErrNoDocument
	}

	lines := ds.session.Store().Serialize()
	if err := ds.files.WriteAllLines(path, lines); err != nil {
		ds.logger.Error("DocumentService", err, map[string]interface{}{"path": path})
		return err
	}

	ds.logger.Info("DocumentService", "document saved", map[string]interface{}{
		"path":   path,
		"shapes": len(lines),
	})
	return nil
}

// SaveWriter writes the session's shapes to writer
func (ds *DocumentService) SaveWriter(ctx context.Context, writer io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeAllLines(writer, ds.session.Store().Serialize())
}

// LoadMessage returns the status text for a load outcome
func LoadMessage(result *LoadResult, err error) string {
	if err != nil {
		return fmt.Sprintf("Error reading file: %v", err)
	}

	switch result.Status {
	case LoadEmpty:
		return "File is empty."
	case LoadPartial:
		messages := make([]string, len(result.Diagnostics))
		for i, d := range result.Diagnostics {
			messages[i] = d.Message()
		}
		return "Document read with warnings:\n" + strings.Join(messages, "\n")
	default:
		return "Document read without errors."
	}
}

// SaveMessage returns the status text for a save outcome
func SaveMessage(err error) string {
	switch {
	case err == nil:
		return "Changes saved."
	case errors.Is(err, ErrNoDocument):
		return "No file to save."
	default:
		return fmt.Sprintf("Error while saving: %v", err)
	}
}
