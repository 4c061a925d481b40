package services

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"desktop-gis/internal/geometry"
)

// FileSystem reads and writes whole text files as lines
type FileSystem interface {
	ReadAllLines(path string) ([]string, error)
	WriteAllLines(path string, lines []string) error
}

// OSFileSystem is the FileSystem backed by the local disk
type OSFileSystem struct{}

// ReadAllLines reads the whole file into memory and splits it into lines
func (OSFileSystem) ReadAllLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return geometry.SplitLines(data)
}

// WriteAllLines replaces the file with the given lines
func (OSFileSystem) WriteAllLines(path string, lines []string) error {
	if err := os.WriteFile(path, joinLines(lines), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readAllLines(reader io.Reader) ([]string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read document data: %w", err)
	}
	return geometry.SplitLines(data)
}

func writeAllLines(writer io.Writer, lines []string) error {
	if _, err := io.Copy(writer, bytes.NewReader(joinLines(lines))); err != nil {
		return fmt.Errorf("failed to write document data: %w", err)
	}
	return nil
}

func joinLines(lines []string) []byte {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
