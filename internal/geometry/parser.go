package geometry

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Reason classifies a per-line parse failure
type Reason int

const (
	NonNumericToken Reason = iota + 1
	InvalidTokenCount
)

func (r Reason) String() string {
	switch r {
	case NonNumericToken:
		return "non-numeric token"
	case InvalidTokenCount:
		return "invalid token count"
	default:
		return "unknown"
	}
}

// Diagnostic reports a line that produced no record
type Diagnostic struct {
	Line       string
	LineNumber int
	Reason     Reason
}

// Message returns the text shown to the user for this diagnostic
func (d Diagnostic) Message() string {
	switch d.Reason {
	case NonNumericToken:
		return fmt.Sprintf("Invalid coordinates in line: %s", d.Line)
	default:
		return fmt.Sprintf("Error: invalid data line: %s", d.Line)
	}
}

// Result holds everything a parse run produced
type Result struct {
	Records     []Record
	Diagnostics []Diagnostic
}

// HadErrors reports whether any line was rejected
func (r Result) HadErrors() bool {
	return len(r.Diagnostics) > 0
}

// Messages returns the diagnostic messages in line order
func (r Result) Messages() []string {
	messages := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		messages[i] = d.Message()
	}
	return messages
}

// Option configures a Parser
type Option func(*Parser)

// WithSkipBlankLines makes lines without tokens produce neither a record
// nor a diagnostic.
func WithSkipBlankLines(skip bool) Option {
	return func(p *Parser) {
		p.skipBlankLines = skip
	}
}

// Parser turns text lines into records. It holds no state between calls.
type Parser struct {
	skipBlankLines bool
}

// NewParser creates a parser with the given options
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts lines into records, isolating failures per line
func (p *Parser) Parse(lines []string) Result {
	result := Result{
		Records: make([]Record, 0, len(lines)),
	}

	for i, line := range lines {
		record, diag, ok := p.ParseLine(line)
		if diag != nil {
			diag.LineNumber = i + 1
			result.Diagnostics = append(result.Diagnostics, *diag)
			continue
		}
		if ok {
			result.Records = append(result.Records, record)
		}
	}

	return result
}

// ParseLine parses a single line. It returns either a record with ok set,
// a diagnostic, or neither when a blank line is skipped.
func (p *Parser) ParseLine(line string) (Record, *Diagnostic, bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 && p.skipBlankLines {
		return Record{}, nil, false
	}

	values := make([]float64, len(tokens))
	for i, token := range tokens {
		value, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return Record{}, newDiagnostic(line, NonNumericToken), false
		}
		values[i] = value
	}

	record, err := recordFromValues(values)
	if err != nil {
		return Record{}, newDiagnostic(line, InvalidTokenCount), false
	}
	return record, nil, true
}

func newDiagnostic(line string, reason Reason) *Diagnostic {
	return &Diagnostic{
		Line:   strings.TrimSpace(line),
		Reason: reason,
	}
}

func recordFromValues(values []float64) (Record, error) {
	n := len(values)
	switch {
	case n == 2:
		return NewPoint(values[0], values[1]), nil
	case n == 4:
		return NewSegment(values[0], values[1], values[2], values[3]), nil
	case n >= 2*MinPolygonVertices && n%2 == 0:
		vertices := make([]Vertex, 0, n/2)
		for i := 0; i < n; i += 2 {
			vertices = append(vertices, Vertex{X: values[i], Y: values[i+1]})
		}
		return NewPolygon(vertices)
	default:
		return Record{}, fmt.Errorf("unsupported token count %d", n)
	}
}

const maxLineBytes = 16 * 1024 * 1024

// SplitLines splits file content into lines at "\n", "\r\n" or a lone "\r".
// A trailing line break does not start an extra line and a leading UTF-8
// byte order mark is dropped.
func SplitLines(data []byte) ([]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	scanner.Split(scanAnyLineBreak)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to split lines: %w", err)
	}
	return lines, nil
}

// scanAnyLineBreak is bufio.ScanLines extended to treat a bare '\r' as a
// line break.
func scanAnyLineBreak(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if !atEOF {
			// need the next byte to tell "\r" from "\r\n"
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
