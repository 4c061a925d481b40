package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Format renders a record as one line of the text format. Coordinates are
// truncated toward zero, so sub-integer precision is lost.
func Format(r Record) string {
	switch r.kind {
	case KindPoint:
		p := r.vertices[0]
		return joinInts(p.X, p.Y)
	case KindSegment:
		a, b := r.vertices[0], r.vertices[1]
		return joinInts(a.X, a.Y, b.X, b.Y)
	case KindPolygon:
		coords := make([]float64, 0, 2*len(r.vertices))
		for _, v := range r.vertices {
			coords = append(coords, v.X, v.Y)
		}
		return joinInts(coords...)
	default:
		return ""
	}
}

// Serialize renders records one per line, in order
func Serialize(records []Record) []string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		lines = append(lines, Format(r))
	}
	return lines
}

func joinInts(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatTruncated(v)
	}
	return strings.Join(parts, " ")
}

// formatTruncated drops the fraction of v without an int64 round trip, so
// magnitudes past 2^63 keep their digits. Negative zero prints as 0.
func formatTruncated(v float64) string {
	t := math.Trunc(v)
	if t == 0 {
		t = 0
	}
	return strconv.FormatFloat(t, 'f', -1, 64)
}
