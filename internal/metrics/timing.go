package metrics

import (
	"sort"
	"sync"
	"time"
)

// Summary aggregates the recorded durations of one operation
type Summary struct {
	Operation string
	Count     int
	Total     time.Duration
	Average   time.Duration
	Max       time.Duration
}

// Tracker records how long named operations take
type Tracker struct {
	mu      sync.RWMutex
	timings map[string][]time.Duration
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
	}
}

// Start begins timing operation. The returned func records and returns the elapsed time.
func (t *Tracker) Start(operation string) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		elapsed := time.Since(start)
		t.Record(operation, elapsed)
		return elapsed
	}
}

func (t *Tracker) Record(operation string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timings[operation] = append(t.timings[operation], d)
}

func (t *Tracker) Count(operation string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.timings[operation])
}

func (t *Tracker) Summary(operation string) Summary {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return summarize(operation, t.timings[operation])
}

// Summaries returns one summary per operation, sorted by name
func (t *Tracker) Summaries() []Summary {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]Summary, 0, len(t.timings))
	for op, timings := range t.timings {
		result = append(result, summarize(op, timings))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Operation < result[j].Operation })
	return result
}

func summarize(operation string, timings []time.Duration) Summary {
	s := Summary{Operation: operation, Count: len(timings)}
	for _, d := range timings {
		s.Total += d
		if d > s.Max {
			s.Max = d
		}
	}
	if s.Count > 0 {
		s.Average = s.Total / time.Duration(s.Count)
	}
	return s
}
