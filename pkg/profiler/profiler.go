// Package profiler collects wall-clock timings of named operations and
// renders percentile reports. A Profiler is not safe for concurrent use.
package profiler

import (
	"fmt"
	"io"
	"sort"
	"time"
)

// Profiler tracks execution times for different operations
type Profiler struct {
	times map[string][]time.Duration
	now   func() time.Time
}

// NewProfiler creates a new profiler
func NewProfiler() *Profiler {
	return &Profiler{
		times: make(map[string][]time.Duration),
		now:   time.Now,
	}
}

// Timer represents a timing operation
type Timer struct {
	profiler *Profiler
	name     string
	start    time.Time
}

// Start begins timing an operation. A nil profiler returns a timer that
// records nothing.
func (p *Profiler) Start(name string) *Timer {
	if p == nil {
		return nil
	}
	return &Timer{
		profiler: p,
		name:     name,
		start:    p.now(),
	}
}

// Stop completes the timing and records the duration
func (t *Timer) Stop() time.Duration {
	if t == nil {
		return 0
	}
	duration := t.profiler.now().Sub(t.start)
	t.profiler.Record(t.name, duration)
	return duration
}

// Record manually records a timing
func (p *Profiler) Record(name string, duration time.Duration) {
	p.times[name] = append(p.times[name], duration)
}

// Stats contains timing statistics
type Stats struct {
	Name    string
	Count   int
	Total   time.Duration
	Average time.Duration
	Min     time.Duration
	Max     time.Duration
	Median  time.Duration
	P95     time.Duration
	P99     time.Duration
}

// GetStats returns timing statistics for an operation
func (p *Profiler) GetStats(name string) *Stats {
	times := p.times[name]
	if len(times) == 0 {
		return &Stats{Name: name}
	}

	sorted := make([]time.Duration, len(times))
	copy(sorted, times)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	var total time.Duration
	for _, d := range sorted {
		total += d
	}

	return &Stats{
		Name:    name,
		Count:   len(sorted),
		Total:   total,
		Average: total / time.Duration(len(sorted)),
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		Median:  sorted[len(sorted)/2],
		P95:     percentile(sorted, 0.95),
		P99:     percentile(sorted, 0.99),
	}
}

// GetAllStats returns statistics for all tracked operations sorted by name
func (p *Profiler) GetAllStats() []*Stats {
	names := make([]string, 0, len(p.times))
	for name := range p.times {
		names = append(names, name)
	}
	sort.Strings(names)

	stats := make([]*Stats, 0, len(names))
	for _, name := range names {
		stats = append(stats, p.GetStats(name))
	}
	return stats
}

// WriteReport writes a formatted timing report
func (p *Profiler) WriteReport(w io.Writer) {
	stats := p.GetAllStats()
	if len(stats) == 0 {
		fmt.Fprintln(w, "No timing data available")
		return
	}

	fmt.Fprintf(w, "⏱️  Performance Profile Report\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "%-20s %8s %10s %8s %8s %8s %8s %8s\n",
		"Operation", "Count", "Total", "Avg", "Min", "Max", "P95", "P99")
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────────────\n")

	for _, stat := range stats {
		fmt.Fprintf(w, "%-20s %8d %10s %8s %8s %8s %8s %8s\n",
			truncate(stat.Name, 20),
			stat.Count,
			formatDuration(stat.Total),
			formatDuration(stat.Average),
			formatDuration(stat.Min),
			formatDuration(stat.Max),
			formatDuration(stat.P95),
			formatDuration(stat.P99),
		)
	}
}

// percentile expects sorted input
func percentile(sorted []time.Duration, q float64) time.Duration {
	i := int(float64(len(sorted)) * q)
	if i >= len(sorted) {
		i = len(sorted) - 1
	}
	return sorted[i]
}

// formatDuration formats a duration for display
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
