package profiler

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimerRecords(t *testing.T) {
	p := NewProfiler()
	p.now = fakeClock(time.Millisecond)

	d := p.Start("ratio").Stop()
	assert.Equal(t, time.Millisecond, d)

	stats := p.GetStats("ratio")
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, time.Millisecond, stats.Total)
}

func TestNilProfilerIsNoop(t *testing.T) {
	var p *Profiler
	assert.Equal(t, time.Duration(0), p.Start("ratio").Stop())
}

func TestGetStats(t *testing.T) {
	p := NewProfiler()
	for i := 1; i <= 100; i++ {
		p.Record("train", time.Duration(i)*time.Microsecond)
	}

	stats := p.GetStats("train")
	assert.Equal(t, 100, stats.Count)
	assert.Equal(t, time.Microsecond, stats.Min)
	assert.Equal(t, 100*time.Microsecond, stats.Max)
	assert.Equal(t, 51*time.Microsecond, stats.Median)
	assert.Equal(t, 96*time.Microsecond, stats.P95)
	assert.Equal(t, 100*time.Microsecond, stats.P99)
	assert.Equal(t, 5050*time.Microsecond, stats.Total)

	empty := p.GetStats("missing")
	assert.Equal(t, 0, empty.Count)

	single := NewProfiler()
	single.Record("load", time.Second)
	assert.Equal(t, time.Second, single.GetStats("load").P99)
}

func TestWriteReport(t *testing.T) {
	p := NewProfiler()

	var buf bytes.Buffer
	p.WriteReport(&buf)
	assert.Contains(t, buf.String(), "No timing data available")

	p.Record("load", 2*time.Second)
	p.Record("a-very-long-operation-name", 500*time.Nanosecond)
	buf.Reset()
	p.WriteReport(&buf)

	out := buf.String()
	assert.Contains(t, out, "load")
	assert.Contains(t, out, "2.000s")
	assert.Contains(t, out, "500ns")
	assert.Contains(t, out, "a-very-long-opera...")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.5μs", formatDuration(1500*time.Nanosecond))
	assert.Equal(t, "2.50ms", formatDuration(2500*time.Microsecond))
}
