package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatioWithLabelIsNotIdempotent(t *testing.T) {
	m := NewModel[string](DefaultLabels())
	m.AddProb("free", 1, 0)

	// totals are zero, so the smoothing terms are 1
	first := m.RatioWithLabel([]string{"free"}, true)
	second := m.RatioWithLabel([]string{"free"}, true)
	third := m.RatioWithLabel([]string{"free"}, true)

	assert.InDelta(t, 2.0, first, 1e-12)
	assert.InDelta(t, 3.0, second, 1e-12)
	assert.InDelta(t, 4.0, third, 1e-12)

	e, ok := m.Entry("free")
	require.True(t, ok)
	assert.Equal(t, Entry{Success: 4}, e)
}

func TestRatioWithLabelOnEmptyModel(t *testing.T) {
	m := NewModel[string](DefaultLabels())

	got := m.RatioWithLabel([]string{"win", "cash", "win"}, true)
	assert.Equal(t, 1.0, got)
	assert.Equal(t, "{win(1,0),cash(1,0)}", m.String())

	got = m.RatioWithLabel([]string{"lunch"}, false)
	assert.Equal(t, 1.0, got)
	// the table was non-empty, so lunch is counted and then added
	assert.Equal(t, "{win(1,0),cash(1,0),lunch(0,2)}", m.String())
}

func TestRatioWithLabelUpdatesCounts(t *testing.T) {
	m := NewModel[string](DefaultLabels())
	m.AddProb("free", 1, 0)

	got := m.RatioWithLabel([]string{"free", "win", "win"}, false)
	assert.InDelta(t, 2.0, got, 1e-12)

	free, _ := m.Entry("free")
	win, _ := m.Entry("win")
	assert.Equal(t, Entry{Success: 1, Fail: 1}, free)
	assert.Equal(t, Entry{Fail: 3}, win)

	s, f := m.Totals()
	assert.Equal(t, 0, s)
	assert.Equal(t, 0, f)
}

func TestRatioWithLabelUsesOnlineSmoothing(t *testing.T) {
	m := NewModel[string](DefaultLabels())
	m.AddProb("free", 3, 0)
	m.AddProb("team", 1, 3)
	m.UpdateTotals() // 4 / 3

	offline := m.Ratio([]string{"free"})
	online := m.RatioWithLabel([]string{"free"}, true)

	assert.InDelta(t, (4.0/5.0)/(1.0/4.0), offline, 1e-12)
	assert.InDelta(t, (3.0+1.0/5.0)/(0.0+1.0/4.0), online, 1e-12)
	assert.NotEqual(t, offline, online)
}

func TestSuccessWithLabel(t *testing.T) {
	m := NewModel[string](DefaultLabels())
	m.AddProb("free", 2, 0)
	m.AddProb("meeting", 0, 2)

	assert.True(t, m.SuccessWithLabel([]string{"free"}, true))
	assert.False(t, m.SuccessWithLabel([]string{"meeting"}, false))
	assert.False(t, m.SuccessWithLabel(nil, true))
}
