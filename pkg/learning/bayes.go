package learning

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Model is a Naive Bayes perceptron over tokens of type T. It counts how often
// each token was seen in success and fail examples and scores token
// sequences by the product of their smoothed likelihood ratios.
//
// A Model is not safe for concurrent use. Models created with LoadShared share
// their table with the source model and must have a single writer.
type Model[T comparable] struct {
	table *table[T]

	// Totals only move through UpdateTotals
	totalSuccess int
	totalFail    int

	labels Labels
}

// LoadMode selects how NewModelFrom takes over the counts of another model.
type LoadMode int

const (
	// LoadCopy gives the new model its own deep copy of the source table.
	LoadCopy LoadMode = iota
	// LoadShared makes the new model alias the source table. Writes through
	// either model are visible to both.
	LoadShared
)

// String returns the name of the load mode.
func (m LoadMode) String() string {
	switch m {
	case LoadCopy:
		return "copy"
	case LoadShared:
		return "shared"
	default:
		return fmt.Sprintf("LoadMode(%d)", int(m))
	}
}

// NewModel creates an empty model. Invalid labels are replaced with
// DefaultLabels.
func NewModel[T comparable](labels Labels) *Model[T] {
	if !labels.valid() {
		labels = DefaultLabels()
	}
	return &Model[T]{
		table:  newTable[T](),
		labels: labels,
	}
}

// NewModelFrom creates a model with its own labels that starts from the
// counts and totals of src.
func NewModelFrom[T comparable](labels Labels, src *Model[T], mode LoadMode) (*Model[T], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: cannot load from a nil model", ErrInvalidArgument)
	}
	if !labels.valid() {
		return nil, fmt.Errorf("%w: labels must be non-empty", ErrInvalidArgument)
	}

	var tb *table[T]
	switch mode {
	case LoadCopy:
		tb = src.table.clone()
	case LoadShared:
		tb = src.table
	default:
		return nil, fmt.Errorf("%w: unknown load mode %v", ErrInvalidArgument, mode)
	}

	return &Model[T]{
		table:        tb,
		totalSuccess: src.totalSuccess,
		totalFail:    src.totalFail,
		labels:       labels,
	}, nil
}

// NewInstance returns an empty generic model with default labels.
func (m *Model[T]) NewInstance() Perceptron[T] {
	return NewModel[T](DefaultLabels())
}

// Labels returns the class names of the model.
func (m *Model[T]) Labels() Labels {
	return m.labels
}

// Size returns the number of distinct tokens tracked.
func (m *Model[T]) Size() int {
	return m.table.len()
}

// Totals returns the model-wide success and fail totals.
func (m *Model[T]) Totals() (success, fail int) {
	return m.totalSuccess, m.totalFail
}

// Entry returns a copy of the counts of token.
func (m *Model[T]) Entry(token T) (Entry, bool) {
	e, ok := m.table.get(token)
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Tokens returns the tracked tokens in the order they were first seen.
func (m *Model[T]) Tokens() []T {
	tokens := make([]T, len(m.table.order))
	copy(tokens, m.table.order)
	return tokens
}

// AddProb adds the deltas to the counts of token, creating the entry with
// the deltas as its initial counts if it does not exist yet.
func (m *Model[T]) AddProb(token T, successDelta, failDelta int) {
	e := m.table.getOrCreate(token)
	e.Success += successDelta
	e.Fail += failDelta
}

// Remove drops token from the table. It is meant for cleaning up degenerate
// tokens after training, like the empty token produced by tokenization.
func (m *Model[T]) Remove(token T) bool {
	return m.table.remove(token)
}

// UpdateTotals recomputes the model totals from the per-token counts. Training
// never calls it implicitly.
func (m *Model[T]) UpdateTotals() {
	success, fail := 0, 0
	for _, token := range m.table.order {
		e := m.table.entries[token]
		success += e.Success
		fail += e.Fail
	}
	m.totalSuccess = success
	m.totalFail = fail
}

// ItemRatio returns (success+1)/(fail+1) for token. A token that was never
// seen counts as one success and one fail, which yields 1.0.
func (m *Model[T]) ItemRatio(token T) float64 {
	e, ok := m.table.get(token)
	if !ok {
		return Entry{Success: 1, Fail: 1}.Ratio()
	}
	return e.Ratio()
}

// Ratio returns the product, over every tracked token occurring n times in
// items, of
//
//	( ((success+1)/(totalSuccess+1)) / ((fail+1)/(totalFail+1)) )^n
//
// Tokens of items that are not tracked contribute nothing. The result is
// 1.0 for empty input. Ratio does not modify the model.
func (m *Model[T]) Ratio(items []T) float64 {
	counts := occurrences(items)
	successTotal := float64(m.totalSuccess) + 1
	failTotal := float64(m.totalFail) + 1

	ratio := 1.0
	for _, token := range m.table.order {
		n, ok := counts[token]
		if !ok {
			continue
		}
		e := m.table.entries[token]
		factor := ((float64(e.Success) + 1.0) / successTotal) / ((float64(e.Fail) + 1.0) / failTotal)
		ratio *= math.Pow(factor, float64(n))
	}

	return ratio
}

// Success reports whether items score above 1.
func (m *Model[T]) Success(items []T) bool {
	return m.Ratio(items) > 1
}

// TopItems returns up to k tokens ranked by descending item ratio.
//
// Entries are visited in insertion order. Each one replaces the first ranked
// token with a strictly lower ratio; an empty slot ranks like an unseen
// (0,0) entry, so only tokens with a ratio above 1 are ever ranked. Replaced
// tokens are dropped, not shifted. Ties keep the token inserted first.
func (m *Model[T]) TopItems(k int) ([]T, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: top items count must be positive, got %d", ErrInvalidArgument, k)
	}

	top := make([]T, 0, min(k, m.table.len()))
	for _, token := range m.table.order {
		ratio := m.table.entries[token].Ratio()

		for i := 0; i < k; i++ {
			var occupant Entry
			if i < len(top) {
				occupant = *m.table.entries[top[i]]
			}
			if occupant.Ratio() < ratio {
				if i < len(top) {
					top[i] = token
				} else {
					top = append(top, token)
				}
				break
			}
		}
	}

	return top, nil
}

// String renders the table as {token(success,fail),...}.
func (m *Model[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, token := range m.table.order {
		if i > 0 {
			b.WriteByte(',')
		}
		e := m.table.entries[token]
		fmt.Fprintf(&b, "%v(%d,%d)", token, e.Success, e.Fail)
	}
	b.WriteByte('}')
	return b.String()
}

// ModelInfo contains model information
type ModelInfo struct {
	SuccessLabel   string `json:"success_label"`
	FailLabel      string `json:"fail_label"`
	VocabularySize int    `json:"vocabulary_size"`
	TotalSuccess   int    `json:"total_success"`
	TotalFail      int    `json:"total_fail"`
	SuccessCounts  int    `json:"success_counts"`
	FailCounts     int    `json:"fail_counts"`
}

// GetModelInfo returns information about the trained model
func (m *Model[T]) GetModelInfo() *ModelInfo {
	info := &ModelInfo{
		SuccessLabel:   m.labels.Success(),
		FailLabel:      m.labels.Fail(),
		VocabularySize: m.table.len(),
		TotalSuccess:   m.totalSuccess,
		TotalFail:      m.totalFail,
	}
	for _, token := range m.table.order {
		e := m.table.entries[token]
		info.SuccessCounts += e.Success
		info.FailCounts += e.Fail
	}
	return info
}

// PrintStats prints model statistics and the top items
func (m *Model[T]) PrintStats(w io.Writer, top int) {
	info := m.GetModelInfo()

	fmt.Fprintf(w, "🧠 Naive Bayes Perceptron\n")
	fmt.Fprintf(w, "════════════════════════════════════════\n")
	fmt.Fprintf(w, "Classes: %s / %s\n", info.SuccessLabel, info.FailLabel)
	fmt.Fprintf(w, "  Vocabulary size: %d\n", info.VocabularySize)
	fmt.Fprintf(w, "  %s occurrences: %d\n", info.SuccessLabel, info.SuccessCounts)
	fmt.Fprintf(w, "  %s occurrences: %d\n", info.FailLabel, info.FailCounts)
	fmt.Fprintf(w, "  Totals: %d / %d\n", info.TotalSuccess, info.TotalFail)

	if top <= 0 {
		return
	}
	items, _ := m.TopItems(top)
	fmt.Fprintf(w, "\n📈 Top %s items:\n", info.SuccessLabel)
	for i, token := range items {
		e := m.table.entries[token]
		fmt.Fprintf(w, "  %2d. %-15v (%.3f ratio, %d/%d)\n",
			i+1, token, e.Ratio(), e.Success, e.Fail)
	}
}

func occurrences[T comparable](items []T) map[T]int {
	counts := make(map[T]int, len(items))
	for _, item := range items {
		counts[item]++
	}
	return counts
}
