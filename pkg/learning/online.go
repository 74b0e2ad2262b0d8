package learning

import "math"

// RatioWithLabel scores items like Ratio and then trains the model on them as
// an example of the given class. It returns the score computed before the
// update, so repeated calls with the same input return changing values.
//
// The online score uses its own smoothing; each tracked token occurring n
// times contributes
//
//	( (success + 1/(totalSuccess+1)) / (fail + 1/(totalFail+1)) )^n
//
// After scoring, when the table was non-empty, every occurrence in items
// increments the matching count of its token. Tokens that were not tracked
// before the call are then added once each with a single count of the class.
func (m *Model[T]) RatioWithLabel(items []T, isSuccess bool) float64 {
	counts := occurrences(items)
	successSmoothing := 1.0 / (float64(m.totalSuccess) + 1)
	failSmoothing := 1.0 / (float64(m.totalFail) + 1)

	ratio := 1.0
	for _, token := range m.table.order {
		n, ok := counts[token]
		if !ok {
			continue
		}
		e := m.table.entries[token]
		factor := (float64(e.Success) + successSmoothing) / (float64(e.Fail) + failSmoothing)
		ratio *= math.Pow(factor, float64(n))
	}

	discovered := m.untracked(items)

	if m.table.len() > 0 {
		m.updateCounts(items, isSuccess)
	}

	for _, token := range discovered {
		if isSuccess {
			m.AddProb(token, 1, 0)
		} else {
			m.AddProb(token, 0, 1)
		}
	}

	return ratio
}

// SuccessWithLabel reports whether RatioWithLabel(items, isSuccess) > 1.
func (m *Model[T]) SuccessWithLabel(items []T, isSuccess bool) bool {
	return m.RatioWithLabel(items, isSuccess) > 1
}

// untracked returns the distinct items missing from the table, in order of
// first occurrence.
func (m *Model[T]) untracked(items []T) []T {
	var missing []T
	seen := make(map[T]struct{})
	for _, item := range items {
		if _, ok := m.table.get(item); ok {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		missing = append(missing, item)
	}
	return missing
}

func (m *Model[T]) updateCounts(items []T, isSuccess bool) {
	for _, item := range items {
		e := m.table.getOrCreate(item)
		if isSuccess {
			e.Success++
		} else {
			e.Fail++
		}
	}
}
