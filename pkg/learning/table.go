package learning

// Entry is the observed history of one token.
type Entry struct {
	Success int `json:"success"`
	Fail    int `json:"fail"`
}

// Ratio returns (Success+1)/(Fail+1).
func (e Entry) Ratio() float64 {
	return (float64(e.Success) + 1.0) / (float64(e.Fail) + 1.0)
}

// table maps tokens to their counts. Tokens are iterated in the order they
// were first inserted.
type table[T comparable] struct {
	entries map[T]*Entry
	order   []T
}

func newTable[T comparable]() *table[T] {
	return &table[T]{
		entries: make(map[T]*Entry),
	}
}

func (tb *table[T]) get(token T) (*Entry, bool) {
	e, ok := tb.entries[token]
	return e, ok
}

// getOrCreate returns the entry of token, inserting a zero entry if needed.
func (tb *table[T]) getOrCreate(token T) *Entry {
	if e, ok := tb.entries[token]; ok {
		return e
	}
	e := &Entry{}
	tb.entries[token] = e
	tb.order = append(tb.order, token)
	return e
}

func (tb *table[T]) remove(token T) bool {
	if _, ok := tb.entries[token]; !ok {
		return false
	}
	delete(tb.entries, token)
	for i, t := range tb.order {
		if t == token {
			tb.order = append(tb.order[:i], tb.order[i+1:]...)
			break
		}
	}
	return true
}

func (tb *table[T]) len() int {
	return len(tb.order)
}

func (tb *table[T]) clone() *table[T] {
	c := &table[T]{
		entries: make(map[T]*Entry, len(tb.entries)),
		order:   make([]T, len(tb.order)),
	}
	copy(c.order, tb.order)
	for token, e := range tb.entries {
		dup := *e
		c.entries[token] = &dup
	}
	return c
}
