package learning

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a violated precondition such as an empty label
// name or a non-positive item count.
var ErrInvalidArgument = errors.New("invalid argument")

// Perceptron is a binary Naive Bayes model over tokens of type T.
// Implementations are not safe for concurrent use.
type Perceptron[T comparable] interface {
	fmt.Stringer

	// NewInstance returns an empty model of the same variant with default labels.
	NewInstance() Perceptron[T]

	// Labels returns the display names of the success and fail classes.
	Labels() Labels

	// Size returns the number of distinct tokens tracked.
	Size() int

	// AddProb adds successDelta and failDelta to the counts of token.
	AddProb(token T, successDelta, failDelta int)

	// Ratio returns the smoothed success/fail likelihood ratio of items.
	Ratio(items []T) float64

	// RatioWithLabel scores items and folds them back into the model as an
	// example of the given class.
	RatioWithLabel(items []T, isSuccess bool) float64

	// Success reports whether Ratio(items) > 1.
	Success(items []T) bool

	// SuccessWithLabel reports whether RatioWithLabel(items, isSuccess) > 1.
	SuccessWithLabel(items []T, isSuccess bool) bool

	// ItemRatio returns the smoothed success/fail ratio of a single token.
	ItemRatio(token T) float64

	// TopItems returns up to k tokens with the highest item ratios.
	TopItems(k int) ([]T, error)
}

// Ensure both variants satisfy the interface
var _ Perceptron[int] = (*Model[int])(nil)     // Generic model
var _ Perceptron[string] = (*SpamChecker)(nil) // Text model
