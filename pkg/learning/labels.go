package learning

import "fmt"

// Labels names the two classes of a model. The zero value is not valid; use
// NewLabels, DefaultLabels or SpamLabels.
type Labels struct {
	success string
	fail    string
}

// NewLabels returns class names for a model. Both names must be non-empty.
func NewLabels(success, fail string) (Labels, error) {
	if success == "" {
		return Labels{}, fmt.Errorf("%w: success label cannot be empty", ErrInvalidArgument)
	}
	if fail == "" {
		return Labels{}, fmt.Errorf("%w: fail label cannot be empty", ErrInvalidArgument)
	}
	return Labels{success: success, fail: fail}, nil
}

// DefaultLabels returns the labels of a generic model.
func DefaultLabels() Labels {
	return Labels{success: "Success", fail: "Fail"}
}

// SpamLabels returns the labels of a spam checker.
func SpamLabels() Labels {
	return Labels{success: "spam", fail: "ham"}
}

// Success returns the name of the success class.
func (l Labels) Success() string {
	return l.success
}

// Fail returns the name of the fail class.
func (l Labels) Fail() string {
	return l.fail
}

// Name returns the class name matching a prediction.
func (l Labels) Name(isSuccess bool) string {
	if isSuccess {
		return l.success
	}
	return l.fail
}

func (l Labels) valid() bool {
	return l.success != "" && l.fail != ""
}
