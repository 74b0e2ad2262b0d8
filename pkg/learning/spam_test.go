package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	sc, err := NewSpamChecker()
	require.NoError(t, err)

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{name: "trailing punctuation", text: "Buy NOW!!", expected: []string{"buy", "now", ""}},
		{name: "leading punctuation", text: "...free prize", expected: []string{"", "free", "prize"}},
		{name: "plain words", text: "hello world", expected: []string{"hello", "world"}},
		{name: "digits and underscores", text: "win_big 1000 times", expected: []string{"win_big", "1000", "times"}},
		{name: "empty", text: "", expected: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sc.Tokenize(tt.text))
		})
	}
}

func TestTokenizeWithStemmer(t *testing.T) {
	sc, err := NewSpamChecker(WithStemmer("english"))
	require.NoError(t, err)

	assert.Equal(t, []string{"run", "run", ""}, sc.Tokenize("Running runs!"))

	_, err = NewSpamChecker(WithStemmer("klingon"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSpamCheckerLabels(t *testing.T) {
	sc, err := NewSpamChecker()
	require.NoError(t, err)
	assert.Equal(t, "spam", sc.Labels().Success())
	assert.Equal(t, "ham", sc.Labels().Fail())

	labels, err := NewLabels("Spam", "Ham")
	require.NoError(t, err)
	custom, err := NewSpamChecker(WithLabels(labels))
	require.NoError(t, err)
	assert.Equal(t, "Spam", custom.Labels().Name(true))
	assert.Equal(t, "Ham", custom.Labels().Name(false))

	_, err = NewSpamChecker(WithLabels(Labels{}))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSpamCheckerWithModel(t *testing.T) {
	trained, err := NewSpamChecker()
	require.NoError(t, err)
	trained.AddProb("free", 3, 0)

	labels, err := NewLabels("Spam", "Ham")
	require.NoError(t, err)

	shared, err := NewSpamChecker(WithModel(trained.Model, LoadShared), WithLabels(labels))
	require.NoError(t, err)
	shared.AddProb("prize", 1, 0)
	assert.Equal(t, 2, trained.Size())
	assert.Equal(t, "Spam", shared.Labels().Success())
	assert.Equal(t, "spam", trained.Labels().Success())

	copied, err := NewSpamChecker(WithModel(trained.Model, LoadCopy))
	require.NoError(t, err)
	copied.AddProb("lunch", 0, 1)
	assert.Equal(t, 2, trained.Size())
	assert.Equal(t, 3, copied.Size())

	_, err = NewSpamChecker(WithModel(nil, LoadCopy))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSpamCheckerNewInstance(t *testing.T) {
	labels, err := NewLabels("Spam", "Ham")
	require.NoError(t, err)
	sc, err := NewSpamChecker(WithLabels(labels))
	require.NoError(t, err)
	sc.AddProb("free", 1, 0)

	fresh := sc.NewInstance()
	require.IsType(t, &SpamChecker{}, fresh)
	assert.Equal(t, 0, fresh.Size())
	assert.Equal(t, "spam", fresh.Labels().Success())
}

func TestSpamCheckerEndToEnd(t *testing.T) {
	sc, err := NewSpamChecker()
	require.NoError(t, err)

	train := func(text string, spam bool) {
		for _, word := range sc.Tokenize(text) {
			if spam {
				sc.AddProb(word, 1, 0)
			} else {
				sc.AddProb(word, 0, 1)
			}
		}
	}
	train("WIN a FREE prize now!", true)
	train("Free cash, claim your prize!", true)
	train("Are we still on for lunch?", false)
	train("See you at the meeting tomorrow.", false)
	sc.Remove("")

	assert.True(t, sc.Success(sc.Tokenize("free prize")))
	assert.False(t, sc.Success(sc.Tokenize("lunch meeting")))

	top, err := sc.TopItems(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Contains(t, []string{"free", "prize"}, top[0])
}

func TestNewLabels(t *testing.T) {
	_, err := NewLabels("", "ham")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewLabels("spam", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	l, err := NewLabels("yes", "no")
	require.NoError(t, err)
	assert.Equal(t, "yes", l.Success())
	assert.Equal(t, "no", l.Fail())
}
