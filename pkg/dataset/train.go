package dataset

import (
	"log/slog"
)

// Tokenizer splits text into tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Trainer is the part of a model that batch training needs.
type Trainer interface {
	AddProb(token string, successDelta, failDelta int)
	Remove(token string) bool
	UpdateTotals()
	Size() int
}

// Learner is a model that predicts and learns from each example in turn.
type Learner interface {
	SuccessWithLabel(tokens []string, isSuccess bool) bool
}

// Labeling maps dataset label values to the two classes.
type Labeling struct {
	Success string
	Fail    string
}

// class reports whether label is the success value. ok is false for labels
// that match neither value.
func (l Labeling) class(label string) (isSuccess, ok bool) {
	switch label {
	case l.Success:
		return true, true
	case l.Fail:
		return false, true
	default:
		return false, false
	}
}

// TrainOptions controls Train.
type TrainOptions struct {
	Labeling        Labeling
	PruneEmptyToken bool
	UpdateTotals    bool
	Logger          *slog.Logger
}

// Summary describes a training run.
type Summary struct {
	Records  int
	Success  int
	Fail     int
	Skipped  int
	Tokens   int
	Distinct int
}

// Train adds every token of every record to model with a (1,0) count for
// success records and (0,1) for fail records. Records with other labels are
// skipped.
func Train(model Trainer, tok Tokenizer, records []Record, opts TrainOptions) Summary {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var sum Summary
	for _, rec := range records {
		sum.Records++

		isSuccess, ok := opts.Labeling.class(rec.Label)
		if !ok {
			sum.Skipped++
			logger.Debug("skipping record with unknown label", "line", rec.Line, "label", rec.Label)
			continue
		}

		for _, word := range tok.Tokenize(rec.Text) {
			if isSuccess {
				model.AddProb(word, 1, 0)
			} else {
				model.AddProb(word, 0, 1)
			}
			sum.Tokens++
		}

		if isSuccess {
			sum.Success++
		} else {
			sum.Fail++
		}
	}

	if opts.PruneEmptyToken && model.Remove("") {
		logger.Debug("removed empty token")
	}
	if opts.UpdateTotals {
		model.UpdateTotals()
	}

	sum.Distinct = model.Size()
	logger.Info("training complete",
		"records", sum.Records,
		"success", sum.Success,
		"fail", sum.Fail,
		"skipped", sum.Skipped,
		"vocabulary", sum.Distinct)

	return sum
}

// Evaluation counts the outcomes of a replay.
type Evaluation struct {
	Records        int
	Skipped        int
	TruePositives  int
	FalsePositives int
	TrueNegatives  int
	FalseNegatives int
}

// Accuracy returns the share of correct predictions, or 0 when nothing was
// evaluated.
func (e Evaluation) Accuracy() float64 {
	evaluated := e.TruePositives + e.FalsePositives + e.TrueNegatives + e.FalseNegatives
	if evaluated == 0 {
		return 0
	}
	return float64(e.TruePositives+e.TrueNegatives) / float64(evaluated)
}

// ReplayOptions controls Replay.
type ReplayOptions struct {
	Labeling        Labeling
	PruneEmptyToken bool
}

// Replay predicts each record with online learning: the model scores the
// record and then learns its true label before the next record is seen.
func Replay(model Learner, tok Tokenizer, records []Record, opts ReplayOptions) Evaluation {
	var eval Evaluation
	for _, rec := range records {
		eval.Records++

		isSuccess, ok := opts.Labeling.class(rec.Label)
		if !ok {
			eval.Skipped++
			continue
		}

		tokens := tok.Tokenize(rec.Text)
		if opts.PruneEmptyToken {
			tokens = withoutEmpty(tokens)
		}

		predicted := model.SuccessWithLabel(tokens, isSuccess)
		switch {
		case predicted && isSuccess:
			eval.TruePositives++
		case predicted && !isSuccess:
			eval.FalsePositives++
		case !predicted && !isSuccess:
			eval.TrueNegatives++
		default:
			eval.FalseNegatives++
		}
	}
	return eval
}

func withoutEmpty(tokens []string) []string {
	kept := tokens[:0]
	for _, token := range tokens {
		if token != "" {
			kept = append(kept, token)
		}
	}
	return kept
}
