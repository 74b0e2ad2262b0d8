package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spamcheck/perceptron/pkg/config"
	"github.com/spamcheck/perceptron/pkg/dataset"
	"github.com/spamcheck/perceptron/pkg/learning"
	"github.com/spamcheck/perceptron/pkg/profiler"
)

// loadSettings loads the configuration named by --config and builds the
// diagnostic logger.
func loadSettings(stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, newLogger(stderr, cfg.Logging), nil
}

func newLogger(w io.Writer, lc config.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// newChecker builds an empty spam checker from the configuration.
func newChecker(cfg *config.Config) (*learning.SpamChecker, error) {
	labels, err := learning.NewLabels(cfg.Labels.Success, cfg.Labels.Fail)
	if err != nil {
		return nil, err
	}

	opts := []learning.Option{learning.WithLabels(labels)}
	if cfg.Training.Stemming {
		opts = append(opts, learning.WithStemmer(cfg.Training.StemLanguage))
	}
	return learning.NewSpamChecker(opts...)
}

func datasetOptions(cfg *config.Config) dataset.Options {
	return dataset.Options{
		Encoding:    cfg.Dataset.Encoding,
		HasHeader:   cfg.Dataset.HasHeader,
		LabelColumn: cfg.Dataset.LabelColumn,
		TextColumn:  cfg.Dataset.TextColumn,
	}
}

func labeling(cfg *config.Config) dataset.Labeling {
	return dataset.Labeling{
		Success: cfg.Dataset.SuccessValue,
		Fail:    cfg.Dataset.FailValue,
	}
}

// trainFromFile builds a checker and trains it on the CSV file at path. prof
// may be nil.
func trainFromFile(cfg *config.Config, path string, logger *slog.Logger, prof *profiler.Profiler) (*learning.SpamChecker, dataset.Summary, error) {
	sc, err := newChecker(cfg)
	if err != nil {
		return nil, dataset.Summary{}, fmt.Errorf("failed to create model: %w", err)
	}

	logger.Debug("loading dataset", "path", path, "encoding", cfg.Dataset.Encoding)
	timer := prof.Start("load")
	records, err := dataset.LoadFile(path, datasetOptions(cfg))
	timer.Stop()
	if err != nil {
		return nil, dataset.Summary{}, fmt.Errorf("failed to load training data: %w", err)
	}

	defer prof.Start("train").Stop()
	summary := dataset.Train(sc, sc, records, dataset.TrainOptions{
		Labeling:        labeling(cfg),
		PruneEmptyToken: cfg.Training.PruneEmptyToken,
		UpdateTotals:    cfg.Training.UpdateTotals,
		Logger:          logger,
	})
	return sc, summary, nil
}

// printTopItems prints the tokens most likely to be in the success class.
func printTopItems(w io.Writer, sc *learning.SpamChecker, k int) error {
	top, err := sc.TopItems(k)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d Highest %s-likelihood words:\n", k, sc.Labels().Success())
	fmt.Fprintf(w, "%v\n", top)
	return nil
}

// timedLearner records the duration of every online learning step.
type timedLearner struct {
	dataset.Learner
	prof *profiler.Profiler
}

func (tl timedLearner) SuccessWithLabel(tokens []string, isSuccess bool) bool {
	defer tl.prof.Start("ratio-with-label").Stop()
	return tl.Learner.SuccessWithLabel(tokens, isSuccess)
}
