package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spamcheck/perceptron/pkg/dataset"
	"github.com/spamcheck/perceptron/pkg/learning"
	"github.com/spamcheck/perceptron/pkg/profiler"
)

var (
	evaluateTrainPath string
	evaluateDataPath  string
	evaluateProfile   bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Measure accuracy with online learning",
	Long: `Optionally train on one CSV file, then replay another one record at a
time: each record is predicted first and learned with its true label
afterwards. Prints the accuracy and the confusion counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if evaluateDataPath == "" {
			return fmt.Errorf("--data must be specified")
		}

		cfg, logger, err := loadSettings(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		var prof *profiler.Profiler
		if evaluateProfile {
			prof = profiler.NewProfiler()
		}

		var checker *learning.SpamChecker
		if evaluateTrainPath != "" {
			checker, _, err = trainFromFile(cfg, evaluateTrainPath, logger, prof)
		} else {
			checker, err = newChecker(cfg)
		}
		if err != nil {
			return err
		}

		records, err := dataset.LoadFile(evaluateDataPath, datasetOptions(cfg))
		if err != nil {
			return fmt.Errorf("failed to load evaluation data: %w", err)
		}

		var learner dataset.Learner = checker
		if prof != nil {
			learner = timedLearner{Learner: checker, prof: prof}
		}

		eval := dataset.Replay(learner, checker, records, dataset.ReplayOptions{
			Labeling:        labeling(cfg),
			PruneEmptyToken: cfg.Training.PruneEmptyToken,
		})
		logger.Info("replay complete", "records", eval.Records, "skipped", eval.Skipped)

		out := cmd.OutOrStdout()
		labels := checker.Labels()
		fmt.Fprintf(out, "📊 Online Evaluation\n")
		fmt.Fprintf(out, "═══════════════════════════════════════\n")
		fmt.Fprintf(out, "Records: %d (skipped %d)\n", eval.Records, eval.Skipped)
		fmt.Fprintf(out, "  %s predicted as %s: %d\n", labels.Success(), labels.Success(), eval.TruePositives)
		fmt.Fprintf(out, "  %s predicted as %s: %d\n", labels.Success(), labels.Fail(), eval.FalseNegatives)
		fmt.Fprintf(out, "  %s predicted as %s: %d\n", labels.Fail(), labels.Fail(), eval.TrueNegatives)
		fmt.Fprintf(out, "  %s predicted as %s: %d\n", labels.Fail(), labels.Success(), eval.FalsePositives)
		fmt.Fprintf(out, "Accuracy: %.2f%%\n", eval.Accuracy()*100)
		fmt.Fprintf(out, "Vocabulary size: %d\n", checker.Size())

		if prof != nil {
			fmt.Fprintln(out)
			prof.WriteReport(out)
		}

		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateTrainPath, "train", "t", "", "CSV file to train on before replaying")
	evaluateCmd.Flags().StringVarP(&evaluateDataPath, "data", "d", "", "CSV file to replay")
	evaluateCmd.Flags().BoolVar(&evaluateProfile, "profile", false, "Print a timing report")
}
