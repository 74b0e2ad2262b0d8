package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spamcheck/perceptron/pkg/profiler"
)

var (
	trainDataPath string
	trainTop      int
	trainDump     bool
	trainProfile  bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the perceptron on a labeled CSV file",
	Long: `Train the Naive Bayes perceptron on a CSV file of (label, text) rows and
print the words most likely to be spam together with model statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadSettings(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		// Flags override configuration
		if trainDataPath != "" {
			cfg.Dataset.Path = trainDataPath
		}
		if trainTop > 0 {
			cfg.Report.TopItems = trainTop
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "🧠 Perceptron Training\n")
		fmt.Fprintf(out, "═══════════════════════════════════════\n")
		fmt.Fprintf(out, "📁 Dataset: %s\n\n", cfg.Dataset.Path)

		var prof *profiler.Profiler
		if trainProfile {
			prof = profiler.NewProfiler()
		}

		start := time.Now()
		sc, summary, err := trainFromFile(cfg, cfg.Dataset.Path, logger, prof)
		if err != nil {
			return err
		}
		duration := time.Since(start)

		fmt.Fprintf(out, "✅ Trained on %d %s and %d %s records\n",
			summary.Success, cfg.Labels.Success, summary.Fail, cfg.Labels.Fail)
		if summary.Skipped > 0 {
			fmt.Fprintf(out, "⚠️  Skipped %d records with unknown labels\n", summary.Skipped)
		}
		fmt.Fprintf(out, "⏱️  Time taken: %v\n\n", duration)

		sc.PrintStats(out, cfg.Report.TopItems)

		if trainDump {
			fmt.Fprintf(out, "\n%s\n", sc.String())
		}

		if prof != nil {
			fmt.Fprintln(out)
			prof.WriteReport(out)
		}

		return nil
	},
}

func init() {
	trainCmd.Flags().StringVarP(&trainDataPath, "data", "d", "", "Training CSV file (overrides config)")
	trainCmd.Flags().IntVarP(&trainTop, "top", "n", 0, "Number of top words to show (overrides config)")
	trainCmd.Flags().BoolVar(&trainDump, "dump", false, "Print the full frequency table")
	trainCmd.Flags().BoolVar(&trainProfile, "profile", false, "Print a timing report")
}
