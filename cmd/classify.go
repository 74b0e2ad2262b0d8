package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spamcheck/perceptron/pkg/config"
	"github.com/spamcheck/perceptron/pkg/learning"
)

var classifyDataPath string

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Grade sentences interactively",
	Long: `Train on a CSV file, then read sentences from standard input and print
each word's spam/ham ratio, the prediction and the total ratio.
Enter "exit" to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadSettings(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if classifyDataPath != "" {
			cfg.Dataset.Path = classifyDataPath
		}

		sc, _, err := trainFromFile(cfg, cfg.Dataset.Path, logger, nil)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := printTopItems(out, sc, cfg.Report.TopItems); err != nil {
			return err
		}

		return gradeLoop(cmd.InOrStdin(), out, sc, cfg.Report)
	},
}

// gradeLoop grades one sentence per input line until "exit" or end of input.
func gradeLoop(in io.Reader, out io.Writer, sc *learning.SpamChecker, report config.ReportConfig) error {
	scanner := bufio.NewScanner(in)
	labels := sc.Labels()

	for {
		fmt.Fprintln(out, "Enter a sentence to grade:")
		fmt.Fprintln(out, `   ("Exit" to exit)`)
		if !scanner.Scan() {
			break
		}

		words := sc.Tokenize(scanner.Text())
		if len(words) == 1 && words[0] == "exit" {
			break
		}

		fmt.Fprintf(out, "Reading: [%s]\n", strings.Join(words, ", "))

		ratios := make([]string, len(words))
		for i, word := range words {
			ratios[i] = fmt.Sprint(sc.ItemRatio(word))
		}
		fmt.Fprintf(out, "Probabilities: [%s]\n", strings.Join(ratios, ", "))

		ratio := sc.Ratio(words)
		fmt.Fprintf(out, "Prediction: %s\n", labels.Name(ratio > 1))
		fmt.Fprintf(out, "Ratio: %.*f\n\n", report.RatioPrecision, ratio)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyDataPath, "data", "d", "", "Training CSV file (overrides config)")
}
