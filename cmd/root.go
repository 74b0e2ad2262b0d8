package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "perceptron",
	Short: "Perceptron - Naive Bayes spam checker",
	Long: `Perceptron is an online-trainable Naive Bayes spam checker.
It learns word counts from a labeled CSV file and scores sentences by the
product of their smoothed spam/ham likelihood ratios (> 1 means spam).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Perceptron - Naive Bayes spam checker")
		fmt.Fprintln(cmd.OutOrStdout(), "Use 'perceptron --help' for usage information")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(configCmd)
}
