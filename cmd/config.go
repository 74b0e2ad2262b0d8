package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spamcheck/perceptron/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `Generate and manage perceptron configuration files`,
}

var configGenCmd = &cobra.Command{
	Use:   "generate [config-file]",
	Short: "Generate default configuration file",
	Long:  `Generate a default configuration file with all options`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := "config.yaml"
		if len(args) > 0 {
			configPath = args[0]
		}

		// Check if file already exists
		if _, err := os.Stat(configPath); err == nil {
			overwrite, _ := cmd.Flags().GetBool("force")
			if !overwrite {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
			}
		}

		if err := config.DefaultConfig().SaveConfig(configPath); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ Configuration file generated: %s\n", configPath)
		fmt.Fprintf(out, "🚀 Use 'perceptron train --config %s' to use the configuration\n", configPath)

		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate configuration file",
	Long:  `Validate a configuration file for syntax and logical errors`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := args[0]

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("❌ Configuration validation failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ Configuration is valid: %s\n", configPath)

		if warnings := validateConfigLogic(cfg); len(warnings) > 0 {
			fmt.Fprintf(out, "\n⚠️  Warnings:\n")
			for _, warning := range warnings {
				fmt.Fprintf(out, "  - %s\n", warning)
			}
		}

		printConfigSummary(cmd, cfg)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show [config-file]",
	Short: "Show current configuration",
	Long:  `Display the configuration with all values`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if len(args) > 0 {
			var err error
			cfg, err = config.LoadConfig(args[0])
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration: %s\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Default Configuration:\n")
		}

		printConfigSummary(cmd, cfg)
		return nil
	},
}

func printConfigSummary(cmd *cobra.Command, cfg *config.Config) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n🏷️  Labels: %s / %s\n", cfg.Labels.Success, cfg.Labels.Fail)

	fmt.Fprintf(out, "\n📁 Dataset:\n")
	fmt.Fprintf(out, "  Path: %s\n", cfg.Dataset.Path)
	fmt.Fprintf(out, "  Encoding: %s\n", cfg.Dataset.Encoding)
	fmt.Fprintf(out, "  Columns: label=%d text=%d\n", cfg.Dataset.LabelColumn, cfg.Dataset.TextColumn)
	fmt.Fprintf(out, "  Values: %s / %s\n", cfg.Dataset.SuccessValue, cfg.Dataset.FailValue)

	fmt.Fprintf(out, "\n🧠 Training:\n")
	fmt.Fprintf(out, "  Prune empty token: %v\n", cfg.Training.PruneEmptyToken)
	fmt.Fprintf(out, "  Update totals: %v\n", cfg.Training.UpdateTotals)
	fmt.Fprintf(out, "  Stemming: %v (%s)\n", cfg.Training.Stemming, cfg.Training.StemLanguage)

	fmt.Fprintf(out, "\n📊 Report:\n")
	fmt.Fprintf(out, "  Top items: %d\n", cfg.Report.TopItems)
	fmt.Fprintf(out, "  Ratio precision: %d\n", cfg.Report.RatioPrecision)
}

// validateConfigLogic performs additional logical validation
func validateConfigLogic(cfg *config.Config) []string {
	var warnings []string

	if !cfg.Training.PruneEmptyToken {
		warnings = append(warnings, "Empty token is kept - punctuation at sentence boundaries will affect ratios")
	}

	if cfg.Training.UpdateTotals {
		warnings = append(warnings, "Totals are recomputed after training - ratios are scaled by the total counts")
	}

	if cfg.Labels.Success != cfg.Dataset.SuccessValue || cfg.Labels.Fail != cfg.Dataset.FailValue {
		warnings = append(warnings, fmt.Sprintf("Display labels (%s/%s) differ from dataset values (%s/%s)",
			cfg.Labels.Success, cfg.Labels.Fail, cfg.Dataset.SuccessValue, cfg.Dataset.FailValue))
	}

	return warnings
}

func init() {
	// Add subcommands
	configCmd.AddCommand(configGenCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)

	// Add flags
	configGenCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
