package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spamcheck/perceptron/pkg/config"
	"github.com/spamcheck/perceptron/pkg/learning"
)

const trainingCSV = `ham,Are we still on for lunch?
spam,WIN a FREE prize now!
ham,See you at the meeting tomorrow.
spam,Free cash - claim your prize!
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spam.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// runCommand executes the root command with fresh flag values.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	configFile = ""
	trainDataPath, trainTop, trainDump, trainProfile = "", 0, false, false
	classifyDataPath = ""
	evaluateTrainPath, evaluateDataPath, evaluateProfile = "", "", false

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTrainCommand(t *testing.T) {
	data := writeDataset(t, trainingCSV)

	out, err := runCommand(t, "", "train", "--data", data, "--top", "3", "--dump")
	require.NoError(t, err)

	assert.Contains(t, out, "Trained on 2 spam and 2 ham records")
	assert.Contains(t, out, "Top spam items")
	assert.Contains(t, out, "free")
	assert.Contains(t, out, "{are(0,1),we(0,1)")
	assert.NotContains(t, out, ",(", "empty token should be pruned")
}

func TestTrainCommandProfile(t *testing.T) {
	data := writeDataset(t, trainingCSV)

	out, err := runCommand(t, "", "train", "--data", data, "--profile")
	require.NoError(t, err)
	assert.Contains(t, out, "Performance Profile Report")
	assert.Contains(t, out, "load")
	assert.Contains(t, out, "train")
}

func TestTrainCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, "", "train", "--data", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestClassifyCommand(t *testing.T) {
	data := writeDataset(t, trainingCSV)

	out, err := runCommand(t, "Free prize\nlunch meeting\nexit\n", "classify", "--data", data)
	require.NoError(t, err)

	assert.Contains(t, out, "15 Highest spam-likelihood words:")
	assert.Contains(t, out, "Reading: [free, prize]")
	assert.Contains(t, out, "Probabilities: [3, 3]")
	assert.Contains(t, out, "Prediction: spam\nRatio: 9.00000")
	assert.Contains(t, out, "Reading: [lunch, meeting]")
	assert.Contains(t, out, "Prediction: ham\nRatio: 0.25000")
}

func TestClassifyCommandWithConfig(t *testing.T) {
	data := writeDataset(t, trainingCSV)

	cfg := config.DefaultConfig()
	cfg.Dataset.Path = data
	cfg.Dataset.Encoding = "utf-8"
	cfg.Labels.Success = "Spam"
	cfg.Labels.Fail = "Ham"
	cfg.Report.TopItems = 2
	cfg.Report.RatioPrecision = 2
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.SaveConfig(cfgPath))

	out, err := runCommand(t, "free\n", "classify", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "2 Highest Spam-likelihood words:")
	assert.Contains(t, out, "Prediction: Spam\nRatio: 3.00")
}

func TestEvaluateCommand(t *testing.T) {
	train := writeDataset(t, trainingCSV)
	replay := writeDataset(t, "spam,free prize\nham,lunch tomorrow\n")

	out, err := runCommand(t, "", "evaluate", "--train", train, "--data", replay)
	require.NoError(t, err)
	assert.Contains(t, out, "Records: 2 (skipped 0)")
	assert.Contains(t, out, "Accuracy: 100.00%")

	out, err = runCommand(t, "", "evaluate", "--data", replay, "--profile")
	require.NoError(t, err)
	assert.Contains(t, out, "ratio-with-label")

	_, err = runCommand(t, "", "evaluate")
	assert.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := runCommand(t, "", "config", "generate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration file generated")

	_, err = runCommand(t, "", "config", "generate", path)
	assert.Error(t, err, "existing file must not be overwritten without --force")

	out, err = runCommand(t, "", "config", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Labels: spam / ham")

	out, err = runCommand(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Default Configuration")
}

func TestGradeLoopStopsAtEOF(t *testing.T) {
	sc, err := learning.NewSpamChecker()
	require.NoError(t, err)
	sc.AddProb("free", 1, 0)

	var out bytes.Buffer
	err = gradeLoop(strings.NewReader("free"), &out, sc, config.ReportConfig{RatioPrecision: 1})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Ratio: 2.0")
}

func TestGradeLoopExitNeedsSingleWord(t *testing.T) {
	sc, err := learning.NewSpamChecker()
	require.NoError(t, err)

	var out bytes.Buffer
	err = gradeLoop(strings.NewReader("exit now\nEXIT\nafter exit\n"), &out, sc, config.ReportConfig{RatioPrecision: 3})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Reading: [exit, now]")
	assert.NotContains(t, out.String(), "after")
}
