package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCalc(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"-config", filepath.Join(t.TempDir(), "none.json")}, args...)
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunBuyOrder(t *testing.T) {
	code, out, _ := runCalc(t, "-buy", "1.1", "-sell", "1.2", "-lot", "1")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Margin: Buy: 1.1000 | Sell: 1.2000 | Diff: 0.1000\nResult: 1.0000\n", out)
}

func TestRunSellOrderWithLeverage(t *testing.T) {
	code, out, _ := runCalc(t, "-buy", "1.1", "-sell", "1.2", "-lot", "2", "-order", "sell", "-leverage", "1/100")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Result: -20.0000")
}

func TestRunIncomplete(t *testing.T) {
	code, out, _ := runCalc(t, "-buy", "1.1")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Margin: --\nResult: --\n", out)
}

func TestRunValidationErrors(t *testing.T) {
	code, out, _ := runCalc(t, "-buy", "1.1", "-sell", "1.2", "-lot", "0")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Result: Invalid input, must be > 0")

	code, out, _ = runCalc(t, "-buy", "abc", "-sell", "1.2", "-lot", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Result: Invalid number format")
}

func TestRunBadOverrides(t *testing.T) {
	code, out, _ := runCalc(t, "-buy", "1", "-sell", "1", "-lot", "1", "-leverage", "1/7")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Margin: --\nResult: Unsupported leverage\n", out)

	code, out, _ = runCalc(t, "-buy", "1", "-sell", "1", "-lot", "1", "-order", "hold")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Result: Unknown order type")
}

func TestRunBadFlags(t *testing.T) {
	code, out, errOut := runCalc(t, "-nope")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "flag provided but not defined")
}
