package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/diceroller/internal/config"
)

func execRoll(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRollCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRollPrintsOneLinePerRoll(t *testing.T) {
	out, err := execRoll(t, "d20", "--count", "5", "--seed", "42")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "d20: "), l)
		if strings.HasPrefix(l, "d20: 20") {
			assert.Contains(t, l, "(critical)")
		} else {
			assert.NotContains(t, l, "(critical)")
		}
	}
}

func TestRollSeedIsReproducible(t *testing.T) {
	a, err := execRoll(t, "d100", "-n", "10", "--seed", "7")
	require.NoError(t, err)
	b, err := execRoll(t, "D100", "-n", "10", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRollD2AlwaysInRange(t *testing.T) {
	out, err := execRoll(t, "d2", "-n", "50")
	require.NoError(t, err)
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		switch l {
		case "d2: 1", "d2: 2 (critical)":
		default:
			t.Fatalf("unexpected line %q", l)
		}
	}
}

func TestRollUnknownDie(t *testing.T) {
	_, err := execRoll(t, "d7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown die "d7"`)
}

func TestRollRejectsZeroCount(t *testing.T) {
	_, err := execRoll(t, "d6", "--count", "0")
	require.Error(t, err)
}

func TestRollStats(t *testing.T) {
	out, err := execRoll(t, "d6", "-n", "12", "--seed", "3", "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, "d6: 12 rolls")
	assert.Contains(t, out, "fair 3.50")
}

func TestDiceListsAllEight(t *testing.T) {
	var out bytes.Buffer
	diceCmd.SetOut(&out)
	diceCmd.Run(diceCmd, nil)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "d2")
	assert.Contains(t, lines[7], "d100")
}

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addAppFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestApplyFlagsOverrideEnv(t *testing.T) {
	base, err := config.LoadFrom(map[string]string{
		"DICEROLLER_AUDIO": "bell",
		"DICEROLLER_SEED":  "9",
	})
	require.NoError(t, err)

	cfg, err := applyFlags(newFlagCmd(t, "--audio", "silent", "--no-history"), base)
	require.NoError(t, err)
	assert.Equal(t, config.AudioSilent, cfg.Audio)
	assert.False(t, cfg.History)
	assert.Equal(t, uint64(9), cfg.Seed, "unset flags keep env values")
}

func TestApplyFlagsValidates(t *testing.T) {
	base, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	_, err = applyFlags(newFlagCmd(t, "--audio", "trumpet"), base)
	assert.Error(t, err)
}

func TestNewEngineHistory(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"DICEROLLER_SEED": "1"})
	require.NoError(t, err)
	assert.True(t, newEngine(cfg).HistoryEnabled())

	cfg.History = false
	assert.False(t, newEngine(cfg).HistoryEnabled())
}
