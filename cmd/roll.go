package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/diceroller/internal/dice"
	"github.com/abhisek/diceroller/internal/store"
)

type rollOptions struct {
	count int
	seed  uint64
	stats bool
}

func newRollCmd() *cobra.Command {
	var opts rollOptions
	cmd := &cobra.Command{
		Use:   "roll DIE",
		Short: "Roll a die without the TUI",
		Long:  "Roll one of d2, d4, d6, d8, d10, d12, d20, d100 and print one \"die: value\" line per roll.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoll(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of rolls")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible rolls")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print a per-die summary after rolling")
	return cmd
}

func runRoll(ctx context.Context, out io.Writer, name string, opts rollOptions) error {
	die, ok := dice.Lookup(strings.ToLower(name))
	if !ok {
		return fmt.Errorf("unknown die %q: must be one of %s", name, strings.Join(dice.Names(), ", "))
	}
	if opts.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", opts.count)
	}

	src := dice.NewCryptoSource()
	if opts.seed != 0 {
		src = dice.NewSeededSource(opts.seed)
	}
	engine := dice.NewEngine(src)

	var repo store.RollRepo
	sessionID := store.NewSessionID()
	if opts.stats {
		st, err := store.Open(store.SessionDSN(sessionID))
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		repo = st.RollRepo()
	}

	for range opts.count {
		outcome := engine.RollDie(die)
		entry := engine.RecordRoll(die.Name, outcome)
		line := entry.Text()
		if outcome.Critical {
			line += " (critical)"
		}
		fmt.Fprintln(out, line)

		if repo != nil {
			err := repo.AppendRoll(ctx, store.RollEventData{
				SessionID: sessionID,
				DieName:   die.Name,
				Sides:     die.Sides,
				Value:     outcome.Value,
				Critical:  outcome.Critical,
			})
			if err != nil {
				return fmt.Errorf("record roll: %w", err)
			}
		}
	}

	if repo == nil {
		return nil
	}
	stats, err := repo.DieStats(ctx)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	fmt.Fprintln(out)
	for _, s := range stats {
		fmt.Fprintf(out, "%s: %d rolls, %d critical, mean %.2f (fair %.2f)\n",
			s.DieName, s.Rolls, s.Criticals, s.Mean(), s.ExpectedMean())
	}
	return nil
}
