package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/diceroller/internal/app"
	"github.com/abhisek/diceroller/internal/config"
	"github.com/abhisek/diceroller/internal/dice"
	"github.com/abhisek/diceroller/internal/effects"
	"github.com/abhisek/diceroller/internal/logging"
	"github.com/abhisek/diceroller/internal/store"
)

// runApp loads config, opens the log and session store, builds the engine
// and effect sinks, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
	}
	defer logCloser.Close()

	sessionID := store.NewSessionID()
	st, err := store.Open(store.SessionDSN(sessionID))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	audio, err := effects.NewAudioSink(cfg.Audio, cfg.AssetDir, cfg.Player, os.Stderr)
	if err != nil {
		logger.Warn().Err(err).Str("mode", cfg.Audio).Msg("audio unavailable, falling back to silent")
		audio = effects.Silent{}
	}
	dispatcher := effects.NewDispatcher(audio, &effects.PulseCounter{}, logger)

	logger.Info().
		Str("session", sessionID).
		Bool("history", cfg.History).
		Str("audio", cfg.Audio).
		Uint64("seed", cfg.Seed).
		Msg("starting")

	return app.Run(app.Options{
		Config:     cfg,
		Engine:     newEngine(cfg),
		Dispatcher: dispatcher,
		RollRepo:   st.RollRepo(),
		SessionID:  sessionID,
		Logger:     logger,
	})
}

// newEngine builds the roll engine: seeded when cfg.Seed is set, with the
// history capability when cfg.History is on.
func newEngine(cfg config.Config) *dice.Engine {
	src := dice.NewCryptoSource()
	if cfg.Seed != 0 {
		src = dice.NewSeededSource(cfg.Seed)
	}
	var opts []dice.Option
	if cfg.History {
		opts = append(opts, dice.WithHistory())
	}
	return dice.NewEngine(src, opts...)
}
