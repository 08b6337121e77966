package effects

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/abhisek/diceroller/internal/config"
	"github.com/abhisek/diceroller/internal/dice"
)

var (
	ErrAssetMissing = errors.New("audio asset not found")
	ErrNoPlayer     = errors.New("no audio player available")
)

// AudioSink plays the effect named by token.
type AudioSink interface {
	Play(ctx context.Context, token dice.EffectToken) error
}

// assetExts lists the file extensions tried for each token, in order.
var assetExts = []string{".mp3", ".wav", ".ogg"}

// knownPlayers are probed in order when no player is configured.
var knownPlayers = []struct {
	bin  string
	args []string
}{
	{bin: "afplay"},
	{bin: "paplay"},
	{bin: "aplay", args: []string{"-q"}},
	{bin: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
}

// CommandPlayer plays <assetDir>/<token>.<ext> with an external player
// binary. Playback is started and not waited on.
type CommandPlayer struct {
	assetDir string
	bin      string
	args     []string

	// start launches the command; replaced in tests.
	start func(cmd *exec.Cmd) error
}

// NewCommandPlayer builds a CommandPlayer. An empty player probes the known
// players on PATH.
func NewCommandPlayer(assetDir, player string) (*CommandPlayer, error) {
	p := &CommandPlayer{assetDir: assetDir, start: startDetached}
	if player != "" {
		bin, err := exec.LookPath(player)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNoPlayer, player)
		}
		p.bin = bin
		return p, nil
	}
	for _, kp := range knownPlayers {
		if bin, err := exec.LookPath(kp.bin); err == nil {
			p.bin = bin
			p.args = kp.args
			return p, nil
		}
	}
	return nil, ErrNoPlayer
}

// Play starts playback of token. A missing asset returns ErrAssetMissing.
func (p *CommandPlayer) Play(ctx context.Context, token dice.EffectToken) error {
	path, err := p.resolve(token)
	if err != nil {
		return err
	}
	args := append(append([]string{}, p.args...), path)
	cmd := exec.CommandContext(ctx, p.bin, args...)
	if err := p.start(cmd); err != nil {
		return fmt.Errorf("start %s: %w", filepath.Base(p.bin), err)
	}
	return nil
}

func (p *CommandPlayer) resolve(token dice.EffectToken) (string, error) {
	if p.assetDir == "" {
		return "", fmt.Errorf("%w: no asset directory configured", ErrAssetMissing)
	}
	for _, ext := range assetExts {
		path := filepath.Join(p.assetDir, string(token)+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrAssetMissing, token, p.assetDir)
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}

// BellPlayer rings the terminal bell: once for a normal roll, twice for a
// critical.
type BellPlayer struct {
	w io.Writer
}

// NewBellPlayer creates a BellPlayer writing to w.
func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w}
}

func (b *BellPlayer) Play(_ context.Context, token dice.EffectToken) error {
	bell := "\a"
	if token == dice.EffectCritical {
		bell = "\a\a"
	}
	_, err := io.WriteString(b.w, bell)
	return err
}

// Silent discards every effect.
type Silent struct{}

func (Silent) Play(context.Context, dice.EffectToken) error { return nil }

// NewAudioSink builds the sink for an audio mode. In auto mode the command
// player is preferred and the bell is the fallback.
func NewAudioSink(mode, assetDir, player string, bell io.Writer) (AudioSink, error) {
	switch mode {
	case config.AudioSilent:
		return Silent{}, nil
	case config.AudioBell:
		return NewBellPlayer(bell), nil
	case config.AudioCommand:
		return NewCommandPlayer(assetDir, player)
	case config.AudioAuto, "":
		if assetDir != "" {
			if p, err := NewCommandPlayer(assetDir, player); err == nil {
				return p, nil
			}
		}
		return NewBellPlayer(bell), nil
	default:
		return nil, fmt.Errorf("unknown audio mode %q", mode)
	}
}
