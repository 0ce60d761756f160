// Package midiexport renders chords and scales as single-track Standard MIDI
// Files. Chords sound as one block; scales and modes play their degrees in
// ascending order.
package midiexport

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"kord/internal/config"
	"kord/internal/fileutil"
	"kord/internal/logging"
	"kord/internal/notation"
	"kord/internal/pitch"
)

// Resolution is the number of ticks per quarter note written to files.
const Resolution = smf.MetricTicks(960)

// ErrNoteRange is returned for notes outside MIDI keys 0..127.
var ErrNoteRange = errors.New("note outside midi key range")

// Style selects how notes are laid out in time.
type Style int

const (
	// Block starts every note together.
	Block Style = iota
	// Sequence plays notes one after another, splitting the duration evenly.
	Sequence
)

// Options configures rendering.
type Options struct {
	Tempo         float64
	Velocity      uint8
	DurationBeats float64
	Channel       uint8
}

// DefaultOptions mirrors the [midi] config defaults.
func DefaultOptions() Options {
	return Options{Tempo: 120, Velocity: 90, DurationBeats: 4}
}

// OptionsFromConfig maps the [midi] section. Out-of-range integers are left
// for validate to reject.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return DefaultOptions()
	}
	return Options{
		Tempo:         cfg.MIDI.Tempo,
		Velocity:      clampByte(cfg.MIDI.Velocity),
		DurationBeats: cfg.MIDI.DurationBeats,
		Channel:       clampByte(cfg.MIDI.Channel),
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(v)
}

func (o Options) validate() error {
	switch {
	case o.Tempo <= 0 || math.IsNaN(o.Tempo):
		return fmt.Errorf("midi tempo must be positive")
	case o.Velocity == 0 || o.Velocity > 127:
		return fmt.Errorf("midi velocity must be within 1..127")
	case o.DurationBeats <= 0 || math.IsNaN(o.DurationBeats):
		return fmt.Errorf("midi duration must be positive")
	case o.Channel > 15:
		return fmt.Errorf("midi channel must be within 0..15")
	}
	return nil
}

// Exporter writes notations as MIDI.
type Exporter struct {
	opts   Options
	logger *slog.Logger
}

// New validates opts. A nil logger discards output.
func New(opts Options, logger *slog.Logger) (*Exporter, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Exporter{opts: opts, logger: logging.NewComponentLogger(logger, "midi")}, nil
}

// StyleFor picks Block for chords and Sequence for scales and modes.
func StyleFor(n notation.Notation) Style {
	if n.IsChord() {
		return Block
	}
	return Sequence
}

// Track renders notes into a closed track named name.
func (e *Exporter) Track(name string, notes []pitch.Note, style Style) (smf.Track, error) {
	keys := make([]uint8, len(notes))
	for i, n := range notes {
		key := n.MIDI()
		if key < 0 || key > 127 {
			return nil, fmt.Errorf("%w: %s is key %d", ErrNoteRange, n, key)
		}
		keys[i] = uint8(key)
	}

	total := uint32(math.Round(e.opts.DurationBeats * float64(Resolution.Ticks4th())))
	ch, vel := e.opts.Channel, e.opts.Velocity

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(name))
	tr.Add(0, smf.MetaTempo(e.opts.Tempo))
	switch style {
	case Block:
		for _, k := range keys {
			tr.Add(0, midi.NoteOn(ch, k, vel))
		}
		for i, k := range keys {
			var delta uint32
			if i == 0 {
				delta = total
			}
			tr.Add(delta, midi.NoteOff(ch, k))
		}
	case Sequence:
		if len(keys) > 0 {
			step := total / uint32(len(keys))
			for _, k := range keys {
				tr.Add(0, midi.NoteOn(ch, k, vel))
				tr.Add(step, midi.NoteOff(ch, k))
			}
		}
	default:
		return nil, fmt.Errorf("unknown midi style %d", style)
	}
	tr.Close(0)
	return tr, nil
}

// Write renders n to w.
func (e *Exporter) Write(w io.Writer, n notation.Notation) error {
	file, err := e.file(n)
	if err != nil {
		return err
	}
	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("write midi: %w", err)
	}
	return nil
}

// WriteFile renders n to path, replacing any existing file atomically.
func (e *Exporter) WriteFile(path string, n notation.Notation) error {
	file, err := e.file(n)
	if err != nil {
		return err
	}
	err = fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		if _, err := file.WriteTo(w); err != nil {
			return fmt.Errorf("write midi file: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	e.logger.Info("midi file written",
		logging.String(logging.FieldNotation, n.PreciseName()),
		logging.String(logging.FieldKind, string(n.Kind())),
		logging.String("path", path),
	)
	return nil
}

func (e *Exporter) file(n notation.Notation) (*smf.SMF, error) {
	tr, err := e.Track(n.PreciseName(), n.Notes(), StyleFor(n))
	if err != nil {
		return nil, err
	}
	file := smf.New()
	file.TimeFormat = Resolution
	if err := file.Add(tr); err != nil {
		return nil, fmt.Errorf("add midi track: %w", err)
	}
	e.logger.Debug("midi track rendered",
		logging.String(logging.FieldNotation, n.PreciseName()),
		logging.Int("notes", len(n.Notes())),
	)
	return file, nil
}
