package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"kord/internal/chord"
	"kord/internal/chroma"
	"kord/internal/config"
	"kord/internal/grammar"
	"kord/internal/logging"
	"kord/internal/notation"
	"kord/internal/pitch"
	"kord/internal/resolve"
)

// ErrInvalidInput is wrapped by every *InputError.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports a request that could not be turned into notes, classes
// or a chroma vector.
type InputError struct {
	Msg string
	Err error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *InputError) Unwrap() error {
	if e.Err != nil {
		return errors.Join(ErrInvalidInput, e.Err)
	}
	return ErrInvalidInput
}

// Error kinds reported in ErrorResponse.Kind.
const (
	KindParse    = "parse_error"
	KindBuild    = "build_error"
	KindInput    = "invalid_input"
	KindResolve  = "resolve_error"
	KindInternal = "internal"
)

// ErrorKind classifies err for transport. Parse, build and input errors are
// the caller's fault; resolve errors are internal.
func ErrorKind(err error) string {
	var (
		parseErr   *grammar.ParseError
		buildErr   *chord.BuildError
		inputErr   *InputError
		resolveErr *resolve.ResolveError
	)
	switch {
	case errors.As(err, &inputErr), errors.Is(err, notation.ErrUnknownKind):
		return KindInput
	case errors.As(err, &buildErr):
		return KindBuild
	case errors.As(err, &parseErr):
		return KindParse
	case errors.As(err, &resolveErr):
		return KindResolve
	}
	return KindInternal
}

// Service answers describe and guess requests. It is safe for concurrent use.
type Service struct {
	resolver *resolve.Resolver
	decoder  *chroma.Decoder
	logger   *slog.Logger
}

// NewService builds a Service from the resolver and chroma sections of cfg.
func NewService(cfg *config.Config, logger *slog.Logger) (*Service, error) {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	decoder, err := chroma.NewDecoder(cfg.Chroma.Threshold)
	if err != nil {
		return nil, err
	}
	return &Service{
		resolver: resolve.New(resolve.Options{Limit: cfg.Resolver.MaxCandidates, Workers: cfg.Resolver.Workers}),
		decoder:  decoder,
		logger:   logging.NewComponentLogger(logger, "service"),
	}, nil
}

// Describe parses text, optionally restricted to kind ("chord", "scale",
// "mode").
func (s *Service) Describe(ctx context.Context, text, kind string) (Notation, error) {
	n, err := notation.ParseWithType(text, kind)
	if err != nil {
		logging.WithContext(ctx, s.logger).Debug("notation rejected",
			logging.String(logging.FieldNotation, text),
			logging.Error(err),
		)
		return Notation{}, err
	}
	logging.WithContext(ctx, s.logger).Debug("notation parsed",
		logging.String(logging.FieldNotation, n.PreciseName()),
		logging.String(logging.FieldKind, string(n.Kind())),
	)
	return FromNotation(n), nil
}

// Scales returns the ranked scale suggestions for a chord symbol.
func (s *Service) Scales(ctx context.Context, symbol string) ([]ScaleCandidate, error) {
	c, err := chord.Parse(symbol)
	if err != nil {
		return nil, err
	}
	return FromScaleCandidates(c.Root(), c.ScaleCandidates()), nil
}

// GuessNotes resolves note tokens such as "C", "Eb3" or "F#". Tokens may be
// separated by commas or whitespace. The lowest note becomes the slash bass
// of candidates rooted elsewhere.
func (s *Service) GuessNotes(ctx context.Context, tokens []string) (CandidateList, error) {
	fields := SplitTokens(tokens)
	if len(fields) == 0 {
		return CandidateList{}, &InputError{Msg: "no notes given"}
	}
	notes := make([]pitch.Note, 0, len(fields))
	var input pitch.ClassSet
	for _, field := range fields {
		n, err := grammar.ParseNote(field)
		if err != nil {
			return CandidateList{}, &InputError{Msg: fmt.Sprintf("note %q", field), Err: err}
		}
		notes = append(notes, n)
		input = input.With(n.Class())
	}
	candidates, err := s.resolver.ResolveNotes(notes)
	if err != nil {
		return CandidateList{}, err
	}
	return s.finish(ctx, input, candidates), nil
}

// GuessClasses resolves pitch-class names ("C#", "Db", "A").
func (s *Service) GuessClasses(ctx context.Context, tokens []string) (CandidateList, error) {
	fields := SplitTokens(tokens)
	if len(fields) == 0 {
		return CandidateList{}, &InputError{Msg: "no pitch classes given"}
	}
	var input pitch.ClassSet
	for _, field := range fields {
		c, ok := pitch.ParseClass(field)
		if !ok {
			return CandidateList{}, &InputError{Msg: fmt.Sprintf("unknown pitch class %q", field)}
		}
		input = input.With(c)
	}
	candidates, err := s.resolver.ResolveSet(input)
	if err != nil {
		return CandidateList{}, err
	}
	return s.finish(ctx, input, candidates), nil
}

// GuessChroma decodes a 12-bin vector and resolves the active classes.
func (s *Service) GuessChroma(ctx context.Context, vector []float64) (CandidateList, error) {
	input, err := s.decoder.Decode(vector)
	if err != nil {
		return CandidateList{}, &InputError{Msg: "chroma", Err: err}
	}
	candidates, err := s.resolver.ResolveSet(input)
	if err != nil {
		return CandidateList{}, err
	}
	return s.finish(ctx, input, candidates), nil
}

func (s *Service) finish(ctx context.Context, input pitch.ClassSet, candidates []resolve.Candidate) CandidateList {
	list := FromCandidates(input, candidates)
	attrs := []logging.Attr{
		logging.String("input", input.String()),
		logging.Int(logging.FieldCandidates, len(list.Candidates)),
	}
	if len(list.Candidates) > 0 {
		attrs = append(attrs, logging.String(logging.FieldNotation, list.Candidates[0].PreciseName))
	}
	logging.WithContext(ctx, s.logger).Debug("pitch set resolved", logging.Args(attrs...)...)
	return list
}

// SplitTokens flattens comma- or whitespace-separated arguments.
func SplitTokens(tokens []string) []string {
	var out []string
	for _, token := range tokens {
		out = append(out, strings.FieldsFunc(token, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})...)
	}
	return out
}
