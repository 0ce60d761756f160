// Package api defines wire-format types, converters and the shared service
// layer behind the CLI and the HTTP API. It translates notation, chord and
// resolver values into transport-friendly DTOs so consumers can render them
// without coupling to internal types.
//
// # Key Types
//
// Notation: a parsed chord, scale or mode with its notes and, for chords,
// quality and ranked scale suggestions.
//
// Candidate/CandidateList: ranked resolver output for a guess request.
//
// ErrorResponse: the JSON error body, with a Kind that classifies the failure.
//
// # Service
//
// Service wires the notation dispatcher, the resolver and the chroma decoder
// together using config settings. Describe, GuessNotes, GuessClasses,
// GuessChroma and Scales return DTOs; input problems are reported as
// *InputError.
//
// # Design Notes
//
// DTOs use camelCase JSON tags. Note names use musical glyphs (E♭) with an
// ASCII twin (Eb) for terminals and clients that cannot render them.
package api
