// Package main hosts the kord CLI entrypoint and command graph.
//
// The Cobra-based command tree parses chord, scale and mode notation, guesses
// chords from notes, pitch classes or chroma vectors, renders MIDI files and
// serves the JSON API. Configuration resolution and logging setup live in the
// command context so subcommands only deal with presentation.
//
// Add new functionality to the internal packages first, then surface it
// through a command or flag here.
package main
