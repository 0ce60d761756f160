// Package pitch models pitch classes, spelled notes, bounded octaves and the
// interval catalog used to build chords and scales.
//
// A Note keeps its spelling (letter plus accidentals) so that chord tones
// read the way a musician expects: C + minor third is E♭, never D♯. Octave
// arithmetic is checked; TryAdd variants return errors and the Add variants
// panic, which is reserved for internal callers that have already bounded
// their input.
package pitch
