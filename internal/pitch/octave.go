package pitch

import "fmt"

// Octave is a bounded octave number in the closed range 0..15.
type Octave uint8

const (
	// MinOctave is the lowest representable octave.
	MinOctave Octave = 0
	// MaxOctave is the highest representable octave.
	MaxOctave Octave = 15
	// DefaultOctave is used when a symbol omits the octave.
	DefaultOctave Octave = 4
)

// OctaveRangeError reports arithmetic that left the 0..15 range.
type OctaveRangeError struct {
	Value int
}

func (e *OctaveRangeError) Error() string {
	return fmt.Sprintf("octave %d out of range %d..%d", e.Value, MinOctave, MaxOctave)
}

// NewOctave validates v and converts it to an Octave.
func NewOctave(v int) (Octave, error) {
	if v < int(MinOctave) || v > int(MaxOctave) {
		return 0, &OctaveRangeError{Value: v}
	}
	return Octave(v), nil
}

// TryAdd shifts the octave by delta, failing instead of wrapping.
func (o Octave) TryAdd(delta int) (Octave, error) {
	return NewOctave(int(o) + delta)
}

// Add shifts the octave by delta. It panics when the result leaves 0..15;
// callers handling external input use TryAdd.
func (o Octave) Add(delta int) Octave {
	next, err := o.TryAdd(delta)
	if err != nil {
		panic(err)
	}
	return next
}

func (o Octave) String() string {
	return fmt.Sprintf("%d", uint8(o))
}
