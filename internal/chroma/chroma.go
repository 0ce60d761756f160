// Package chroma decodes 12-bin chroma or class-probability vectors, as
// produced by audio analysis or a classifier, into pitch-class sets that the
// resolver understands. Bin 0 is C and bin 11 is B.
package chroma

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"kord/internal/pitch"
)

const (
	// Bins is the required vector length.
	Bins = pitch.ClassCount
	// DefaultThreshold keeps bins at or above half of the strongest bin.
	DefaultThreshold = 0.5
	// Adaptive selects a per-vector threshold of mean plus one standard
	// deviation of the normalized bins.
	Adaptive = 0.0
)

var (
	ErrBinCount  = errors.New("chroma vector must have 12 bins")
	ErrBadValue  = errors.New("chroma bins must be finite and non-negative")
	ErrSilent    = errors.New("chroma vector has no energy")
	ErrThreshold = errors.New("chroma threshold must be within 0..1")
)

// Profile is the outcome of decoding one vector.
type Profile struct {
	Normalized []float64
	Mean       float64
	StdDev     float64
	Threshold  float64
	Classes    pitch.ClassSet
}

// Decoder maps vectors to pitch-class sets. It is immutable and safe for
// concurrent use.
type Decoder struct {
	threshold float64
}

// NewDecoder validates threshold, which is relative to the strongest bin.
// Adaptive (zero) derives the cut from each vector's spread.
func NewDecoder(threshold float64) (*Decoder, error) {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrThreshold, threshold)
	}
	return &Decoder{threshold: threshold}, nil
}

func (d *Decoder) Threshold() float64 { return d.threshold }

// Decode returns the active pitch classes of vector.
func (d *Decoder) Decode(vector []float64) (pitch.ClassSet, error) {
	p, err := d.Profile(vector)
	if err != nil {
		return 0, err
	}
	return p.Classes, nil
}

// Profile normalizes vector so its strongest bin is 1 and reports the
// statistics used to pick active bins.
func (d *Decoder) Profile(vector []float64) (Profile, error) {
	if len(vector) != Bins {
		return Profile{}, fmt.Errorf("%w: got %d", ErrBinCount, len(vector))
	}
	if floats.HasNaN(vector) {
		return Profile{}, ErrBadValue
	}
	for i, v := range vector {
		if v < 0 || math.IsInf(v, 0) {
			return Profile{}, fmt.Errorf("%w: bin %d is %v", ErrBadValue, i, v)
		}
	}
	peak := floats.Max(vector)
	if peak == 0 {
		return Profile{}, ErrSilent
	}

	normalized := make([]float64, Bins)
	copy(normalized, vector)
	floats.Scale(1/peak, normalized)

	p := Profile{
		Normalized: normalized,
		Mean:       stat.Mean(normalized, nil),
		StdDev:     stat.StdDev(normalized, nil),
		Threshold:  d.threshold,
	}
	if p.Threshold == Adaptive {
		p.Threshold = math.Min(p.Mean+p.StdDev, 1)
	}
	for i, v := range normalized {
		if v >= p.Threshold {
			p.Classes = p.Classes.With(pitch.Class(i))
		}
	}
	return p, nil
}
