package chroma_test

import (
	"errors"
	"math"
	"testing"

	"kord/internal/chroma"
	"kord/internal/pitch"
)

func vector(values map[pitch.Class]float64) []float64 {
	out := make([]float64, chroma.Bins)
	for c, v := range values {
		out[c] = v
	}
	return out
}

func TestDecodeFixedThreshold(t *testing.T) {
	d, err := chroma.NewDecoder(chroma.DefaultThreshold)
	if err != nil {
		t.Fatalf("NewDecoder returned error: %v", err)
	}
	tests := []struct {
		name   string
		vector []float64
		want   pitch.ClassSet
	}{
		{
			name:   "major triad",
			vector: vector(map[pitch.Class]float64{pitch.C: 1, pitch.E: 0.8, pitch.G: 0.9}),
			want:   pitch.NewClassSet(pitch.C, pitch.E, pitch.G),
		},
		{
			name:   "scale invariant",
			vector: vector(map[pitch.Class]float64{pitch.C: 10, pitch.E: 8, pitch.G: 9}),
			want:   pitch.NewClassSet(pitch.C, pitch.E, pitch.G),
		},
		{
			name:   "weak bins dropped",
			vector: vector(map[pitch.Class]float64{pitch.A: 0.6, pitch.C: 0.5, pitch.E: 0.45, pitch.D: 0.2}),
			want:   pitch.NewClassSet(pitch.A, pitch.C, pitch.E),
		},
	}
	for _, tt := range tests {
		got, err := d.Decode(tt.vector)
		if err != nil {
			t.Fatalf("%s: Decode returned error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("%s: unexpected classes: got %s want %s", tt.name, got, tt.want)
		}
	}
}

func TestDecodeAdaptive(t *testing.T) {
	d, err := chroma.NewDecoder(chroma.Adaptive)
	if err != nil {
		t.Fatalf("NewDecoder returned error: %v", err)
	}
	v := vector(map[pitch.Class]float64{pitch.D: 0.9, pitch.FSharp: 1, pitch.A: 0.85, pitch.B: 0.2})
	p, err := d.Profile(v)
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if want := pitch.NewClassSet(pitch.D, pitch.FSharp, pitch.A); p.Classes != want {
		t.Fatalf("unexpected classes: got %s want %s", p.Classes, want)
	}
	if p.Threshold <= p.Mean || p.Threshold > 1 {
		t.Fatalf("unexpected adaptive threshold %v (mean %v)", p.Threshold, p.Mean)
	}
	if p.Normalized[pitch.FSharp] != 1 {
		t.Fatalf("expected strongest bin normalized to 1, got %v", p.Normalized[pitch.FSharp])
	}
	if v[pitch.D] != 0.9 {
		t.Fatal("input vector was modified")
	}

	flat := make([]float64, chroma.Bins)
	for i := range flat {
		flat[i] = 0.5
	}
	got, err := d.Decode(flat)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got.Len() != chroma.Bins {
		t.Fatalf("flat vector should activate every class, got %s", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	d, err := chroma.NewDecoder(0.4)
	if err != nil {
		t.Fatalf("NewDecoder returned error: %v", err)
	}
	negative := vector(map[pitch.Class]float64{pitch.C: 1})
	negative[3] = -0.1
	nan := vector(map[pitch.Class]float64{pitch.C: 1})
	nan[5] = math.NaN()
	inf := vector(map[pitch.Class]float64{pitch.C: math.Inf(1)})

	tests := []struct {
		name   string
		vector []float64
		want   error
	}{
		{"short", make([]float64, 11), chroma.ErrBinCount},
		{"long", make([]float64, 13), chroma.ErrBinCount},
		{"negative", negative, chroma.ErrBadValue},
		{"nan", nan, chroma.ErrBadValue},
		{"inf", inf, chroma.ErrBadValue},
		{"silent", make([]float64, chroma.Bins), chroma.ErrSilent},
	}
	for _, tt := range tests {
		if _, err := d.Decode(tt.vector); !errors.Is(err, tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestNewDecoderRejectsThreshold(t *testing.T) {
	for _, threshold := range []float64{-0.1, 1.5, math.NaN()} {
		if _, err := chroma.NewDecoder(threshold); !errors.Is(err, chroma.ErrThreshold) {
			t.Fatalf("NewDecoder(%v) expected ErrThreshold, got %v", threshold, err)
		}
	}
}
