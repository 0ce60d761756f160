package scale

import "kord/internal/pitch"

// Candidate is a ranked scale or mode suggestion for playing over a chord.
type Candidate struct {
	Rank   int
	Reason string
	IsMode bool
	Scale  Kind
	Mode   ModeKind
}

// ScaleCandidate builds a scale suggestion.
func ScaleCandidate(rank int, kind Kind, reason string) Candidate {
	return Candidate{Rank: rank, Reason: reason, Scale: kind}
}

// ModeCandidate builds a mode suggestion.
func ModeCandidate(rank int, kind ModeKind, reason string) Candidate {
	return Candidate{Rank: rank, Reason: reason, IsMode: true, Mode: kind}
}

// Name returns the scale or mode name without a root.
func (c Candidate) Name() string {
	if c.IsMode {
		return c.Mode.String()
	}
	return c.Scale.String()
}

func (c Candidate) Description() string {
	if c.IsMode {
		return c.Mode.Description()
	}
	return c.Scale.Description()
}

// Notes spells the suggestion from root.
func (c Candidate) Notes(root pitch.Note) ([]pitch.Note, error) {
	if c.IsMode {
		m, err := NewMode(root, c.Mode)
		if err != nil {
			return nil, err
		}
		return m.Notes(), nil
	}
	s, err := New(root, c.Scale)
	if err != nil {
		return nil, err
	}
	return s.Notes(), nil
}
