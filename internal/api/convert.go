package api

import (
	"kord/internal/chord"
	"kord/internal/notation"
	"kord/internal/pitch"
	"kord/internal/resolve"
	"kord/internal/scale"
)

// FromNote converts a spelled pitch.
func FromNote(n pitch.Note) Note {
	return Note{
		Name:   n.Name(),
		ASCII:  n.ASCII(),
		Octave: int(n.Octave()),
		MIDI:   n.MIDI(),
		Class:  n.Class().String(),
	}
}

// FromNotes converts a slice of pitches, preserving order.
func FromNotes(notes []pitch.Note) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = FromNote(n)
	}
	return out
}

// FromNotation converts any notation variant. Chords also carry quality,
// slash, inversion and scale suggestions.
func FromNotation(n notation.Notation) Notation {
	dto := Notation{
		Kind:        string(n.Kind()),
		Name:        n.Name(),
		PreciseName: n.PreciseName(),
		Description: n.Description(),
		Root:        FromNote(n.Root()),
		Notes:       FromNotes(n.Notes()),
	}
	if c, ok := n.AsChord(); ok {
		dto.Quality = c.Quality().String()
		if bass, ok := c.Slash(); ok {
			slash := FromNote(bass)
			dto.Slash = &slash
		}
		dto.Inversion = c.Inversion()
		dto.ScaleCandidates = FromScaleCandidates(c.Root(), c.ScaleCandidates())
	}
	return dto
}

// FromScaleCandidates spells each suggestion from root. Suggestions that cannot
// be spelled in range keep an empty note list.
func FromScaleCandidates(root pitch.Note, candidates []scale.Candidate) []ScaleCandidate {
	out := make([]ScaleCandidate, 0, len(candidates))
	for _, c := range candidates {
		dto := ScaleCandidate{
			Rank:        c.Rank,
			Name:        root.Name() + " " + c.Name(),
			Description: c.Description(),
			Reason:      c.Reason,
			IsMode:      c.IsMode,
			Notes:       []string{},
		}
		if notes, err := c.Notes(root); err == nil {
			dto.Notes = noteNames(notes)
		}
		out = append(out, dto)
	}
	return out
}

// FromCandidates converts ranked resolver output; ranks start at 1.
func FromCandidates(input pitch.ClassSet, candidates []resolve.Candidate) CandidateList {
	list := CandidateList{
		Input:      classNames(input),
		Candidates: make([]Candidate, 0, len(candidates)),
	}
	for i, c := range candidates {
		list.Candidates = append(list.Candidates, fromCandidate(i+1, c))
	}
	return list
}

func fromCandidate(rank int, c resolve.Candidate) Candidate {
	return Candidate{
		Rank:        rank,
		Name:        c.Chord.Name(),
		PreciseName: c.Chord.PreciseName(),
		Description: c.Chord.Description(),
		Distance:    c.Distance,
		Exact:       c.Exact(),
		Notes:       chordNoteNames(c.Chord),
		Classes:     classNames(c.Classes),
	}
}

func chordNoteNames(c chord.Chord) []string {
	notes, err := c.TryTones()
	if err != nil {
		return []string{}
	}
	return noteNames(notes)
}

func noteNames(notes []pitch.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Name()
	}
	return out
}

func classNames(set pitch.ClassSet) []string {
	classes := set.Classes()
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = c.String()
	}
	return out
}
