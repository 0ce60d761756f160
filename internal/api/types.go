package api

// Note describes a spelled pitch.
type Note struct {
	Name   string `json:"name"`
	ASCII  string `json:"ascii"`
	Octave int    `json:"octave"`
	MIDI   int    `json:"midi"`
	Class  string `json:"class"`
}

// ScaleCandidate is a ranked scale or mode suggestion for a chord.
type ScaleCandidate struct {
	Rank        int      `json:"rank"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Reason      string   `json:"reason"`
	IsMode      bool     `json:"isMode"`
	Notes       []string `json:"notes"`
}

// Notation describes a parsed chord, scale or mode.
type Notation struct {
	Kind            string           `json:"kind"`
	Name            string           `json:"name"`
	PreciseName     string           `json:"preciseName"`
	Description     string           `json:"description"`
	Root            Note             `json:"root"`
	Notes           []Note           `json:"notes"`
	Quality         string           `json:"quality,omitempty"`
	Slash           *Note            `json:"slash,omitempty"`
	Inversion       int              `json:"inversion,omitempty"`
	ScaleCandidates []ScaleCandidate `json:"scaleCandidates,omitempty"`
}

// Candidate is one ranked chord interpretation of a pitch set.
type Candidate struct {
	Rank        int      `json:"rank"`
	Name        string   `json:"name"`
	PreciseName string   `json:"preciseName"`
	Description string   `json:"description"`
	Distance    int      `json:"distance"`
	Exact       bool     `json:"exact"`
	Notes       []string `json:"notes"`
	Classes     []string `json:"classes"`
}

// CandidateList wraps resolver output together with the decoded input.
type CandidateList struct {
	Input      []string    `json:"input"`
	Candidates []Candidate `json:"candidates"`
}

// ErrorResponse is the JSON error body returned by the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ChromaRequest is the body of a chroma guess.
type ChromaRequest struct {
	Chroma []float64 `json:"chroma"`
}
