package textutil

import "testing"

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cm7(♭5)", "cm7_b5"},
		{"F♯dim/A", "fsdim_a"},
		{"D dorian", "d_dorian"},
		{"E♭ locrian ♮6", "eb_locrian_n6"},
		{"C+(maj7)", "caug_maj7"},
		{"Gø7", "ghdim7"},
		{"  ", "unknown"},
		{"((()))", "unknown"},
	}
	for _, tt := range tests {
		if got := SanitizeToken(tt.in); got != tt.want {
			t.Fatalf("SanitizeToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("A harmonic minor", ".mid"); got != "a_harmonic_minor.mid" {
		t.Fatalf("unexpected file name %q", got)
	}
}
