package standardize

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/fatigueset/eegprep/trial"
)

// rampTrial builds a trial of the given length whose value at (row, col) is
// base + row + col/10, so padding and ordering mistakes show up as concrete
// value mismatches.
func rampTrial(subject, id string, length, channels int, base float64) *trial.RawTrial {
	data := make([]float64, length*channels)
	for r := 0; r < length; r++ {
		for c := 0; c < channels; c++ {
			data[r*channels+c] = base + float64(r) + float64(c)/10
		}
	}

	return &trial.RawTrial{Subject: subject, TrialID: id, Data: mat.NewDense(length, channels, data)}
}

func TestStackPadsToMaxLength(t *testing.T) {
	// Three trials of lengths 120, 95, 150 over 4 channels must stack to
	// (3, 150, 4), with trial 1's steps [95, 150) all zero.
	g := NewGroup(4)
	for i, length := range []int{120, 95, 150} {
		tr := rampTrial("s01", string(rune('a'+i)), length, 4, float64(i)*1000)
		if err := g.Add(tr); err != nil {
			t.Fatal(err)
		}
	}

	tensor, err := g.Stack("alpha/high")
	if err != nil {
		t.Fatal(err)
	}

	if tensor.Trials != 3 || tensor.Timesteps != 150 || tensor.Channels != 4 {
		t.Fatalf("got shape %v, want [3 150 4]", tensor.Shape())
	}

	// Original values survive untouched.
	for i, length := range []int{120, 95, 150} {
		base := float64(i) * 1000
		for r := 0; r < length; r++ {
			for c := 0; c < 4; c++ {
				if got, want := tensor.At(i, r, c), base+float64(r)+float64(c)/10; got != want {
					t.Fatalf("trial %d at (%d,%d): got %f, want %f", i, r, c, got, want)
				}
			}
		}

		// Suffix is exactly zero.
		for r := length; r < 150; r++ {
			for c := 0; c < 4; c++ {
				if got := tensor.At(i, r, c); got != 0 {
					t.Fatalf("trial %d padding at (%d,%d): got %f, want 0", i, r, c, got)
				}
			}
		}
	}
}

func TestStackSingleTrialNoPadding(t *testing.T) {
	g := NewGroup(4)
	if err := g.Add(rampTrial("s01", "t01", 37, 4, 1)); err != nil {
		t.Fatal(err)
	}

	tensor, err := g.Stack("raw/low")
	if err != nil {
		t.Fatal(err)
	}

	if tensor.Trials != 1 || tensor.Timesteps != 37 || tensor.Channels != 4 {
		t.Fatalf("got shape %v, want [1 37 4]", tensor.Shape())
	}

	for _, v := range tensor.Data {
		if v == 0 {
			t.Fatal("single-trial tensor should contain no padding zeros for a nowhere-zero trial")
		}
	}
}

func TestStackEmptyGroup(t *testing.T) {
	g := NewGroup(4)

	_, err := g.Stack("theta/medium")
	if err == nil {
		t.Fatal("expected an error for an empty group")
	}

	var empty *EmptyGroupError
	if !errors.As(err, &empty) {
		t.Fatalf("got %T, want *EmptyGroupError", err)
	}
	if empty.Group != "theta/medium" {
		t.Errorf("got group %q, want theta/medium", empty.Group)
	}
}

func TestMaxLenTracksGroupContents(t *testing.T) {
	g := NewGroup(4)
	g.Add(rampTrial("s01", "t01", 10, 4, 0))

	if got := g.MaxLen(); got != 10 {
		t.Fatalf("got max length %d, want 10", got)
	}

	g.Add(rampTrial("s01", "t02", 25, 4, 0))

	if got := g.MaxLen(); got != 25 {
		t.Fatalf("got max length %d, want 25", got)
	}

	tensor, err := g.Stack("beta/low")
	if err != nil {
		t.Fatal(err)
	}
	if tensor.Timesteps != 25 {
		t.Fatalf("got %d timesteps, want 25", tensor.Timesteps)
	}
}

func TestAddRejectsChannelMismatch(t *testing.T) {
	g := NewGroup(4)
	if err := g.Add(rampTrial("s01", "t01", 10, 5, 0)); err == nil {
		t.Fatal("expected an error for a 5-channel trial in a 4-channel group")
	}
}

func TestLengthsInGroupOrder(t *testing.T) {
	g := NewGroup(4)
	for i, length := range []int{12, 7, 31} {
		g.Add(rampTrial("s01", string(rune('a'+i)), length, 4, 0))
	}

	got := g.Lengths()
	want := []int{12, 7, 31}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got lengths %v, want %v", got, want)
		}
	}
}
