// Package standardize turns a group of variable-length trials into one dense
// 3-D tensor by suffix zero-padding every trial to the group's maximum
// length.
package standardize

import (
	"fmt"

	"github.com/fatigueset/eegprep/trial"
)

// Group accumulates the trials of one modality in the order the directory
// walker first encountered them. That order is preserved through Stack, so
// trial i of the output tensor is trial i of the lengths sidecar.
type Group struct {
	channels int
	trials   []*trial.RawTrial
}

// NewGroup returns an empty group whose trials all carry the given channel
// count.
func NewGroup(channels int) *Group {
	return &Group{channels: channels}
}

// Add appends a trial to the group. The loader has already verified the
// channel count; a mismatch here means the trial came from somewhere else and
// is rejected.
func (g *Group) Add(t *trial.RawTrial) error {
	if c := t.Channels(); c != g.channels {
		return fmt.Errorf("trial %s_%s has %d channels, group expects %d", t.Subject, t.TrialID, c, g.channels)
	}

	g.trials = append(g.trials, t)

	return nil
}

// Len returns the number of trials currently in the group.
func (g *Group) Len() int {
	return len(g.trials)
}

// MaxLen returns the longest trial length currently in the group. It is
// recomputed on every call so that adding or removing trials can never leave
// a stale target length behind.
func (g *Group) MaxLen() int {
	maxLen := 0
	for _, t := range g.trials {
		if l := t.Len(); l > maxLen {
			maxLen = l
		}
	}

	return maxLen
}

// Lengths returns the original (pre-padding) trial lengths in group order.
func (g *Group) Lengths() []int {
	lengths := make([]int, len(g.trials))
	for i, t := range g.trials {
		lengths[i] = t.Len()
	}

	return lengths
}

// Trials returns the group's trials in group order.
func (g *Group) Trials() []*trial.RawTrial {
	return g.trials
}

// EmptyGroupError reports a group that ended up with no valid trials, either
// because the walker found no usable files or because the loader excluded
// them all. An empty tensor is not a meaningful model input, so this is fatal
// for the group.
type EmptyGroupError struct {
	Group string
}

func (e *EmptyGroupError) Error() string {
	return fmt.Sprintf("group %s has no valid trials", e.Group)
}

// Stack pads every trial in the group to the group's maximum length with
// zero-valued rows and stacks the padded trials into one dense tensor of
// shape (trials, maxLen, channels). Padding is strictly a suffix operation
// and no truncation ever occurs; a trial already at the maximum length is
// copied through untouched.
func (g *Group) Stack(name string) (*Tensor, error) {
	if len(g.trials) == 0 {
		return nil, &EmptyGroupError{Group: name}
	}

	maxLen := g.MaxLen()

	out := &Tensor{
		Trials:    len(g.trials),
		Timesteps: maxLen,
		Channels:  g.channels,
		Data:      make([]float64, len(g.trials)*maxLen*g.channels),
	}

	for i, t := range g.trials {
		m := t.Data.RawMatrix()
		base := i * maxLen * g.channels
		for row := 0; row < m.Rows; row++ {
			copy(out.Data[base+row*g.channels:base+(row+1)*g.channels],
				m.Data[row*m.Stride:row*m.Stride+g.channels])
		}
		// Rows [t.Len(), maxLen) stay at their zero value.
	}

	return out, nil
}
