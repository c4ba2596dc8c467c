// Package trial loads one raw FatigueSet trial file into a numeric
// timepoints-by-channels matrix.
package trial

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// RawTrial is one bounded recording session for one subject under one
// modality. Data is timepoints x channels; the row count varies trial to
// trial within a modality, the column count does not. RawTrial is read-only
// input to the standardization engine and is never mutated after Load.
type RawTrial struct {
	Subject string
	TrialID string
	Data    *mat.Dense
}

// Len returns the number of timepoints in the trial.
func (t *RawTrial) Len() int {
	r, _ := t.Data.Dims()
	return r
}

// Channels returns the number of channels in the trial.
func (t *RawTrial) Channels() int {
	_, c := t.Data.Dims()
	return c
}

// MalformedTrialError describes a trial file whose content could not be
// parsed into a consistent timepoints-by-channels matrix. The trial is
// excluded from its group; the run continues.
type MalformedTrialError struct {
	Path   string
	Reason string
}

func (e *MalformedTrialError) Error() string {
	return fmt.Sprintf("malformed trial %s: %s", e.Path, e.Reason)
}
