package standardize

// Tensor is the standardized output artifact for one group: a dense,
// row-major, trial-major 3-D array of shape (Trials, Timesteps, Channels).
// For every trial i, positions [0, originalLen_i) along the time axis hold
// the original values and the remainder is exactly zero.
type Tensor struct {
	Trials    int
	Timesteps int
	Channels  int
	Data      []float64
}

// At returns the value for one (trial, timestep, channel) position.
func (t *Tensor) At(trial, step, channel int) float64 {
	return t.Data[(trial*t.Timesteps+step)*t.Channels+channel]
}

// Shape returns (Trials, Timesteps, Channels) as a slice, in the axis order
// the persisted artifact uses.
func (t *Tensor) Shape() []int {
	return []int{t.Trials, t.Timesteps, t.Channels}
}
