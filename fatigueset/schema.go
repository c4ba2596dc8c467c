// Package fatigueset knows the on-disk layout of the FatigueSet EEG dataset
// and drives the full standardization pipeline over it: walk the per-band,
// per-intensity trial folders, load and validate each trial, zero-pad each
// group to its own maximum length, and persist one 3-D .npy artifact per
// group.
package fatigueset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Band is one EEG frequency band (or the unfiltered signal) as the dataset
// names its top-level sample folders.
type Band string

const (
	BandRaw   Band = "Raw EEG"
	BandAlpha Band = "Alpha EEG"
	BandBeta  Band = "Beta EEG"
	BandGamma Band = "Gamma EEG"
	BandDelta Band = "Delta EEG"
	BandTheta Band = "Theta EEG"
)

// Bands lists every band in the dataset, in artifact order.
var Bands = []Band{BandRaw, BandAlpha, BandBeta, BandGamma, BandDelta, BandTheta}

// Intensity is one fatigue-intensity level of the dataset's session split.
type Intensity string

const (
	IntensityLow    Intensity = "Low Intensity"
	IntensityMedium Intensity = "Medium Intensity"
	IntensityHigh   Intensity = "High Intensity"
)

// Intensities lists every intensity level, in artifact order.
var Intensities = []Intensity{IntensityLow, IntensityMedium, IntensityHigh}

// The headset behind FatigueSet records the same 4-electrode frontal and
// temporal montage for every band, raw or filtered. Kept as a table so a
// montage change is a one-line edit.
var bandChannels = map[Band]int{
	BandRaw:   4,
	BandAlpha: 4,
	BandBeta:  4,
	BandGamma: 4,
	BandDelta: 4,
	BandTheta: 4,
}

// Channels returns the channel count every trial of the band must carry.
func Channels(b Band) int {
	return bandChannels[b]
}

// GroupKey identifies one modality group: a band crossed with an intensity
// level. Each group standardizes independently and yields one artifact;
// Groups() enumerates all 18.
type GroupKey struct {
	Band      Band
	Intensity Intensity
}

// Groups enumerates every (band, intensity) combination in a fixed,
// reproducible order: bands outer, intensities inner.
func Groups() []GroupKey {
	keys := make([]GroupKey, 0, len(Bands)*len(Intensities))
	for _, band := range Bands {
		for _, intensity := range Intensities {
			keys = append(keys, GroupKey{Band: band, Intensity: intensity})
		}
	}

	return keys
}

// Dir returns the group's folder path relative to the dataset root, e.g.
// "Alpha EEG samples/High Intensity".
func (k GroupKey) Dir() string {
	return filepath.Join(string(k.Band)+" samples", string(k.Intensity))
}

// ArtifactName returns the deterministic output stem for the group, e.g.
// "array_3D_alpha_high". The .npy and _lengths.csv suffixes are appended by
// the writer. The naming matches what downstream loaders already expect.
func (k GroupKey) ArtifactName() string {
	return fmt.Sprintf("array_3D_%s_%s", firstWordLower(string(k.Band)), firstWordLower(string(k.Intensity)))
}

func (k GroupKey) String() string {
	return k.Dir()
}

func firstWordLower(s string) string {
	word, _, _ := strings.Cut(s, " ")
	return strings.ToLower(word)
}
