package fatigueset

import (
	"path/filepath"
	"testing"
)

func TestGroupsEnumeratesAllEighteen(t *testing.T) {
	keys := Groups()
	if len(keys) != 18 {
		t.Fatalf("got %d groups, want 18", len(keys))
	}

	seen := make(map[GroupKey]bool)
	for _, key := range keys {
		if seen[key] {
			t.Fatalf("duplicate group %v", key)
		}
		seen[key] = true
	}

	if keys[0] != (GroupKey{Band: BandRaw, Intensity: IntensityLow}) {
		t.Errorf("unexpected first group %v", keys[0])
	}
}

func TestGroupKeyPaths(t *testing.T) {
	for _, v := range []struct {
		key      GroupKey
		dir      string
		artifact string
	}{
		{GroupKey{BandRaw, IntensityLow}, filepath.Join("Raw EEG samples", "Low Intensity"), "array_3D_raw_low"},
		{GroupKey{BandAlpha, IntensityHigh}, filepath.Join("Alpha EEG samples", "High Intensity"), "array_3D_alpha_high"},
		{GroupKey{BandTheta, IntensityMedium}, filepath.Join("Theta EEG samples", "Medium Intensity"), "array_3D_theta_medium"},
	} {
		if got := v.key.Dir(); got != v.dir {
			t.Errorf("%v: got dir %q, want %q", v.key, got, v.dir)
		}
		if got := v.key.ArtifactName(); got != v.artifact {
			t.Errorf("%v: got artifact %q, want %q", v.key, got, v.artifact)
		}
	}
}

func TestChannels(t *testing.T) {
	for _, band := range Bands {
		if got := Channels(band); got != 4 {
			t.Errorf("%s: got %d channels, want 4", band, got)
		}
	}
}
