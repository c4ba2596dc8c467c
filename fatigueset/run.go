package fatigueset

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"

	"github.com/fatigueset/eegprep/standardize"
	"github.com/fatigueset/eegprep/tensorio"
	"github.com/fatigueset/eegprep/trial"
)

// Config locates the dataset and the output folder. Workers bounds how many
// groups standardize at once; groups share no mutable state, so any bound
// is safe.
type Config struct {
	Input   string
	Output  string
	Workers int
}

// LengthStats summarizes the original trial lengths of one group.
type LengthStats struct {
	Min  float64
	Mean float64
	Max  float64
}

// GroupResult is the outcome for one group. Err is nil on success; on
// failure the group produced no artifact but the run continued.
type GroupResult struct {
	Key          GroupKey
	ArtifactPath string
	LengthsPath  string
	Shape        []int
	Skipped      []string
	Excluded     []string
	Lengths      LengthStats
	Err          error
}

// Summary is the explicit result of one pipeline run: one entry per group,
// in Groups() order, plus the derived failure view. No ambient state.
type Summary struct {
	Groups []GroupResult
}

// Failed returns the groups that produced no artifact.
func (s *Summary) Failed() []GroupResult {
	var failed []GroupResult
	for _, g := range s.Groups {
		if g.Err != nil {
			failed = append(failed, g)
		}
	}

	return failed
}

// Run executes the full pipeline: layout check, then per group
// walk -> load -> standardize -> persist. Per-file and per-trial problems
// are contained to warnings; per-group problems fail that group's entry in
// the summary; only a broken dataset layout aborts the run, and it does so
// before any artifact is written.
func Run(cfg Config) (*Summary, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	if err := CheckLayout(cfg.Input); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return nil, pfx.Err(err)
	}

	keys := Groups()
	results := make([]GroupResult, len(keys))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, cfg.Workers)

	for i, key := range keys {
		wg.Add(1)

		go func(i int, key GroupKey) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[i] = runGroup(cfg, key)
		}(i, key)
	}

	wg.Wait()

	return &Summary{Groups: results}, nil
}

func runGroup(cfg Config, key GroupKey) GroupResult {
	result := GroupResult{Key: key}

	refs, skipped, err := Walk(cfg.Input, key)
	if err != nil {
		result.Err = err
		return result
	}

	for _, skip := range skipped {
		log.Println(skip)
		result.Skipped = append(result.Skipped, skip.Path)
	}

	group := standardize.NewGroup(Channels(key.Band))

	for _, ref := range refs {
		data, err := trial.Load(ref.Path, Channels(key.Band))
		if err != nil {
			// One bad record must not take the group down with it.
			log.Println(pfx.Err(err))
			result.Excluded = append(result.Excluded, ref.Path)
			continue
		}

		if err := group.Add(&trial.RawTrial{Subject: ref.Subject, TrialID: ref.TrialID, Data: data}); err != nil {
			result.Err = pfx.Err(err)
			return result
		}
	}

	tensor, err := group.Stack(key.String())
	if err != nil {
		result.Err = err
		return result
	}

	log.Printf("%s: %d trials, padded to %d timepoints", key, tensor.Trials, tensor.Timesteps)

	result.ArtifactPath, err = tensorio.WriteTensor(cfg.Output, key.ArtifactName(), tensor)
	if err != nil {
		result.Err = err
		return result
	}

	result.LengthsPath, err = tensorio.WriteLengths(cfg.Output, key.ArtifactName(), group.Trials())
	if err != nil {
		result.Err = err
		return result
	}

	result.Shape = tensor.Shape()
	result.Lengths = lengthStats(group.Lengths())

	return result
}

func lengthStats(lengths []int) LengthStats {
	values := make([]float64, len(lengths))
	for i, l := range lengths {
		values[i] = float64(l)
	}

	// The group is known non-empty here, so these cannot fail with the
	// empty-input error; anything else is a programming mistake.
	min, err := stats.Min(values)
	if err != nil {
		panic(err)
	}
	mean, err := stats.Mean(values)
	if err != nil {
		panic(err)
	}
	max, err := stats.Max(values)
	if err != nil {
		panic(err)
	}

	return LengthStats{Min: min, Mean: mean, Max: max}
}

// Describe renders one summary line per group in a tab-separated layout.
func (s *Summary) Describe() string {
	out := "group\tstatus\tshape\tskipped\texcluded\tlengths(min/mean/max)\n"

	for _, g := range s.Groups {
		if g.Err != nil {
			reason := g.Err.Error()

			var empty *standardize.EmptyGroupError
			var write *tensorio.WriteError
			switch {
			case errors.As(g.Err, &empty):
				reason = "no valid trials"
			case errors.As(g.Err, &write):
				reason = "write failed: " + write.Path
			}

			out += fmt.Sprintf("%s\tFAILED\t-\t%d\t%d\t%s\n", g.Key, len(g.Skipped), len(g.Excluded), reason)
			continue
		}

		out += fmt.Sprintf("%s\tok\t%v\t%d\t%d\t%.0f/%.1f/%.0f\n",
			g.Key, g.Shape, len(g.Skipped), len(g.Excluded),
			g.Lengths.Min, g.Lengths.Mean, g.Lengths.Max)
	}

	return out
}
