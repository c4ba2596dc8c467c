// preparefatigueset converts the raw FatigueSet EEG recordings into one
// fixed-shape 3-D .npy tensor per (band, intensity) group, zero-padding every
// trial to its group's maximum length. Run it from the repository root with
// the dataset unpacked under data/fatigueset; the 18 standardized arrays and
// their lengths sidecars land in processed_data.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/carbocation/pfx"

	"github.com/fatigueset/eegprep"
	"github.com/fatigueset/eegprep/fatigueset"
)

func main() {
	var input, output string
	var workers int

	flag.StringVar(&input, "input", "data/fatigueset", "Path to the unpacked FatigueSet dataset root.")
	flag.StringVar(&output, "output", "processed_data", "Path where the standardized .npy arrays will be written.")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "How many groups to standardize concurrently.")
	flag.Parse()

	summary, err := fatigueset.Run(fatigueset.Config{
		Input:   eegprep.ExpandHome(input),
		Output:  eegprep.ExpandHome(output),
		Workers: workers,
	})
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	fmt.Print(summary.Describe())

	if failed := summary.Failed(); len(failed) > 0 {
		log.Printf("%d of %d groups failed", len(failed), len(summary.Groups))
		os.Exit(1)
	}
}
