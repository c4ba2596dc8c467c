package eegprep

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetectDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file. Trial exports from different
// acquisition tools arrive comma- or tab-separated; both must load. Falls back
// to a comma.
func DetectDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}
