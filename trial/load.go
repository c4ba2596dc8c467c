package trial

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/fatigueset/eegprep"
)

// Load parses one trial file into a timepoints x wantChannels matrix. The
// file may be compressed; the delimiter may be a comma or a tab. A leading
// header row is skipped, and a pandas-style unnamed index column ("Unnamed:
// 0" or an empty header field in position 0) is dropped along with its
// values, matching how the dataset's own exports were produced.
//
// Content problems (unparseable values, ragged rows, wrong channel count)
// yield a *MalformedTrialError naming the file. Load shares no state across
// calls.
func Load(path string, wantChannels int) (*mat.Dense, error) {
	r, err := eegprep.OpenTrialFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = eegprep.DetectDelimiter(bytes.NewReader(raw))
	reader.TrimLeadingSpace = true

	// Row widths are validated below so that a ragged file surfaces as a
	// MalformedTrialError rather than a bare csv.ParseError.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &MalformedTrialError{Path: path, Reason: err.Error()}
	}

	records = dropHeader(records)
	if len(records) == 0 {
		return nil, &MalformedTrialError{Path: path, Reason: "contains no sample rows"}
	}

	width := len(records[0])
	if width != wantChannels {
		return nil, &MalformedTrialError{
			Path:   path,
			Reason: fmt.Sprintf("expected %d channels, found %d", wantChannels, width),
		}
	}

	data := make([]float64, 0, len(records)*width)
	for i, record := range records {
		if len(record) != width {
			return nil, &MalformedTrialError{
				Path:   path,
				Reason: fmt.Sprintf("row %d has %d values, earlier rows have %d", i+1, len(record), width),
			}
		}

		for j, field := range record {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &MalformedTrialError{
					Path:   path,
					Reason: fmt.Sprintf("row %d column %d: %q is not numeric", i+1, j+1, field),
				}
			}
			data = append(data, value)
		}
	}

	return mat.NewDense(len(records), width, data), nil
}

// dropHeader removes a leading non-numeric header row, and, when that header
// carries an unnamed index column in position 0, strips the first column from
// every remaining row.
func dropHeader(records [][]string) [][]string {
	if len(records) == 0 || isNumericRow(records[0]) {
		return records
	}

	header := records[0]
	records = records[1:]

	if len(header) > 0 && (header[0] == "" || strings.EqualFold(header[0], "Unnamed: 0")) {
		for i := range records {
			if len(records[i]) > 0 {
				records[i] = records[i][1:]
			}
		}
	}

	return records
}

func isNumericRow(row []string) bool {
	if len(row) == 0 {
		return false
	}

	for _, field := range row {
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			return false
		}
	}

	return true
}
