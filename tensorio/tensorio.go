// Package tensorio persists standardized tensors as NumPy .npy artifacts,
// each with a sidecar CSV recording the original trial lengths, so the
// downstream training code can distinguish true zero signal from padding.
package tensorio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/kshedden/gonpy"

	"github.com/fatigueset/eegprep/standardize"
	"github.com/fatigueset/eegprep/trial"
)

// WriteError reports an I/O failure while persisting one group's artifacts.
// Fatal for that group; other groups keep processing.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteTensor persists a tensor under dir as name.npy (float64, C order,
// shape trials x timesteps x channels). The artifact is written to a
// temporary file and renamed into place, so a crash or full disk never
// leaves a partial artifact visible under the final name. Repeated writes of
// the same tensor are byte-identical.
func WriteTensor(dir, name string, t *standardize.Tensor) (string, error) {
	path := filepath.Join(dir, name+".npy")

	err := writeAtomic(path, func(f *os.File) error {
		w, err := gonpy.NewWriter(nopWriteCloser{f})
		if err != nil {
			return err
		}
		w.Shape = t.Shape()

		return w.WriteFloat64(t.Data)
	})
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	return path, nil
}

// ReadTensor loads a persisted artifact back into memory. Used by tests and
// by downstream spot checks; the training code itself loads the .npy files
// with numpy.
func ReadTensor(path string) (*standardize.Tensor, error) {
	r, err := gonpy.NewFileReader(path)
	if err != nil {
		return nil, err
	}

	if len(r.Shape) != 3 {
		return nil, fmt.Errorf("%s: expected a 3-D array, found shape %v", path, r.Shape)
	}

	data, err := r.GetFloat64()
	if err != nil {
		return nil, err
	}

	return &standardize.Tensor{
		Trials:    r.Shape[0],
		Timesteps: r.Shape[1],
		Channels:  r.Shape[2],
		Data:      data,
	}, nil
}

// LengthRecord is one row of the lengths sidecar: which trial sits at this
// index of the tensor, and how many of its timesteps are real signal.
type LengthRecord struct {
	Subject string `csv:"subject"`
	TrialID string `csv:"trial"`
	Length  int    `csv:"length"`
}

// WriteLengths persists the ordered original trial lengths for one group as
// name_lengths.csv next to the tensor, with the same atomic-rename
// discipline. Row i of the sidecar describes trial i of the tensor.
func WriteLengths(dir, name string, trials []*trial.RawTrial) (string, error) {
	path := filepath.Join(dir, name+"_lengths.csv")

	records := make([]*LengthRecord, len(trials))
	for i, t := range trials {
		records[i] = &LengthRecord{Subject: t.Subject, TrialID: t.TrialID, Length: t.Len()}
	}

	err := writeAtomic(path, func(f *os.File) error {
		return gocsv.MarshalFile(&records, f)
	})
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	return path, nil
}

// ReadLengths loads a lengths sidecar.
func ReadLengths(path string) ([]*LengthRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []*LengthRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// writeAtomic runs fill against path.tmp and renames it over path on
// success. The temporary file is removed on any failure.
func writeAtomic(path string, fill func(*os.File) error) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := fill(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}

// nopWriteCloser hands gonpy a WriteCloser whose Close is a no-op, keeping
// the close-and-rename sequencing in writeAtomic's hands.
type nopWriteCloser struct {
	*os.File
}

func (nopWriteCloser) Close() error {
	return nil
}
