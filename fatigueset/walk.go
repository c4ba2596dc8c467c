package fatigueset

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// FileRef is one discovered trial file, annotated with the identity its path
// position implies.
type FileRef struct {
	Path    string
	Subject string
	TrialID string
}

// Trial files are named <subject>_<trial>.csv, optionally with a compression
// suffix the loader handles transparently.
var trialFileRE = regexp.MustCompile(`(?i)^([a-z0-9-]+)_([a-z0-9-]+)\.csv(?:\.(?:gz|xz|bz2|zip|z))?$`)

// Walk lists the trial files of one group in a stable order: lexicographic
// by subject, then by trial. Entries that do not match the naming convention
// come back as UnrecognizedFileErrors for the caller to report; a missing
// group folder is a LayoutError. Walk only reads the filesystem.
func Walk(root string, key GroupKey) ([]FileRef, []*UnrecognizedFileError, error) {
	dir := filepath.Join(root, key.Dir())

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, &LayoutError{Dir: dir, Err: err}
	}

	var refs []FileRef
	var skipped []*UnrecognizedFileError

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		m := trialFileRE.FindStringSubmatch(entry.Name())
		if m == nil {
			skipped = append(skipped, &UnrecognizedFileError{Path: filepath.Join(dir, entry.Name())})
			continue
		}

		refs = append(refs, FileRef{
			Path:    filepath.Join(dir, entry.Name()),
			Subject: m[1],
			TrialID: m[2],
		})
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Subject != refs[j].Subject {
			return refs[i].Subject < refs[j].Subject
		}
		return refs[i].TrialID < refs[j].TrialID
	})

	return refs, skipped, nil
}

// CheckLayout verifies that every group folder exists under root before any
// work starts, so a structurally broken dataset fails fast instead of
// failing 17 groups in.
func CheckLayout(root string) error {
	for _, key := range Groups() {
		dir := filepath.Join(root, key.Dir())

		info, err := os.Stat(dir)
		if err != nil {
			return &LayoutError{Dir: dir, Err: err}
		}
		if !info.IsDir() {
			return &LayoutError{Dir: dir, Err: os.ErrInvalid}
		}
	}

	return nil
}
