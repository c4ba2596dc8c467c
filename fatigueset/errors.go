package fatigueset

import "fmt"

// LayoutError reports a dataset root that does not carry the expected
// band/intensity folder structure. Structural violations are fatal to the
// whole run, before any output is written.
type LayoutError struct {
	Dir string
	Err error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("dataset layout: missing or unreadable folder %s: %v", e.Dir, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// UnrecognizedFileError reports a directory entry that does not follow the
// <subject>_<trial>.csv naming convention. The entry is skipped with a
// recorded warning; the group keeps processing.
type UnrecognizedFileError struct {
	Path string
}

func (e *UnrecognizedFileError) Error() string {
	return fmt.Sprintf("unrecognized file name %s: want <subject>_<trial>.csv", e.Path)
}
