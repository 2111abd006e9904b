package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pmezard/go-difflib/difflib"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrStale is returned by Verify for files whose content on disk differs
// from what would be generated.
var ErrStale = errors.New("generated file is out of date")

// WriteFiles writes all generated files to their paths.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		err := os.WriteFile(file.Path, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path, err)
		}
	}

	return nil
}

// StaleFile describes a generated file that does not match the disk.
type StaleFile struct {
	Path string
	// Diff is a unified diff from the file on disk to the generated content.
	// It is empty when the file is missing.
	Diff    string
	Missing bool
}

// Verify compares the generated files with the files on disk and returns the
// ones that differ. The error wraps ErrStale when anything is out of date.
func Verify(files []GeneratedFile) ([]StaleFile, error) {
	var stale []StaleFile

	for _, file := range files {
		existing, err := os.ReadFile(file.Path)
		if errors.Is(err, fs.ErrNotExist) {
			stale = append(stale, StaleFile{Path: file.Path, Missing: true})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file.Path, err)
		}

		if bytes.Equal(existing, file.Content) {
			continue
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(existing)),
			B:        difflib.SplitLines(string(file.Content)),
			FromFile: file.Path,
			ToFile:   file.Path + " (generated)",
			Context:  3,
		})
		if err != nil {
			return nil, fmt.Errorf("diffing %s: %w", file.Path, err)
		}

		stale = append(stale, StaleFile{Path: file.Path, Diff: diff})
	}

	if len(stale) > 0 {
		return stale, fmt.Errorf("%w: %d file(s)", ErrStale, len(stale))
	}

	return nil, nil
}
