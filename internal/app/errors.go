package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/willibrandon/rainbow/internal/birds"
)

// FormatLoadError formats a dataset load error with actionable guidance
func FormatLoadError(err error, path string) string {
	errMsg := err.Error()

	var parseErr *birds.ParseError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf(
			"Dataset not found: %s\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Check the path passed with --data\n"+
				"  2. Set dataset.path in config.yaml or RAINBOW_DATASET_PATH\n"+
				"  3. Relative paths are resolved from the working directory\n"+
				"\nOriginal error: %s", path, errMsg)

	case errors.Is(err, fs.ErrPermission):
		return fmt.Sprintf(
			"Permission denied reading %s\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Check the file permissions: ls -l %s\n"+
				"  2. Copy the file somewhere readable\n"+
				"\nOriginal error: %s", path, path, errMsg)

	case errors.As(err, &parseErr):
		return fmt.Sprintf(
			"Malformed dataset: %s\n\n"+
				"Line %d, column %d holds %q, which is not a number.\n\n"+
				"Troubleshooting steps:\n"+
				"  1. The file must be tab separated, name first, then weekly values\n"+
				"  2. Set dataset.header to false if the file has no header row\n"+
				"\nOriginal error: %s", path, parseErr.Line, parseErr.Column, parseErr.Value, errMsg)

	case errors.Is(err, birds.ErrEmptyTable), errors.Is(err, birds.ErrNoHeader):
		return fmt.Sprintf(
			"Dataset is empty: %s\n\n"+
				"The file has no bird rows to chart.\n"+
				"\nOriginal error: %s", path, errMsg)
	}

	return fmt.Sprintf(
		"Could not load dataset %s:\n\n"+
			"%s\n\n"+
			"Compressed files must end in .gz, .zst or .lz4.\n"+
			"Run with --debug flag for detailed logs.", path, errMsg)
}
