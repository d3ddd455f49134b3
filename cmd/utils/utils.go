package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/internetarchive/headers"
	"github.com/remeh/sizedwaitgroup"
	"github.com/spf13/cobra"
)

// GetThreadsFlag extracts the threads flag value from a cobra command
// Cobra already validates that it's a valid integer, but we still check for errors
func GetThreadsFlag(cmd *cobra.Command) int {
	threads, err := cmd.Flags().GetInt("threads")
	if err != nil {
		// This should never happen if the flag is properly defined, so it's a programming error
		slog.Error("failed to get threads flag - this indicates a programming error", "err", err.Error())
		os.Exit(1)
	}
	if threads < 1 {
		return 1
	}
	return threads
}

// OpenHeaderFile reads and parses the header block stored in filepath, which
// may be compressed. "-" reads from stdin.
func OpenHeaderFile(filepath string) (*headers.Collection, error) {
	var r io.Reader = os.Stdin
	if filepath != "-" {
		f, err := os.Open(filepath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	c, err := headers.ReadFrom(r, headers.WithLogger(slog.Default().With("file", filepath)))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath, err)
	}

	return c, nil
}

// FileResult is the outcome of loading one header file.
type FileResult struct {
	File    string
	Headers *headers.Collection
	Err     error
}

// LoadFiles parses every file with at most threads files in flight. Results
// keep the order of files.
func LoadFiles(files []string, threads int) []FileResult {
	results := make([]FileResult, len(files))
	swg := sizedwaitgroup.New(threads)

	for i, filepath := range files {
		swg.Add()
		go func(i int, filepath string) {
			defer swg.Done()

			c, err := OpenHeaderFile(filepath)
			results[i] = FileResult{File: filepath, Headers: c, Err: err}
		}(i, filepath)
	}

	swg.Wait()
	return results
}

// Constants for file operations
const (
	DefaultFilePermissions = 0644
)
