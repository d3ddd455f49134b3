package get

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/internetarchive/headers/cmd/utils"
	"github.com/spf13/cobra"
)

// Command represents the get command
var Command = &cobra.Command{
	Use:   "get NAME FILE...",
	Short: "Print the value of a header field from one or many header file(s)",
	Long:  `Print the value of a header field from one or many header file(s). The field name is case-insensitive.`,
	Args:  cobra.MinimumNArgs(2),
	RunE:  get,
}

func init() {
	Command.Flags().IntP("threads", "t", runtime.NumCPU(), "Number of files to parse concurrently")
}

func get(cmd *cobra.Command, args []string) error {
	name, files := args[0], args[1:]
	threads := utils.GetThreadsFlag(cmd)

	results := utils.LoadFiles(files, threads)
	missing := Lookup(cmd.OutOrStdout(), name, results, len(files) > 1)
	if missing > 0 {
		slog.Warn("header field not found", "name", name, "files", missing)
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) could not be parsed", failed, len(files))
	}
	return nil
}

// Lookup writes the value of name for every successfully parsed result and
// returns how many results did not carry the field. With withName set, each
// value is prefixed by its file name and a tab.
func Lookup(w io.Writer, name string, results []utils.FileResult, withName bool) int {
	missing := 0
	for _, result := range results {
		if result.Err != nil {
			slog.Error("failed to parse file", "file", result.File, "err", result.Err.Error())
			continue
		}

		value, ok := result.Headers.Get(name)
		if !ok {
			slog.Debug("header field not found", "file", result.File, "name", name)
			missing++
			continue
		}

		if withName {
			fmt.Fprintf(w, "%s\t%s\n", result.File, value)
		} else {
			fmt.Fprintln(w, value)
		}
	}
	return missing
}
