package show

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/internetarchive/headers"
	"github.com/internetarchive/headers/cmd/utils"
	"github.com/spf13/cobra"
)

// Command represents the show command
var Command = &cobra.Command{
	Use:   "show",
	Short: "Parse and print one or many header file(s)",
	Long:  `Parse one or many header file(s), merging repeated fields, and print the normalized block`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  show,
}

func init() {
	Command.Flags().IntP("threads", "t", runtime.NumCPU(), "Number of files to parse concurrently")
	Command.Flags().StringP("format", "f", "text", "Output format: text or json")
}

func show(cmd *cobra.Command, files []string) error {
	threads := utils.GetThreadsFlag(cmd)
	format, _ := cmd.Flags().GetString("format")

	failed := 0
	for _, result := range utils.LoadFiles(files, threads) {
		if result.Err != nil {
			slog.Error("failed to parse file", "file", result.File, "err", result.Err.Error())
			failed++
			continue
		}

		slog.Debug("parsed", "file", result.File, "fields", result.Headers.Len())

		if err := Write(cmd.OutOrStdout(), result.File, result.Headers, format, len(files) > 1); err != nil {
			return fmt.Errorf("write %s: %w", result.File, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) could not be parsed", failed, len(files))
	}
	return nil
}

// Write prints c in the given format. With withName set, text output is
// preceded by a "==> file <==" banner and JSON output is wrapped in an object
// carrying the file name.
func Write(w io.Writer, file string, c *headers.Collection, format string, withName bool) error {
	switch format {
	case "json":
		var v any = c
		if withName {
			v = struct {
				File    string              `json:"file"`
				Headers *headers.Collection `json:"headers"`
			}{file, c}
		}
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "text", "":
		if withName {
			if _, err := fmt.Fprintf(w, "==> %s <==\n", file); err != nil {
				return err
			}
		}
		_, err := c.WriteTo(w)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
