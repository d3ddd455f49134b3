package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/internetarchive/headers"
	"github.com/internetarchive/headers/cmd/utils"
	"github.com/spf13/cobra"
)

// Command represents the convert command
var Command = &cobra.Command{
	Use:   "convert FILE",
	Short: "Re-serialize a header file, optionally compressed or as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  convert,
}

func init() {
	Command.Flags().StringP("output", "o", "-", "Output file, - for stdout")
	Command.Flags().StringP("compress", "c", "", "Compress the output: gzip or zstd")
	Command.Flags().StringP("format", "f", "text", "Output format: text or json")
	Command.Flags().Bool("allow-overwrite", false, "Allow overwriting of an existing output file")
}

func convert(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	compression, _ := cmd.Flags().GetString("compress")
	format, _ := cmd.Flags().GetString("format")
	allowOverwrite, _ := cmd.Flags().GetBool("allow-overwrite")

	c, err := utils.OpenHeaderFile(args[0])
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if output != "-" {
		flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		if !allowOverwrite {
			flags |= os.O_EXCL
		}
		f, err := os.OpenFile(output, flags, utils.DefaultFilePermissions)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := Encode(w, c, format, compression); err != nil {
		return fmt.Errorf("convert %s: %w", args[0], err)
	}

	slog.Debug("converted", "file", args[0], "output", output, "fields", c.Len(), "compression", compression)
	return nil
}

// Encode writes c to w in the given format ("text" or "json"), compressed with
// the named algorithm when compression is not empty.
func Encode(w io.Writer, c *headers.Collection, format, compression string) error {
	cw, err := headers.NewCompressedWriter(w, compression)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		err = json.NewEncoder(cw).Encode(c)
	case "text", "":
		_, err = c.WriteTo(cw)
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		cw.Close()
		return err
	}

	return cw.Close()
}
