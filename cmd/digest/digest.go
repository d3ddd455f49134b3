package digest

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/internetarchive/headers"
	"github.com/internetarchive/headers/cmd/utils"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Command represents the digest command
var Command = &cobra.Command{
	Use:   "digest",
	Short: "Fingerprint the normalized form of one or many header file(s)",
	Long: `Fingerprint the normalized form of one or many header file(s).
Blocks that only differ in repeated fields or surrounding whitespace share a digest.`,
	Args: cobra.MinimumNArgs(1),
	RunE: digest,
}

func init() {
	Command.Flags().IntP("threads", "t", runtime.NumCPU(), "Number of files to hash concurrently")
	Command.Flags().StringP("algorithm", "a", "sha1", "Digest algorithm: sha1, sha256, sha256-base32, blake3, sha3-256 or sha3-512")
}

func digest(cmd *cobra.Command, files []string) error {
	threads := utils.GetThreadsFlag(cmd)
	algorithm, _ := cmd.Flags().GetString("algorithm")

	if !headers.IsDigestSupported(algorithm) {
		return fmt.Errorf("%w: %s", headers.ErrUnknownDigestAlgorithm, algorithm)
	}

	startTime := time.Now()
	digests, err := Compute(files, headers.GetDigestFromPrefix(algorithm), threads)
	if err != nil {
		return err
	}

	for i, file := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", file, digests[i])
	}

	slog.Debug(fmt.Sprintf("hashed in %s", time.Since(startTime).String()), "files", len(files), "algorithm", algorithm)
	return nil
}

// Compute returns the digest of every file, in the order of files. It stops
// at the first file that cannot be read.
func Compute(files []string, algorithm headers.DigestAlgorithm, threads int) ([]string, error) {
	digests := make([]string, len(files))

	var g errgroup.Group
	g.SetLimit(threads)

	for i, filepath := range files {
		g.Go(func() error {
			c, err := utils.OpenHeaderFile(filepath)
			if err != nil {
				return err
			}

			d, err := c.Digest(algorithm)
			if err != nil {
				return fmt.Errorf("digest %s: %w", filepath, err)
			}
			digests[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return digests, nil
}
