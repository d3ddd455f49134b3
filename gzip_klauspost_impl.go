//go:build !standard_gzip

package headers

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

func newGzipWriter(w io.Writer) io.WriteCloser {
	return gzip.NewWriter(w)
}

// newGzipReader reads the first gzip member of r only.
func newGzipReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	zr.Multistream(false)
	return zr, nil
}
