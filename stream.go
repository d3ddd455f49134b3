package headers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/valyala/bytebufferpool"
)

// ErrUnknownCompression is returned for a compression name other than "",
// "gzip" or "zstd".
var ErrUnknownCompression = errors.New("unknown compression algorithm")

// ReadFrom reads a header block from r and parses it like Parse. GZip, BZip2,
// XZ and ZStd compressed input is decompressed transparently. Reading stops at
// EOF or at the first empty line, which ends a header block; anything after it
// is left unread.
func ReadFrom(r io.Reader, opts ...Option) (*Collection, error) {
	dr, compType, err := newDecompressionReader(r)
	if err != nil {
		return nil, err
	}
	defer dr.Close()

	c := New(opts...)
	c.opts.logger.Debug("reading header block", "compression", compType.String())

	br := bufio.NewReader(dr)
	started := false
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read header line %d: %w", n, err)
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			// Leading empty lines are skipped, a later one ends the block.
			if started {
				break
			}
		} else {
			started = true
			c.parseLine(n, line)
		}

		if err == io.EOF {
			break
		}
	}

	return c, nil
}

// WriteTo writes the serialized form of c followed by a newline to w.
func (c *Collection) WriteTo(w io.Writer) (int64, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	c.render(buf)
	if buf.Len() > 0 {
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}

// NewCompressedWriter wraps w so that everything written to it is compressed
// with the named algorithm ("gzip" or "zstd", case-insensitive). An empty name
// means no compression. The returned writer must be closed to flush it; closing
// it does not close w.
func NewCompressedWriter(w io.Writer, compression string) (io.WriteCloser, error) {
	switch strings.ToLower(compression) {
	case "":
		return nopWriteCloser{w}, nil
	case "gzip":
		return newGzipWriter(w), nil
	case "zstd":
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, err
		}
		return zw, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, compression)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
