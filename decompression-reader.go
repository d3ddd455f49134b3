package headers

import (
	"bufio"
	"compress/bzip2"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

const (
	magicGZip               = "\x1f\x8b"                 // Magic bytes for the Gzip format (RFC 1952, section 2.3.1)
	magicBZip2              = "\x42\x5a"                 // Magic bytes for the BZip2 format (no formal spec exists)
	magicXZ                 = "\xfd\x37\x7a\x58\x5a\x00" // Magic bytes for the XZ format (https://tukaani.org/xz/xz-file-format.txt)
	magicZStdFrame          = "\x28\xb5\x2f\xfd"         // Magic bytes for the ZStd frame format (RFC 8478, section 3.1.1)
	magicZStdSkippableFrame = "\x2a\x4d\x18"             // Magic bytes for the ZStd skippable frame format (RFC 8478, section 3.1.2)
)

type decReaderType int

const (
	decReaderGZip decReaderType = iota
	decReaderBZip2
	decReaderXZ
	decReaderZStd
	decReaderNone
)

func (t decReaderType) String() string {
	switch t {
	case decReaderGZip:
		return "gzip"
	case decReaderBZip2:
		return "bzip2"
	case decReaderXZ:
		return "xz"
	case decReaderZStd:
		return "zstd"
	default:
		return "none"
	}
}

// sniffCompression peeks at the first bytes of br, without consuming them,
// and reports which compression format they announce.
func sniffCompression(br *bufio.Reader) (decReaderType, error) {
	magic, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return decReaderNone, fmt.Errorf("read magic bytes: %w", err)
	}

	switch {
	case len(magic) >= 2 && string(magic[0:2]) == magicGZip:
		return decReaderGZip, nil
	case len(magic) >= 6 && string(magic[0:6]) == magicXZ:
		return decReaderXZ, nil
	case len(magic) >= 4 && string(magic[0:4]) == magicZStdFrame:
		return decReaderZStd, nil
	case len(magic) >= 4 && string(magic[1:4]) == magicZStdSkippableFrame && magic[0]&0xf0 == 0x50:
		return decReaderZStd, nil
	case len(magic) >= 3 && string(magic[0:2]) == magicBZip2 && magic[2] == 'h':
		return decReaderBZip2, nil
	default:
		return decReaderNone, nil
	}
}

// newDecompressionReader will return a new reader transparently doing
// decompression of GZip, BZip2, XZ, and ZStd. Input in none of these formats
// is passed through untouched.
func newDecompressionReader(r io.Reader) (io.ReadCloser, decReaderType, error) {
	br := bufio.NewReader(r)

	compType, err := sniffCompression(br)
	if err != nil {
		return nil, decReaderNone, err
	}

	var dr io.ReadCloser
	switch compType {
	case decReaderGZip:
		dr, err = decompressGZip(br)
	case decReaderBZip2:
		dr = io.NopCloser(bzip2.NewReader(br))
	case decReaderXZ:
		dr, err = decompressXZ(br)
	case decReaderZStd:
		dr, err = decompressZStd(br)
	default:
		dr = io.NopCloser(br)
	}
	if err != nil {
		return nil, decReaderNone, err
	}

	return dr, compType, nil
}

// decompressGZip decompresses the first member of a GZip stream from the
// given input reader r. A header block never spans gzip members.
func decompressGZip(r io.Reader) (io.ReadCloser, error) {
	dr, err := newGzipReader(r)
	if err != nil {
		return nil, fmt.Errorf("read GZip stream: %w", err)
	}

	return dr, nil
}

// decompressXZ decompresses an XZ stream from the given input reader r.
func decompressXZ(r io.Reader) (io.ReadCloser, error) {
	dr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("read XZ stream: %w", err)
	}

	return io.NopCloser(dr), nil
}

// decompressZStd decompresses a ZStd stream from the given input reader r.
// A leading skippable frame is taken as a ZStd compressed custom dictionary.
func decompressZStd(br *bufio.Reader) (io.ReadCloser, error) {
	magic, err := br.Peek(4)
	if err != nil {
		return nil, fmt.Errorf("read ZStd frame header: %w", err)
	}

	var opts []zstd.DOption
	opts = append(opts, zstd.WithDecoderConcurrency(1))

	if string(magic[1:4]) == magicZStdSkippableFrame && magic[0]&0xf0 == 0x50 {
		dict, err := readZStdDictionary(br)
		if err != nil {
			return nil, err
		}
		opts = append(opts, zstd.WithDecoderDicts(dict))
	}

	dr, err := zstd.NewReader(br, opts...)
	if err != nil {
		return nil, fmt.Errorf("read ZStd stream: %w", err)
	}

	return dr.IOReadCloser(), nil
}

func readZStdDictionary(r io.Reader) ([]byte, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("read ZStd skippable frame header: %w", err)
	}

	length := binary.LittleEndian.Uint32(header[4:8])
	lr := io.LimitReader(r, int64(length))

	dictr, err := zstd.NewReader(lr)
	if err != nil {
		return nil, fmt.Errorf("read ZStd compressed custom dictionary: %w", err)
	}
	defer dictr.Close()

	dict, err := io.ReadAll(dictr)
	if err != nil {
		return nil, fmt.Errorf("read ZStd compressed custom dictionary: %w", err)
	}

	// Discard remaining bytes, if any
	if _, err := io.Copy(io.Discard, lr); err != nil {
		return nil, fmt.Errorf("discard remaining bytes of ZStd compressed custom dictionary: %w", err)
	}

	return dict, nil
}
