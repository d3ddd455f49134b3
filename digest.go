package headers

import (
	"bytes"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha3"
	"encoding/base32"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"strings"

	"github.com/valyala/bytebufferpool"
	"github.com/zeebo/blake3"
)

type DigestAlgorithm int

const (
	SHA1 DigestAlgorithm = iota
	SHA256Base16
	SHA256Base32
	BLAKE3
	SHA3256Base16
	SHA3512Base16
)

var ErrUnknownDigestAlgorithm = errors.New("unknown digest algorithm")

// GetDigest hashes everything read from r and returns it prefixed with the
// algorithm label, e.g. "sha1:FKXG...".
func GetDigest(r io.Reader, digestAlgorithm DigestAlgorithm) (string, error) {
	switch digestAlgorithm {
	case SHA1:
		return digestBase32(r, "sha1:", sha1.New())
	case SHA256Base16:
		return digestBase16(r, "sha256:", sha256.New())
	case SHA256Base32:
		return digestBase32(r, "sha256:", sha256.New())
	case BLAKE3:
		return digestBase16(r, "blake3:", blake3.New())
	case SHA3256Base16:
		return digestBase16(r, "sha3-256:", sha3.New256())
	case SHA3512Base16:
		return digestBase16(r, "sha3-512:", sha3.New512())
	default:
		return "", ErrUnknownDigestAlgorithm
	}
}

func digestBase32(r io.Reader, prefix string, h hash.Hash) (string, error) {
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return prefix + base32.StdEncoding.EncodeToString(h.Sum(nil)), nil
}

func digestBase16(r io.Reader, prefix string, h hash.Hash) (string, error) {
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return prefix + hex.EncodeToString(h.Sum(nil)), nil
}

// GetDigestFromPrefix maps a digest label ("sha1", "sha256", "blake3",
// "sha3-256", "sha3-512") to its algorithm. Unknown labels map to SHA1.
func GetDigestFromPrefix(prefix string) DigestAlgorithm {
	switch strings.ToLower(prefix) {
	case "sha256":
		return SHA256Base16
	case "sha256-base32":
		return SHA256Base32
	case "blake3":
		return BLAKE3
	case "sha3-256":
		return SHA3256Base16
	case "sha3-512":
		return SHA3512Base16
	default:
		return SHA1
	}
}

// IsDigestSupported reports whether prefix names a supported algorithm.
func IsDigestSupported(prefix string) bool {
	switch strings.ToLower(prefix) {
	case "sha1", "sha256", "sha256-base32", "blake3", "sha3-256", "sha3-512":
		return true
	default:
		return false
	}
}

// Digest returns the digest of the serialized form of c, as produced by
// String. Two collections with the same names, values and order share a
// digest.
func (c *Collection) Digest(digestAlgorithm DigestAlgorithm) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	c.render(buf)
	return GetDigest(bytes.NewReader(buf.B), digestAlgorithm)
}
