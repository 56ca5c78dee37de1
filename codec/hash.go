package codec

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/erraggy/xutil/xuerrors"
)

// HashAlgorithm names a message digest.
type HashAlgorithm string

const (
	MD5        HashAlgorithm = "md5"
	SHA1       HashAlgorithm = "sha1"
	SHA256     HashAlgorithm = "sha256"
	SHA512     HashAlgorithm = "sha512"
	SHA3_256   HashAlgorithm = "sha3-256"
	SHA3_512   HashAlgorithm = "sha3-512"
	BLAKE2b256 HashAlgorithm = "blake2b-256"
)

var hashers = map[HashAlgorithm]func() hash.Hash{
	MD5:      md5.New,
	SHA1:     sha1.New,
	SHA256:   sha256.New,
	SHA512:   sha512.New,
	SHA3_256: sha3.New256,
	SHA3_512: sha3.New512,
	BLAKE2b256: func() hash.Hash {
		// New256 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	},
}

// HashAlgorithms lists the supported digests.
func HashAlgorithms() []HashAlgorithm {
	return []HashAlgorithm{MD5, SHA1, SHA256, SHA512, SHA3_256, SHA3_512, BLAKE2b256}
}

// Hash returns the lower-case hex digest of the UTF-8 bytes of text.
func Hash(alg HashAlgorithm, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", xuerrors.Input("text", "input text cannot be empty")
	}
	newHash, ok := hashers[HashAlgorithm(strings.ToLower(string(alg)))]
	if !ok {
		return "", xuerrors.Input("algorithm", "unsupported algorithm %q, expected one of %v", alg, HashAlgorithms())
	}
	h := newHash()
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}
