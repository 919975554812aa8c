package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"

	"spacelint/internal/engine"
	"spacelint/internal/source"
	"spacelint/internal/version"
)

// Digest is a SHA-256 cache key.
type Digest [32]byte

// combineDigest: H(content || len(p1) || p1 || len(p2) || p2 ...). Length
// prefixes keep ("ab","c") and ("a","bc") apart.
func combineDigest(content Digest, parts ...string) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	var n [4]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint32(n[:], uint32(len(p)))
		_, _ = h.Write(n[:])
		_, _ = h.Write([]byte(p))
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// CacheKey identifies the check result of file under opts: its content, the
// enabled rules, the language version, the tool version and the payload
// schema all feed the key.
func CacheKey(file *source.File, opts engine.Options) Digest {
	return combineDigest(Digest(file.Hash),
		opts.Rules.Key(),
		opts.Profile.Version.String(),
		version.Version,
		strconv.Itoa(int(diskCacheSchemaVersion)),
	)
}
