package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Digest is a SHA-256 value.
type Digest [32]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

func (d Digest) IsZero() bool { return d == Digest{} }

// combineDigest: H(content || part1 || part2 ...). parts must come in a fixed order.
func combineDigest(content Digest, parts ...[]byte) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// cacheKey binds a file's content hash to everything that changes the check
// outcome: the payload schema and the nesting limit.
func cacheKey(content Digest, maxDepth int) Digest {
	var buf [10]byte
	binary.LittleEndian.PutUint16(buf[:2], diskCacheSchemaVersion)
	binary.LittleEndian.PutUint64(buf[2:], uint64(int64(maxDepth))) // #nosec G115 -- bit pattern only
	return combineDigest(content, buf[:])
}
