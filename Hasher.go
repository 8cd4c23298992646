package Go_Genealogy

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher is a seed for xxhash. The receivers are thread-safe.
type Hasher uint64

// HashUint64 hashes v together with the seed.
func (u Hasher) HashUint64(v uint64) uint {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], uint64(u))
	binary.LittleEndian.PutUint64(b[8:], v)
	return uint(xxhash.Sum64(b[:]))
}
