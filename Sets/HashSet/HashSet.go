package HashSet

import (
	"math/bits"

	Go_Genealogy "github.com/g-m-twostay/go-genealogy"
	"golang.org/x/exp/constraints"
)

const (
	fail byte = iota
	added
	exist
)

// New HashSet of type E.
// h is the neighborhood size parameter in Hopscotch hashing, 16 is a good value. h must be in [1, 127].
// size is used to calculate the initial table size that should handle size elements without resizing.
func New[E constraints.Integer](h byte, size, seed uint) *HashSet[E] {
	bktLen := 1<<bits.Len(size) + uint(h)
	return &HashSet[E]{bkt: make([]bucket[E], bktLen), usedBkt: Go_Genealogy.NewBitArray(bktLen), h: h, hashes: make([]uint, bktLen), Seed: Go_Genealogy.Hasher(seed)}
}

// HashSet of integers using hopscotch hashing. Every element lives within h buckets of its home bucket,
// and the elements sharing a home are chained through relative offsets.
type HashSet[E constraints.Integer] struct {
	bkt     []bucket[E]
	usedBkt Go_Genealogy.BitArray
	hashes  []uint
	Seed    Go_Genealogy.Hasher
	sz      uint
	h       byte
}

func (u *HashSet[E]) hash(e E) uint {
	return u.Seed.HashUint64(uint64(e))
}

func (u *HashSet[E]) mod(hash uint) int {
	return int(hash) & (len(u.bkt) - int(u.h) - 1)
}

func (u *HashSet[E]) expand() {
	newSize := uint((len(u.bkt)-int(u.h))<<1) + uint(u.h)
	M := HashSet[E]{bkt: make([]bucket[E], newSize), h: u.h, usedBkt: Go_Genealogy.NewBitArray(newSize), hashes: make([]uint, newSize), Seed: u.Seed}
	for i, e := range u.bkt {
		if u.usedBkt.Get(i) {
			for M.tryPut(e.element, u.hashes[i]) == fail {
				M.expand()
			}
		}
	}

	u.bkt = M.bkt
	u.usedBkt = M.usedBkt
	u.hashes = M.hashes
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return u.sz
}

// Clear the set without shrinking the table.
func (u *HashSet[E]) Clear() {
	clear(u.bkt)
	clear(u.hashes)
	u.usedBkt.Reset()
	u.sz = 0
}

// Remove e from the set. Returns true if the removal is successful.
func (u *HashSet[E]) Remove(e E) bool {
	if i0 := u.mod(u.hash(e)); u.bkt[i0].hashed() {
		prev := &u.bkt[i0].dHash
		for i1 := i0 + u.bkt[i0].deltaHash(); ; i1 = i1 + u.bkt[i1].deltaLink() {
			if u.usedBkt.Get(i1) && u.bkt[i1].element == e {
				u.usedBkt.Clr(i1)
				u.sz--
				if u.bkt[i1].linked() {
					*prev = offset(u.bkt[i1].deltaLink() + i1 - i0)
				} else {
					*prev = 0
				}
				u.bkt[i1].clrLink()
				return true
			}
			if !u.bkt[i1].linked() {
				break
			}
			i0 = i1
			prev = &u.bkt[i0].dLink
		}
	}
	return false
}

// Has e in the set. Returns true if e is present in the set.
func (u *HashSet[E]) Has(e E) bool {
	if i0 := u.mod(u.hash(e)); u.bkt[i0].hashed() {
		for i1 := i0 + u.bkt[i0].deltaHash(); ; i1 = i1 + u.bkt[i1].deltaLink() {
			if u.usedBkt.Get(i1) && u.bkt[i1].element == e {
				return true
			}
			if !u.bkt[i1].linked() {
				break
			}
		}
	}
	return false
}

// fillEmpty puts e at i_free and makes it the head of the chain of home i_hash.
func (u *HashSet[E]) fillEmpty(i_hash int, i_free int, e E) {
	u.bkt[i_free].element = e
	u.sz++
	if u.bkt[i_hash].hashed() {
		u.bkt[i_free].useDeltaLink(i_hash + u.bkt[i_hash].deltaHash() - i_free)
	} else {
		u.bkt[i_free].clrLink()
	}
	u.bkt[i_hash].useDeltaHash(i_free - i_hash)
}

func (u *HashSet[E]) tryPut(e E, hash uint) byte {
	i_hash := u.mod(hash)
	if u.bkt[i_hash].hashed() {
		for i0 := i_hash + u.bkt[i_hash].deltaHash(); ; i0 = i0 + u.bkt[i0].deltaLink() {
			if u.usedBkt.Get(i0) && u.bkt[i0].element == e {
				return exist
			}
			if !u.bkt[i0].linked() {
				break
			}
		}
	}
	for i_free := i_hash; i_free < len(u.bkt); i_free++ {
		if !u.usedBkt.Get(i_free) {
		search:
			for i_free-i_hash >= int(u.h) {
				//move some element that is within h of both its home and i_free to i_free.
				for i := i_free - int(u.h) + 1; i < i_free; i++ {
					if i0 := i; u.bkt[i0].hashed() {
						prev := &u.bkt[i0].dHash
						for i1 := i0 + u.bkt[i0].deltaHash(); ; i1 = i1 + u.bkt[i1].deltaLink() {
							if i_free-int(u.h) < i1 && i1 < i_free {
								*prev = offset(i_free - i0)

								u.bkt[i_free].element = u.bkt[i1].element
								u.hashes[i_free] = u.hashes[i1]
								u.usedBkt.Set(i_free)

								if u.bkt[i1].linked() {
									u.bkt[i_free].useDeltaLink(u.bkt[i1].deltaLink() + i1 - i_free)
								} else {
									u.bkt[i_free].clrLink()
								}

								u.bkt[i1].clrLink()
								u.usedBkt.Clr(i1)
								i_free = i1
								continue search
							}
							if !u.bkt[i1].linked() {
								break
							}
							i0 = i1
							prev = &u.bkt[i0].dLink
						}
					}
				}
				return fail
			}
			u.usedBkt.Set(i_free)
			u.fillEmpty(i_hash, i_free, e)
			u.hashes[i_free] = hash
			return added
		}
	}
	return fail
}

// Put e into the set. Returns true if e wasn't in the set before.
func (u *HashSet[E]) Put(e E) bool {
	hash := u.hash(e)
	t := u.tryPut(e, hash)
	for t == fail {
		u.expand()
		t = u.tryPut(e, hash)
	}
	return t == added
}

// Range over elements and call f on them. Stops when f returns false.
// The set mustn't be modified during Range.
func (u *HashSet[E]) Range(f func(E) bool) {
	for i, b := range u.bkt {
		if u.usedBkt.Get(i) {
			if !f(b.element) {
				return
			}
		}
	}
}
