package Sets

import "github.com/google/btree"

// BTreeSet keeps ints ordered in a google/btree.
type BTreeSet struct {
	t *btree.BTreeG[int]
}

// NewBTreeSet with the given node degree. degree<2 falls back to 32.
func NewBTreeSet(degree int) *BTreeSet {
	if degree < 2 {
		degree = 32
	}
	return &BTreeSet{btree.NewOrderedG[int](degree)}
}

func (u *BTreeSet) Put(e int) bool {
	_, replaced := u.t.ReplaceOrInsert(e)
	return !replaced
}

func (u *BTreeSet) Has(e int) bool {
	return u.t.Has(e)
}

func (u *BTreeSet) Remove(e int) bool {
	_, removed := u.t.Delete(e)
	return removed
}

func (u *BTreeSet) Size() uint {
	return uint(u.t.Len())
}

func (u *BTreeSet) Clear() {
	u.t.Clear(true)
}

// Range calls f on the elements in increasing order until f returns false.
func (u *BTreeSet) Range(f func(int) bool) {
	u.t.Ascend(f)
}
