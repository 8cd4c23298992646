package Sets

import "github.com/emirpasic/gods/sets/treeset"

// TreeSet keeps ints in a gods red-black tree set.
type TreeSet struct {
	s *treeset.Set
}

func NewTreeSet() *TreeSet {
	return &TreeSet{treeset.NewWithIntComparator()}
}

func (u *TreeSet) Put(e int) bool {
	if u.s.Contains(e) {
		return false
	}
	u.s.Add(e)
	return true
}

func (u *TreeSet) Has(e int) bool {
	return u.s.Contains(e)
}

func (u *TreeSet) Remove(e int) bool {
	if !u.s.Contains(e) {
		return false
	}
	u.s.Remove(e)
	return true
}

func (u *TreeSet) Size() uint {
	return uint(u.s.Size())
}

func (u *TreeSet) Clear() {
	u.s.Clear()
}

// Range calls f on the elements in increasing order until f returns false.
func (u *TreeSet) Range(f func(int) bool) {
	for it := u.s.Iterator(); it.Next(); {
		if !f(it.Value().(int)) {
			return
		}
	}
}
