package Sets

import "github.com/alphadose/haxmap"

// HaxSet keeps ints as the keys of a haxmap.
type HaxSet struct {
	m *haxmap.Map[int, struct{}]
}

func NewHaxSet() *HaxSet {
	return &HaxSet{haxmap.New[int, struct{}]()}
}

func (u *HaxSet) Put(e int) bool {
	if _, in := u.m.Get(e); in {
		return false
	}
	u.m.Set(e, struct{}{})
	return true
}

func (u *HaxSet) Has(e int) bool {
	_, in := u.m.Get(e)
	return in
}

func (u *HaxSet) Remove(e int) bool {
	if _, in := u.m.Get(e); !in {
		return false
	}
	u.m.Del(e)
	return true
}

func (u *HaxSet) Size() uint {
	return uint(u.m.Len())
}

func (u *HaxSet) Clear() {
	u.m = haxmap.New[int, struct{}]()
}

func (u *HaxSet) Range(f func(int) bool) {
	u.m.ForEach(func(e int, _ struct{}) bool {
		return f(e)
	})
}
