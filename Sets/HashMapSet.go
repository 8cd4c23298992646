package Sets

import "github.com/cornelk/hashmap"

// HashMapSet keeps ints as the keys of a cornelk/hashmap.
type HashMapSet struct {
	m *hashmap.Map[int, struct{}]
}

func NewHashMapSet() *HashMapSet {
	return &HashMapSet{hashmap.New[int, struct{}]()}
}

func (u *HashMapSet) Put(e int) bool {
	return u.m.Insert(e, struct{}{})
}

func (u *HashMapSet) Has(e int) bool {
	_, in := u.m.Get(e)
	return in
}

func (u *HashMapSet) Remove(e int) bool {
	return u.m.Del(e)
}

func (u *HashMapSet) Size() uint {
	return uint(u.m.Len())
}

func (u *HashMapSet) Clear() {
	u.m = hashmap.New[int, struct{}]()
}

func (u *HashMapSet) Range(f func(int) bool) {
	u.m.Range(func(e int, _ struct{}) bool {
		return f(e)
	})
}
