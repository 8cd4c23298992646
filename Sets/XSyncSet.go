package Sets

import "github.com/puzpuzpuz/xsync/v3"

// XSyncSet keeps ints as the keys of an xsync.MapOf.
type XSyncSet struct {
	m *xsync.MapOf[int, struct{}]
}

func NewXSyncSet() *XSyncSet {
	return &XSyncSet{xsync.NewMapOf[int, struct{}]()}
}

func (u *XSyncSet) Put(e int) bool {
	_, loaded := u.m.LoadOrStore(e, struct{}{})
	return !loaded
}

func (u *XSyncSet) Has(e int) bool {
	_, in := u.m.Load(e)
	return in
}

func (u *XSyncSet) Remove(e int) bool {
	_, loaded := u.m.LoadAndDelete(e)
	return loaded
}

func (u *XSyncSet) Size() uint {
	return uint(u.m.Size())
}

func (u *XSyncSet) Clear() {
	u.m.Clear()
}

func (u *XSyncSet) Range(f func(int) bool) {
	u.m.Range(func(e int, _ struct{}) bool {
		return f(e)
	})
}
