package Sets

import "github.com/petar/GoLLRB/llrb"

// LLRBSet keeps ints in a left-leaning red-black tree.
type LLRBSet struct {
	t *llrb.LLRB
}

func NewLLRBSet() *LLRBSet {
	return &LLRBSet{llrb.New()}
}

func (u *LLRBSet) Put(e int) bool {
	if u.t.Has(llrb.Int(e)) {
		return false
	}
	u.t.InsertNoReplace(llrb.Int(e))
	return true
}

func (u *LLRBSet) Has(e int) bool {
	return u.t.Has(llrb.Int(e))
}

func (u *LLRBSet) Remove(e int) bool {
	return u.t.Delete(llrb.Int(e)) != nil
}

func (u *LLRBSet) Size() uint {
	return uint(u.t.Len())
}

func (u *LLRBSet) Clear() {
	u.t = llrb.New()
}

// Range calls f on the elements in increasing order until f returns false.
func (u *LLRBSet) Range(f func(int) bool) {
	if u.t.Len() == 0 {
		return
	}
	u.t.AscendGreaterOrEqual(u.t.Min(), func(i llrb.Item) bool {
		return f(int(i.(llrb.Int)))
	})
}
