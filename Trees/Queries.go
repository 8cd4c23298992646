package Trees

import (
	"slices"

	"github.com/g-m-twostay/go-genealogy/Records"
)

// Get the record with the given id.
// Time: O(n)
func (u *Tree[S]) Get(id int) (Records.Person, bool) {
	if t, _, _, ok := u.find(id); ok {
		return u.nodes[t].v, true
	}
	return Records.Person{}, false
}

// Has [Genealogy.Has]. O(1) expected with a hash index, O(n) without one.
func (u *Tree[S]) Has(id int) bool {
	return u.has(id)
}

func (u *Tree[S]) Root() (Records.Person, bool) {
	return u.nodes[u.root].v, u.root != 0
}

// Len [Genealogy.Len].
// Time: O(n)
func (u *Tree[S]) Len() (n int) {
	u.walk(u.root, 0, 0, func(S, S, int) step {
		n++
		return descend
	})
	return
}

// ParentOf id. Nothing for the root or a missing id.
// Time: O(n)
func (u *Tree[S]) ParentOf(id int) (Records.Person, bool) {
	if _, par, _, ok := u.find(id); ok && par != 0 {
		return u.nodes[par].v, true
	}
	return Records.Person{}, false
}

// ChildrenOf id in ascending id order.
// Time: O(n)
func (u *Tree[S]) ChildrenOf(id int) []Records.Person {
	if t, _, _, ok := u.find(id); ok {
		return u.collect(u.nodes[t].child, 0)
	}
	return []Records.Person{}
}

// SiblingsOf id in ascending id order, without id.
// Time: O(n)
func (u *Tree[S]) SiblingsOf(id int) []Records.Person {
	if t, par, _, ok := u.find(id); ok && par != 0 {
		return u.collect(u.nodes[par].child, t)
	}
	return []Records.Person{}
}

// AncestorsOf [Genealogy.AncestorsOf].
// A single preorder walk keeps the path from the root; when a node at depth d
// is visited, path[d-1] is its parent.
// Time: O(n); Space: O(depth)
func (u *Tree[S]) AncestorsOf(id int) []Records.Person {
	var path []S
	found := false
	u.walk(u.root, 0, 0, func(c, _ S, d int) step {
		path = append(path[:d], c)
		if u.id(c) == id {
			found = true
			return halt
		}
		return descend
	})
	if !found {
		return []Records.Person{}
	}
	ps := make([]Records.Person, 0, len(path)-1)
	for i := len(path) - 2; i >= 0; i-- {
		ps = append(ps, u.nodes[path[i]].v)
	}
	return ps
}

// DescendantsOf [Genealogy.DescendantsOf].
// Time: O(n)
func (u *Tree[S]) DescendantsOf(id int) []Records.Person {
	ps := []Records.Person{}
	if t, _, d, ok := u.find(id); ok {
		u.walk(u.nodes[t].child, t, d+1, func(c, _ S, _ int) step {
			ps = append(ps, u.nodes[c].v)
			return descend
		})
	}
	return ps
}

// MostChildren [Genealogy.MostChildren].
// Time: O(n)
func (u *Tree[S]) MostChildren() (Records.Person, bool) {
	best, most := S(0), -1
	u.walk(u.root, 0, 0, func(c, _ S, _ int) step {
		if k := u.count(u.nodes[c].child); k > most {
			best, most = c, k
		}
		return descend
	})
	return u.nodes[best].v, best != 0
}

// Deepest [Genealogy.Deepest].
// Time: O(n)
func (u *Tree[S]) Deepest() (Records.Person, int, bool) {
	best, deepest := S(0), -1
	u.walk(u.root, 0, 0, func(c, _ S, d int) step {
		if d > deepest {
			best, deepest = c, d
		}
		return descend
	})
	return u.nodes[best].v, deepest, best != 0
}

// Height [Genealogy.Height].
// Time: O(n)
func (u *Tree[S]) Height() int {
	_, h, _ := u.Deepest()
	return h
}

func (u *Tree[S]) Levels() int {
	return u.Height() + 1
}

// LevelOf [Genealogy.LevelOf].
// Time: O(n)
func (u *Tree[S]) LevelOf(id int) int {
	if _, _, d, ok := u.find(id); ok {
		return d
	}
	return -1
}

// AtLevel [Genealogy.AtLevel]. Empty for a negative level, a level below the
// deepest node, or an empty tree.
// Time: O(nodes above level n+1)
func (u *Tree[S]) AtLevel(n int) []Records.Person {
	is := u.level(n)
	ps := make([]Records.Person, len(is))
	for i, c := range is {
		ps[i] = u.nodes[c].v
	}
	return ps
}

// ByLevel [Genealogy.ByLevel].
// Time: O(n)
func (u *Tree[S]) ByLevel() [][]Records.Person {
	var ls [][]Records.Person
	u.walk(u.root, 0, 0, func(c, _ S, d int) step {
		if d == len(ls) {
			ls = append(ls, nil)
		}
		ls[d] = append(ls[d], u.nodes[c].v)
		return descend
	})
	return slices.Clip(ls)
}
