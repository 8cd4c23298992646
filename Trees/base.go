package Trees

import (
	"fmt"

	"github.com/g-m-twostay/go-genealogy/Queues"
	"github.com/g-m-twostay/go-genealogy/Records"
	"github.com/g-m-twostay/go-genealogy/Sets"
	"golang.org/x/exp/constraints"
)

// base is the node arena shared by every operation.
// nodes[0] is the nil slot: it is never handed out and always stays the zero value.
// free is the beginning of the linked list that contains all the free indexes; node::sibling represents next.
// idx, when not nil, holds exactly the ids of the live nodes.
type base[S constraints.Unsigned] struct {
	nodes      []node[S]
	root, free S
	idx        Sets.Set[int]
	st         []frame[S] // scratch stack for walk; walk isn't reentrant.
}

// OverflowError is raised when the tree needs more slots than S can address.
type OverflowError struct {
	Slots int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("Trees: %d slots don't fit the index type", e.Slots)
}

// addFree index once.
func (u *base[S]) addFree(a S) {
	u.nodes[a] = node[S]{sibling: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.nodes[b].sibling
	return b
}

// alloc a detached node holding p. Holes are filled first before appending to the arena.
func (u *base[S]) alloc(p Records.Person) S {
	if i := u.popFree(); i != 0 {
		u.nodes[i] = node[S]{v: p}
		return i
	}
	i := S(len(u.nodes))
	if int(i) != len(u.nodes) {
		panic(OverflowError{len(u.nodes) + 1})
	}
	u.nodes = append(u.nodes, node[S]{v: p})
	return i
}

// release a single detached node.
func (u *base[S]) release(i S) {
	if u.idx != nil {
		u.idx.Remove(u.id(i))
	}
	u.addFree(i)
}

// releaseChain releases the list starting at head together with every subtree hanging off it.
// Time: O(nodes released); Space: O(depth)
func (u *base[S]) releaseChain(head S) {
	st := []S{head}
	for len(st) > 0 {
		i := st[len(st)-1]
		st = st[:len(st)-1]
		if i == 0 {
			continue
		}
		sib, kid := u.nodes[i].sibling, u.nodes[i].child
		u.release(i)
		st = append(st, sib, kid)
	}
}

// reset the arena to an empty tree without giving its memory back.
func (u *base[S]) reset() {
	clear(u.nodes[1:])
	u.nodes = u.nodes[:1]
	u.root, u.free = 0, 0
	if u.idx != nil {
		u.idx.Clear()
	}
}

// step tells walk how to continue after visiting a node.
type step byte

const (
	descend step = iota // visit the node's children next.
	prune               // skip the node's children.
	halt                // stop the walk.
)

type frame[S constraints.Unsigned] struct {
	cur, parent S
	depth       int
}

// walk visits, in preorder, the list starting at from (whose nodes are children
// of parent at the given depth) and every subtree hanging off it. f receives each
// node with its parent and depth. Nodes are read before f is called, so f may
// release the node it is given when it returns prune or halt.
// Time: O(nodes visited); Space: O(depth+fanout)
func (u *base[S]) walk(from, parent S, depth int, f func(cur, parent S, depth int) step) {
	st := append(u.st[:0], frame[S]{from, parent, depth})
	for len(st) > 0 {
		fr := st[len(st)-1]
		st = st[:len(st)-1]
		if fr.cur == 0 {
			continue
		}
		sib, kid := u.nodes[fr.cur].sibling, u.nodes[fr.cur].child
		s := f(fr.cur, fr.parent, fr.depth)
		if s == halt {
			break
		}
		st = append(st, frame[S]{sib, fr.parent, fr.depth})
		if s == descend {
			st = append(st, frame[S]{kid, fr.cur, fr.depth + 1})
		}
	}
	u.st = st[:0]
}

// find the node with the given id, with its parent and depth.
// Time: O(n); Space: O(depth)
func (u *base[S]) find(id int) (cur, parent S, depth int, ok bool) {
	u.walk(u.root, 0, 0, func(c, p S, d int) step {
		if u.id(c) == id {
			cur, parent, depth, ok = c, p, d, true
			return halt
		}
		return descend
	})
	return
}

// has reports whether id is live, through the index when there is one.
func (u *base[S]) has(id int) bool {
	if u.idx != nil {
		return u.idx.Has(id)
	}
	_, _, _, ok := u.find(id)
	return ok
}

// level returns the nodes at depth n from left to right, found breadth first.
// Time: O(nodes above depth n+1); Space: O(widest level)
func (u *base[S]) level(n int) []S {
	if u.root == 0 || n < 0 {
		return nil
	}
	q := Queues.MakeArrayQueue[S](8)
	q.Push(u.root)
	for d := 0; d < n && !q.Empty(); d++ {
		for k := q.Size(); k > 0; k-- {
			c, _ := q.Pop()
			for ch := u.nodes[c].child; ch != 0; ch = u.nodes[ch].sibling {
				q.Push(ch)
			}
		}
	}
	out := make([]S, 0, q.Size())
	for !q.Empty() {
		c, _ := q.Pop()
		out = append(out, c)
	}
	return out
}
