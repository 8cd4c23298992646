package Trees

import (
	"github.com/g-m-twostay/go-genealogy/Records"
	"github.com/shivamMg/ppds/tree"
)

// Snapshot is a detached copy of a subtree: one record and its children in
// ascending id order. It is what a display surface renders; it satisfies
// tree.Node so ppds can draw it directly.
type Snapshot struct {
	Person Records.Person
	Kids   []*Snapshot
}

func (u *Snapshot) Data() interface{} {
	return u.Person.String()
}

func (u *Snapshot) Children() []tree.Node {
	ns := make([]tree.Node, len(u.Kids))
	for i, k := range u.Kids {
		ns[i] = k
	}
	return ns
}

// String draws the snapshot horizontally.
func (u *Snapshot) String() string {
	return tree.SprintHr(u)
}

// Snapshot [Genealogy.Snapshot]. Returns nil for an empty tree.
// Time: O(n)
func (u *Tree[S]) Snapshot() *Snapshot {
	if u.root == 0 {
		return nil
	}
	var path []*Snapshot
	u.walk(u.root, 0, 0, func(c, _ S, d int) step {
		s := &Snapshot{Person: u.nodes[c].v}
		if d > 0 {
			path[d-1].Kids = append(path[d-1].Kids, s)
		}
		path = append(path[:d], s)
		return descend
	})
	return path[0]
}
