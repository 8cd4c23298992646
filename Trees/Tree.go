package Trees

import (
	"github.com/g-m-twostay/go-genealogy/Records"
	"github.com/g-m-twostay/go-genealogy/Sets"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// Tree implements Genealogy on an arena of first-child/next-sibling nodes.
// S is the type of the arena indexes; it bounds the number of nodes the tree
// can ever hold at once to the max value of S. Generally, you should let S be a
// wide upperbound for the size of the tree; running out panics with OverflowError.
// Freed slots are recycled through a free list, so the arena only grows to the
// largest size the tree ever had. Create trees with New.
type Tree[S constraints.Unsigned] struct {
	base[S]
}

// New empty tree with room for hint nodes before the arena grows.
// index is optional. When it's nil, duplicate checks walk the whole tree; otherwise
// the tree takes ownership of index, clears it, and keeps it equal to the set
// of live ids.
func New[S constraints.Unsigned](hint S, index Sets.Set[int]) *Tree[S] {
	if index != nil {
		index.Clear()
	}
	return &Tree[S]{base[S]{nodes: make([]node[S], 1, int(hint)+1), idx: index}}
}

// Change lists the fields Update should overwrite. nil fields are left alone.
type Change struct {
	Name    *string
	ID, Age *int
}

func (c Change) SetName(name string) Change {
	c.Name = &name
	return c
}

func (c Change) SetID(id int) Change {
	c.ID = &id
	return c
}

func (c Change) SetAge(age int) Change {
	c.Age = &age
	return c
}

// Insert [Genealogy.Insert].
// Time: O(n)
func (u *Tree[S]) Insert(p Records.Person, parentID int) (Status, error) {
	log := Log.WithFields(logrus.Fields{"op": "insert", "id": p.ID, "parent": parentID})
	if !p.Valid() {
		log.WithField("age", p.Age).Debug("rejected")
		return fail("insert", p.ID, InvalidAge)
	}
	if u.root == 0 {
		u.root = u.alloc(p)
		u.track(p.ID)
		log.Debug("became root")
		return BecameRoot, nil
	}
	if u.has(p.ID) {
		log.Debug("duplicate id")
		return fail("insert", p.ID, DuplicateID)
	}
	par, _, _, ok := u.find(parentID)
	if !ok {
		log.Debug("parent not found")
		return fail("insert", parentID, ParentNotFound)
	}
	n := u.alloc(p)
	u.insertSorted(&u.nodes[par].child, n)
	u.track(p.ID)
	log.Debug("inserted")
	return Inserted, nil
}

// track a newly live id in the index.
func (u *Tree[S]) track(id int) {
	if u.idx != nil {
		u.idx.Put(id)
	}
}

// Delete [Genealogy.Delete].
// The successor is the child with the strictly greatest age; on equal ages the
// child with the smaller id wins. The successor's children become the ordered
// merge of its own children and the deleted node's other children, and the
// successor is re-sorted into the deleted node's place.
// Time: O(n)
func (u *Tree[S]) Delete(id int) (Status, error) {
	log := Log.WithFields(logrus.Fields{"op": "delete", "id": id})
	if u.root == 0 {
		log.Debug("tree empty")
		return fail("delete", id, EmptyTree)
	}
	t, par, _, ok := u.find(id)
	if !ok {
		log.Debug("not found")
		return fail("delete", id, NotFound)
	}
	if u.nodes[t].child == 0 {
		if t == u.root {
			u.root = 0
		} else {
			u.unlink(&u.nodes[par].child, t)
		}
		u.release(t)
		log.Debug("deleted leaf")
		return Deleted, nil
	}

	succ := u.nodes[t].child
	for c := u.nodes[succ].sibling; c != 0; c = u.nodes[c].sibling {
		if u.nodes[c].v.Age > u.nodes[succ].v.Age {
			succ = c
		}
	}
	u.unlink(&u.nodes[t].child, succ)
	u.nodes[succ].child = u.merge(u.nodes[t].child, u.nodes[succ].child)
	u.nodes[t].child = 0
	if t == u.root {
		u.root = succ
	} else {
		u.unlink(&u.nodes[par].child, t)
		u.insertSorted(&u.nodes[par].child, succ)
	}
	u.release(t)
	log.WithField("successor", u.id(succ)).Debug("deleted and promoted")
	return Deleted, nil
}

// Update [Genealogy.Update].
// Checks happen before any field is written, so a failed Update changes nothing.
// Time: O(n)
func (u *Tree[S]) Update(id int, c Change) (Status, error) {
	log := Log.WithFields(logrus.Fields{"op": "update", "id": id})
	t, par, _, ok := u.find(id)
	if !ok {
		log.Debug("not found")
		return fail("update", id, NotFound)
	}
	if c.Age != nil && *c.Age < 0 {
		log.WithField("age", *c.Age).Debug("rejected")
		return fail("update", id, InvalidAge)
	}
	if c.ID != nil && *c.ID != id {
		if u.has(*c.ID) {
			log.WithField("new_id", *c.ID).Debug("duplicate id")
			return fail("update", *c.ID, DuplicateID)
		}
		if t != u.root {
			u.unlink(&u.nodes[par].child, t)
			u.nodes[t].v.ID = *c.ID
			u.insertSorted(&u.nodes[par].child, t)
		} else {
			u.nodes[t].v.ID = *c.ID
		}
		if u.idx != nil {
			u.idx.Remove(id)
			u.idx.Put(*c.ID)
		}
		log = log.WithField("new_id", *c.ID)
	}
	if c.Name != nil {
		u.nodes[t].v.Name = *c.Name
	}
	if c.Age != nil {
		u.nodes[t].v.Age = *c.Age
	}
	log.Debug("updated")
	return Updated, nil
}

// DeleteLevel [Genealogy.DeleteLevel].
// Level 0 clears the tree. Otherwise every node at level n-1 loses its whole
// child list; nodes elsewhere are untouched.
// Time: O(n)
func (u *Tree[S]) DeleteLevel(n int) (Status, error) {
	log := Log.WithFields(logrus.Fields{"op": "delete_level", "level": n})
	if u.root == 0 {
		log.Debug("tree empty")
		return fail("delete level", n, EmptyTree)
	}
	if n < 0 {
		log.Debug("negative level")
		return fail("delete level", n, InvalidLevel)
	}
	if n == 0 {
		u.reset()
		log.Debug("cleared")
		return Deleted, nil
	}
	parents := u.level(n - 1)
	pruned := 0
	for _, p := range parents {
		if kid := u.nodes[p].child; kid != 0 {
			u.nodes[p].child = 0
			u.releaseChain(kid)
			pruned++
		}
	}
	if pruned == 0 {
		log.Debug("nothing at level")
		return fail("delete level", n, InvalidLevel)
	}
	log.WithField("parents", pruned).Debug("deleted level")
	return Deleted, nil
}

// Clear [Genealogy.Clear].
// Time: O(arena size)
func (u *Tree[S]) Clear() {
	u.reset()
	Log.WithField("op", "clear").Debug("cleared")
}
