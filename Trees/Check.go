package Trees

import (
	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/go-genealogy/Sets"
)

// Check verifies every invariant of the tree and returns the first violation found:
// the nil slot is untouched, the root has no siblings, ids are unique, every
// child list is strictly increasing by id, every slot is either reachable from
// the root exactly once or on the free list, and the index (if any) holds
// exactly the live ids. Indexes that are Sets.Ranger are also listed, so ids
// the tree doesn't hold are caught as well.
// Time: O(arena size); Space: O(arena size)
func (u *Tree[S]) Check() error {
	if len(u.nodes) == 0 || u.nodes[0] != (node[S]{}) {
		return errors.AssertionFailedf("nil slot is in use")
	}
	if u.nodes[u.root].sibling != 0 {
		return errors.AssertionFailedf("root %d has a sibling", u.id(u.root))
	}
	seen := make(map[int]S)
	visited := make([]bool, len(u.nodes))
	live := 0
	for st := []S{u.root}; len(st) > 0; {
		i := st[len(st)-1]
		st = st[:len(st)-1]
		if i == 0 {
			continue
		}
		if int(i) >= len(u.nodes) {
			return errors.AssertionFailedf("link to slot %d outside the arena", i)
		}
		if visited[i] {
			return errors.AssertionFailedf("slot %d is reachable twice", i)
		}
		visited[i] = true
		live++
		id := u.id(i)
		if j, in := seen[id]; in {
			return errors.AssertionFailedf("id %d is held by slots %d and %d", id, j, i)
		}
		seen[id] = i
		if sib := u.nodes[i].sibling; sib != 0 && int(sib) < len(u.nodes) && u.id(sib) <= id {
			return errors.AssertionFailedf("sibling %d follows %d", u.id(sib), id)
		}
		st = append(st, u.nodes[i].sibling, u.nodes[i].child)
	}
	free := 0
	for f := u.free; f != 0; f = u.nodes[f].sibling {
		if int(f) >= len(u.nodes) || visited[f] {
			return errors.AssertionFailedf("free list reaches slot %d twice or outside the arena", f)
		}
		visited[f] = true
		free++
	}
	if live+free != len(u.nodes)-1 {
		return errors.AssertionFailedf("%d live and %d free slots, arena has %d", live, free, len(u.nodes)-1)
	}
	if u.idx != nil {
		if int(u.idx.Size()) != live {
			return errors.AssertionFailedf("index holds %d ids, tree has %d", u.idx.Size(), live)
		}
		if r, ok := u.idx.(Sets.Ranger[int]); ok {
			var extra error
			r.Range(func(id int) bool {
				if _, in := seen[id]; !in {
					extra = errors.AssertionFailedf("index holds id %d that isn't in the tree", id)
				}
				return extra == nil
			})
			if extra != nil {
				return extra
			}
		}
		for id := range seen {
			if !u.idx.Has(id) {
				return errors.AssertionFailedf("index is missing id %d", id)
			}
		}
	}
	return nil
}

// Corrupt [Genealogy.Corrupt].
func (u *Tree[S]) Corrupt() bool {
	return u.Check() != nil
}
