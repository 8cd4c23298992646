package Trees

import (
	"github.com/g-m-twostay/go-genealogy/Records"
	"golang.org/x/exp/constraints"
)

// A node in the Tree.
// child is the first of the node's children; sibling is the next child of the
// node's parent. Both are arena indexes, 0 meaning none. Children are chained
// through sibling in strictly increasing id order.
// While a node is on the free list, sibling is the next free index.
type node[S constraints.Unsigned] struct {
	v              Records.Person
	child, sibling S
}

func (u *base[S]) id(i S) int {
	return u.nodes[i].v.ID
}

// insertSorted links n into the list whose head is stored at *head, before the
// first node with a greater id.
// Time: O(list length); Space: O(1)
func (u *base[S]) insertSorted(head *S, n S) {
	id := u.id(n)
	for *head != 0 && u.id(*head) < id {
		head = &u.nodes[*head].sibling
	}
	u.nodes[n].sibling, *head = *head, n
}

// unlink n from the list whose head is stored at *head. n keeps its children.
// Returns false if n isn't in the list.
// Time: O(list length); Space: O(1)
func (u *base[S]) unlink(head *S, n S) bool {
	for ; *head != 0; head = &u.nodes[*head].sibling {
		if *head == n {
			*head = u.nodes[n].sibling
			u.nodes[n].sibling = 0
			return true
		}
	}
	return false
}

// merge two id ordered lists into one by relinking their nodes, and return the head.
// Time: O(len(a)+len(b)); Space: O(1)
func (u *base[S]) merge(a, b S) (head S) {
	tail := &head
	for a != 0 && b != 0 {
		if u.id(a) < u.id(b) {
			*tail = a
			tail = &u.nodes[a].sibling
			a = *tail
		} else {
			*tail = b
			tail = &u.nodes[b].sibling
			b = *tail
		}
	}
	if a != 0 {
		*tail = a
	} else {
		*tail = b
	}
	return
}

// count the nodes in the list starting at head.
func (u *base[S]) count(head S) (c int) {
	for ; head != 0; head = u.nodes[head].sibling {
		c++
	}
	return
}

// collect the persons in the list starting at head, skipping the node skip.
func (u *base[S]) collect(head, skip S) []Records.Person {
	ps := make([]Records.Person, 0, u.count(head))
	for ; head != 0; head = u.nodes[head].sibling {
		if head != skip {
			ps = append(ps, u.nodes[head].v)
		}
	}
	return ps
}
