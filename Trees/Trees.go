package Trees

import "github.com/g-m-twostay/go-genealogy/Records"

// Genealogy is a single rooted tree of Records.Person keyed by Person.ID.
// Every child list is kept in strictly increasing id order and ids are unique
// across the whole tree.
// Mutations return a Status together with an error: on success the error is nil
// and Status tells which success it was; on failure the error wraps the
// sentinel of the failure Status and the tree is unchanged.
// Queries never fail. They return copies of the records and never expose nodes;
// "nothing" is an empty slice or a false second return value.
// Methods are implemented iteratively unless noted, so deep trees don't grow
// the call stack. A Genealogy isn't safe for concurrent use.
type Genealogy interface {
	//Insert p as a child of parentID. p becomes the root of an empty tree
	//regardless of parentID.
	Insert(p Records.Person, parentID int) (Status, error)
	//Delete id. If id has children, its eldest child takes its place and
	//inherits its other children.
	Delete(id int) (Status, error)
	//Update the fields of id that c carries. A new id re-sorts the node among
	//its siblings.
	Update(id int, c Change) (Status, error)
	//DeleteLevel removes every node at depth n together with its descendants.
	DeleteLevel(n int) (Status, error)
	//Clear the tree.
	Clear()

	Get(id int) (Records.Person, bool)
	Has(id int) bool
	Root() (Records.Person, bool)
	//Len counts the nodes by walking the tree.
	Len() int
	ParentOf(id int) (Records.Person, bool)
	ChildrenOf(id int) []Records.Person
	SiblingsOf(id int) []Records.Person
	//AncestorsOf id, nearest first.
	AncestorsOf(id int) []Records.Person
	//DescendantsOf id in preorder, without id itself.
	DescendantsOf(id int) []Records.Person
	//MostChildren returns the node with the most direct children, the first
	//in preorder on ties.
	MostChildren() (Records.Person, bool)
	//Deepest returns the deepest node and its level, the first in preorder on ties.
	Deepest() (Records.Person, int, bool)
	//Height in edges. -1 for an empty tree.
	Height() int
	//Levels is Height()+1.
	Levels() int
	//LevelOf id. -1 when id isn't in the tree.
	LevelOf(id int) int
	//AtLevel n, left to right.
	AtLevel(n int) []Records.Person
	//ByLevel returns every level, left to right.
	ByLevel() [][]Records.Person
	//Snapshot copies the whole tree for display.
	Snapshot() *Snapshot
	//Corrupt returns whether the tree breaks any of its invariants.
	Corrupt() bool
}

var _ Genealogy = (*Tree[uint32])(nil)
