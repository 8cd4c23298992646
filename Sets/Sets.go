package Sets

// Set of distinct elements. Trees use a Set[int] to remember which ids are
// live so duplicate checks don't need a full traversal.
// None of the implementations here are required to be safe for concurrent use
// through this interface.
type Set[E any] interface {
	//Put e in the set. Returns false if e was already there.
	Put(e E) bool
	//Has e in the set.
	Has(e E) bool
	//Remove e from the set. Returns false if e wasn't there.
	Remove(e E) bool
	//Size of the set.
	Size() uint
	//Clear every element.
	Clear()
}

// Ranger is a Set that can list its elements. Ordered sets list them in
// increasing order.
type Ranger[E any] interface {
	//Range calls f on every element until f returns false. The set mustn't be
	//modified during Range.
	Range(f func(E) bool)
}
