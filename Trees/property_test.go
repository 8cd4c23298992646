package Trees

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/g-m-twostay/go-genealogy/Records"
	"github.com/google/go-cmp/cmp"
)

const (
	opCount = 4000
	idRange = 300
)

// family of random people; ids are drawn from a small range so that duplicates,
// misses and deep promotions all happen often.
type people struct {
	rg *rand.Rand
	fk *gofakeit.Faker
}

func newPeople(seed int64) people {
	return people{rand.New(rand.NewSource(seed)), gofakeit.New(seed)}
}

func (u people) person() Records.Person {
	return Records.New(u.fk.Name(), u.rg.Intn(idRange), u.fk.Number(0, 99))
}

// expectedPromotion computes, from the outside, which child should replace id
// and what its children should be afterwards.
func expectedPromotion(tree *Tree[uint32], id int) (succ int, kids []int) {
	children := tree.ChildrenOf(id)
	best := children[0]
	for _, c := range children[1:] {
		if c.Age > best.Age {
			best = c
		}
	}
	for _, c := range children {
		if c.ID != best.ID {
			kids = append(kids, c.ID)
		}
	}
	kids = append(kids, Records.IDs(tree.ChildrenOf(best.ID))...)
	slices.Sort(kids)
	return best.ID, kids
}

func TestTree_Random(t *testing.T) {
	for name, mk := range indexes {
		t.Run(name, func(t *testing.T) {
			ps := newPeople(int64(len(name)))
			tree := New[uint32](16, mk())
			content := make(map[int]struct{})
			sync := func() {
				clear(content)
				if r, ok := tree.Root(); ok {
					content[r.ID] = struct{}{}
					for _, p := range tree.DescendantsOf(r.ID) {
						content[p.ID] = struct{}{}
					}
				}
			}
			for i := range opCount {
				switch op := ps.rg.Intn(20); {
				case op < 10:
					p := ps.person()
					parent := ps.rg.Intn(idRange)
					_, had := content[p.ID]
					_, parentIn := content[parent]
					s, _ := tree.Insert(p, parent)
					switch {
					case len(content) == 0:
						if s != BecameRoot {
							t.Errorf("op %d: insert into empty tree is %v", i, s)
						}
						content[p.ID] = struct{}{}
					case had:
						if s != DuplicateID {
							t.Errorf("op %d: duplicate insert of %d is %v", i, p.ID, s)
						}
					case !parentIn:
						if s != ParentNotFound {
							t.Errorf("op %d: insert under missing %d is %v", i, parent, s)
						}
					default:
						if s != Inserted {
							t.Errorf("op %d: insert of %d is %v", i, p.ID, s)
						}
						content[p.ID] = struct{}{}
					}
				case op < 16:
					id := ps.rg.Intn(idRange)
					_, had := content[id]
					var succ int
					var kids []int
					par, hasPar := tree.ParentOf(id)
					promote := had && len(tree.ChildrenOf(id)) > 0
					if promote {
						succ, kids = expectedPromotion(tree, id)
					}
					s, _ := tree.Delete(id)
					if had != (s == Deleted) {
						t.Errorf("op %d: delete of %d is %v, present %v", i, id, s, had)
					}
					delete(content, id)
					if promote {
						if got := Records.IDs(tree.ChildrenOf(succ)); !slices.Equal(got, kids) {
							t.Errorf("op %d: successor %d has children %v, want %v", i, succ, got, kids)
						}
						if p, ok := tree.ParentOf(succ); ok != hasPar || (ok && p.ID != par.ID) {
							t.Errorf("op %d: successor %d hangs off %v, want %v", i, succ, p, par)
						}
					}
				case op < 19:
					id := ps.rg.Intn(idRange)
					c := Change{}.SetName(ps.fk.FirstName())
					if ps.rg.Intn(2) == 0 {
						c = c.SetID(ps.rg.Intn(idRange))
					}
					if ps.rg.Intn(2) == 0 {
						c = c.SetAge(ps.fk.Number(0, 99))
					}
					s, _ := tree.Update(id, c)
					if _, had := content[id]; !had {
						if s != NotFound {
							t.Errorf("op %d: update of missing %d is %v", i, id, s)
						}
						break
					}
					if c.ID != nil && *c.ID != id {
						if _, taken := content[*c.ID]; taken {
							if s != DuplicateID {
								t.Errorf("op %d: rekey onto taken %d is %v", i, *c.ID, s)
							}
							break
						}
						delete(content, id)
						content[*c.ID] = struct{}{}
					}
					if s != Updated {
						t.Errorf("op %d: update of %d is %v", i, id, s)
					}
				default:
					// only the deepest level, so trees stay deep
					n := tree.Height()
					s, _ := tree.DeleteLevel(n)
					if n > 0 && s != Deleted {
						t.Errorf("op %d: delete level %d is %v", i, n, s)
					}
					sync()
				}
				if err := tree.Check(); err != nil {
					t.Fatalf("op %d: %v", i, err)
				}
				if tree.Len() != len(content) {
					t.Errorf("op %d: tree size is %d, want %d", i, tree.Len(), len(content))
				}
			}
			for id := range idRange {
				_, in := content[id]
				if tree.Has(id) != in {
					t.Errorf("has %d is %v, want %v", id, tree.Has(id), in)
				}
			}
		})
	}
}

// randomTree grows a tree of n people with random parents.
func randomTree(ps people, n int) *Tree[uint32] {
	tree := New[uint32](0, nil)
	var live []int
	for len(live) < n {
		p := ps.person()
		p.ID = ps.rg.Intn(n * 10)
		parent := -1
		if len(live) > 0 {
			parent = live[ps.rg.Intn(len(live))]
		}
		if s, _ := tree.Insert(p, parent); s.OK() {
			live = append(live, p.ID)
		}
	}
	return tree
}

func TestTree_DuplicateInsertKeepsSnapshot(t *testing.T) {
	ps := newPeople(3)
	tree := randomTree(ps, 200)
	before := tree.Snapshot()
	all := append([]Records.Person{before.Person}, tree.DescendantsOf(before.Person.ID)...)
	for range 100 {
		dup := all[ps.rg.Intn(len(all))]
		dup.Name = ps.fk.Name()
		parent := all[ps.rg.Intn(len(all))].ID
		if s, _ := tree.Insert(dup, parent); s != DuplicateID {
			t.Fatalf("insert of taken id %d is %v", dup.ID, s)
		}
	}
	if d := cmp.Diff(before, tree.Snapshot()); d != "" {
		t.Errorf("rejected inserts changed the tree (-before +after):\n%s", d)
	}
}

func TestTree_InsertDeleteLeafRoundTrip(t *testing.T) {
	ps := newPeople(4)
	tree := randomTree(ps, 150)
	all := append([]Records.Person{{ID: tree.Snapshot().Person.ID}}, tree.DescendantsOf(tree.Snapshot().Person.ID)...)
	for range 200 {
		before := tree.Snapshot()
		p := ps.person()
		p.ID = 10000 + ps.rg.Intn(1000)
		parent := all[ps.rg.Intn(len(all))].ID
		if s, err := tree.Insert(p, parent); s != Inserted {
			t.Fatalf("insert %v under %d: %v", p, parent, err)
		}
		if s, err := tree.Delete(p.ID); s != Deleted {
			t.Fatalf("delete %d: %v", p.ID, err)
		}
		if d := cmp.Diff(before, tree.Snapshot()); d != "" {
			t.Fatalf("insert then delete of %d changed the tree:\n%s", p.ID, d)
		}
	}
}

func TestTree_LevelConsistency(t *testing.T) {
	ps := newPeople(5)
	for range 20 {
		tree := randomTree(ps, 1+ps.rg.Intn(120))
		root, _ := tree.Root()
		depths := map[int]int{0: 1}
		maxLevel := 0
		for _, p := range tree.DescendantsOf(root.ID) {
			l := tree.LevelOf(p.ID)
			depths[l]++
			maxLevel = max(maxLevel, l)
		}
		if tree.Height() != maxLevel {
			t.Errorf("height is %d, want %d", tree.Height(), maxLevel)
		}
		byLevel := tree.ByLevel()
		if len(byLevel) != tree.Levels() {
			t.Errorf("%d levels listed, want %d", len(byLevel), tree.Levels())
		}
		for n := 0; n <= maxLevel+1; n++ {
			at := tree.AtLevel(n)
			if len(at) != depths[n] {
				t.Errorf("level %d has %d people, want %d", n, len(at), depths[n])
			}
			if n < len(byLevel) && !slices.Equal(Records.IDs(at), Records.IDs(byLevel[n])) {
				t.Errorf("level %d differs: %v and %v", n, Records.IDs(at), Records.IDs(byLevel[n]))
			}
		}
	}
}

const (
	churnOps = 20000
	churnIDs = 2000
)

// TestTree_Churn interleaves many inserts and deletes over a wide id range so
// hash indexes go through repeated growth and deletion, and checks after every
// step that the index still agrees with the tree.
func TestTree_Churn(t *testing.T) {
	for name, mk := range indexes {
		t.Run(name, func(t *testing.T) {
			rg := rand.New(rand.NewSource(int64(len(name)) + 11))
			tree := New[uint32](4, mk())
			content := make(map[int]struct{})
			live := []int{}
			for i := range churnOps {
				id := rg.Intn(churnIDs)
				_, had := content[id]
				if rg.Intn(2) == 0 {
					parent := -1
					if len(live) > 0 {
						parent = live[rg.Intn(len(live))]
					}
					s, err := tree.Insert(Records.New("p", id, rg.Intn(100)), parent)
					switch {
					case had && s != DuplicateID:
						t.Fatalf("op %d: insert of live id %d is %v: %v", i, id, s, err)
					case !had && !s.OK():
						t.Fatalf("op %d: insert of %d is %v: %v", i, id, s, err)
					case !had:
						content[id] = struct{}{}
						live = append(live, id)
					}
				} else {
					if s, err := tree.Delete(id); had != (s == Deleted) {
						t.Fatalf("op %d: delete of %d is %v, present %v: %v", i, id, s, had, err)
					}
					if had {
						delete(content, id)
						k := slices.Index(live, id)
						live[k] = live[len(live)-1]
						live = live[:len(live)-1]
					}
				}
				if err := tree.Check(); err != nil {
					t.Fatalf("op %d: %v", i, err)
				}
			}
			if tree.Len() != len(content) {
				t.Errorf("tree size is %d, want %d", tree.Len(), len(content))
			}
		})
	}
}
