package Records

import "fmt"

// Person is one record of the genealogy. ID is the id card number and the
// only thing that identifies a Person inside a tree; Name and Age are payload.
// Trees store Persons by value, so a Person handed out by a query is a copy
// and changing it never changes the tree.
type Person struct {
	Name string
	ID   int
	Age  int
}

func New(name string, id, age int) Person {
	return Person{Name: name, ID: id, Age: age}
}

// Valid reports whether the record can be stored. Ages are never negative.
func (u Person) Valid() bool {
	return u.Age >= 0
}

func (u Person) String() string {
	return fmt.Sprintf("%s (id=%d, age=%d)", u.Name, u.ID, u.Age)
}

// IDs of ps, in the same order.
func IDs(ps []Person) []int {
	ids := make([]int, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}
