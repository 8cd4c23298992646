package Records

import "testing"

func TestPerson(t *testing.T) {
	p := New("Oscar", 50, 60)
	if !p.Valid() {
		t.Errorf("%v should be valid", p)
	}
	if s := p.String(); s != "Oscar (id=50, age=60)" {
		t.Errorf("String is %q", s)
	}
	if New("x", 1, -1).Valid() {
		t.Error("negative age accepted")
	}
	ids := IDs([]Person{New("a", 3, 1), New("b", 1, 1)})
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 1 {
		t.Errorf("IDs is %v", ids)
	}
}
