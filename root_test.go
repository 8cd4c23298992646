package Go_Genealogy

import "testing"

func TestBitArray(t *testing.T) {
	b := NewBitArray(130)
	if b.Len() < 130 {
		t.Fatalf("len is %d, want at least 130", b.Len())
	}
	for i := range 130 {
		if b.Get(i) {
			t.Fatalf("fresh array has bit %d up", i)
		}
	}
	b.Set(129)
	b.Set(70)
	if !b.Get(129) || !b.Get(70) || b.Get(71) {
		t.Error("wrong get after set")
	}
	b.Clr(70)
	if b.Get(70) || !b.Get(129) {
		t.Error("clr touched the wrong bit")
	}
	b.Reset()
	if b.Get(129) {
		t.Error("reset left a bit up")
	}
}

func TestHasher(t *testing.T) {
	a, b := Hasher(1), Hasher(2)
	if a.HashUint64(7) != a.HashUint64(7) {
		t.Error("hash isn't deterministic")
	}
	if a.HashUint64(7) == b.HashUint64(7) {
		t.Error("seed doesn't change the hash")
	}
}
