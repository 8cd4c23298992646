package Queues

import (
	"errors"
	"testing"
)

func TestArrayQueue(t *testing.T) {
	for _, initCap := range []uint{0, 1, 4} {
		q := MakeArrayQueue[int](initCap)
		if _, err := q.Pop(); !errors.As(err, new(*EmptyQueueError)) {
			t.Errorf("pop on empty queue returned %v", err)
		}
		for round := 0; round < 50; round++ {
			for i := 0; i < round%7+1; i++ {
				q.Push(round*10 + i)
			}
			for i := 0; i < round%5; i++ {
				if q.Empty() {
					break
				}
				want := q.Peek()
				v, err := q.Pop()
				if err != nil || v != want {
					t.Fatalf("pop returned %d, %v; peek said %d", v, err, want)
				}
			}
			if round%11 == 0 {
				q.Shrink()
			}
		}
		var last = -1
		for !q.Empty() {
			v, _ := q.Pop()
			if v <= last {
				t.Fatalf("cap %d: out of order %d after %d", initCap, v, last)
			}
			last = v
		}
		if q.Size() != 0 {
			t.Errorf("size is %d, want 0", q.Size())
		}
		q.Push(3)
		q.Clear()
		if !q.Empty() {
			t.Error("clear left items")
		}
	}
}
