package sparse

import (
	"slices"
	"testing"
)

func TestSet(t *testing.T) {
	s := New(10)

	if s.Len() != 0 || s.Contains(0) {
		t.Fatal("new set should be empty")
	}

	s.Insert(5)
	s.Insert(5)
	s.Insert(2)
	s.Insert(9)
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	for _, v := range []int{2, 5, 9} {
		if !s.Contains(v) {
			t.Errorf("Contains(%d) = false", v)
		}
	}
	for _, v := range []int{-1, 0, 10, 100} {
		if s.Contains(v) {
			t.Errorf("Contains(%d) = true", v)
		}
	}

	got := s.AppendTo(nil)
	if !slices.Equal(got, []int{5, 2, 9}) {
		t.Errorf("AppendTo = %v, want insertion order [5 2 9]", got)
	}

	s.Clear()
	if s.Len() != 0 || s.Contains(2) {
		t.Error("set should be empty after Clear")
	}
}

// TestRefillAscending filters a filled set the way the wildcard matcher
// does and checks that survivors stay in ascending order across rounds.
func TestRefillAscending(t *testing.T) {
	s := Fill(20)
	if s.Len() != 20 {
		t.Fatalf("Len() = %d, want 20", s.Len())
	}

	var walk []int
	for _, keep := range []int{2, 3} {
		walk = s.AppendTo(walk[:0])
		s.Clear()
		for _, v := range walk {
			if v%keep == 0 {
				s.Insert(v)
			}
		}
	}

	got := s.AppendTo(nil)
	want := []int{0, 6, 12, 18}
	if !slices.Equal(got, want) {
		t.Errorf("survivors = %v, want %v", got, want)
	}
	for _, v := range []int{2, 3, 4, 9} {
		if s.Contains(v) {
			t.Errorf("Contains(%d) = true after filtering", v)
		}
	}
}

func TestInsertOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Insert(10) on capacity 10 did not panic")
		}
	}()
	New(10).Insert(10)
}
