package catalog

import (
	"testing"
)

func TestAllIsStableAndOrdered(t *testing.T) {
	first := All()
	second := All()
	if len(first) == 0 {
		t.Fatal("All() returned no steps")
	}
	if len(first) != len(second) {
		t.Fatalf("All() length changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("ordering changed between calls at position %d", i)
		}
		if first[i].ID != i+1 {
			t.Fatalf("step at position %d has id %d, want %d", i, first[i].ID, i+1)
		}
	}
}

func TestAllReturnsACopy(t *testing.T) {
	mutated := All()
	mutated[0].Title = "changed"
	if All()[0].Title == "changed" {
		t.Fatal("mutating the slice returned by All() leaked into the catalog")
	}
}

func TestByIDTotality(t *testing.T) {
	for id := 1; id <= Count(); id++ {
		step, err := ByID(id)
		if err != nil {
			t.Fatalf("ByID(%d) unexpected error: %v", id, err)
		}
		if step.ID != id {
			t.Fatalf("ByID(%d) returned step %d", id, step.ID)
		}
	}
	for _, id := range []int{0, -1, Count() + 1, 999} {
		if _, err := ByID(id); err == nil {
			t.Fatalf("ByID(%d) should fail", id)
		}
	}
}

func TestIndexOf(t *testing.T) {
	for id := 1; id <= Count(); id++ {
		idx, err := IndexOf(id)
		if err != nil {
			t.Fatalf("IndexOf(%d) unexpected error: %v", id, err)
		}
		if idx != id-1 {
			t.Fatalf("IndexOf(%d)=%d, want %d", id, idx, id-1)
		}
	}
	if _, err := IndexOf(Count() + 1); err == nil {
		t.Fatal("IndexOf past the end should fail")
	}
}

func TestExactlyOneFinalStepAndItIsLast(t *testing.T) {
	finals := 0
	for _, s := range All() {
		if s.Type == StepTypeFinal {
			finals++
			if s.ID != Count() {
				t.Fatalf("final step has id %d, want %d", s.ID, Count())
			}
		}
	}
	if finals != 1 {
		t.Fatalf("found %d final steps, want 1", finals)
	}
	if Final().Type != StepTypeFinal {
		t.Fatalf("Final() returned type %q", Final().Type)
	}
}

func TestEveryStepHasContent(t *testing.T) {
	for _, s := range All() {
		if s.Content == nil {
			t.Fatalf("step %d has nil content", s.ID)
		}
		if s.Content.Kind() == "" {
			t.Fatalf("step %d content has empty kind", s.ID)
		}
	}
}
