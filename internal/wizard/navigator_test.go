package wizard

import (
	"testing"

	"github.com/calmtree/profilewizard-backend/internal/catalog"
)

func TestPrevClampsAtFirstStep(t *testing.T) {
	nav := NewNavigator()
	nav.Prev()
	if nav.Index() != 0 {
		t.Fatalf("Prev() at index 0 moved to %d", nav.Index())
	}
}

func TestNextClampsAtFinalStep(t *testing.T) {
	nav := NewNavigator()
	for i := 0; i < catalog.Count()*2; i++ {
		nav.Next()
	}
	if nav.Index() != catalog.Count()-1 {
		t.Fatalf("Next() overshot to %d, want %d", nav.Index(), catalog.Count()-1)
	}
	if !nav.AtFinal() {
		t.Fatal("AtFinal() should be true on the last step")
	}
	nav.Next()
	if nav.Index() != catalog.Count()-1 {
		t.Fatalf("Next() at the final step moved to %d", nav.Index())
	}
}

func TestJumpToIgnoresUnknownIDs(t *testing.T) {
	nav := NewNavigator()
	nav.JumpTo(5)
	want, _ := catalog.IndexOf(5)
	if nav.Index() != want {
		t.Fatalf("JumpTo(5)=%d, want %d", nav.Index(), want)
	}
	nav.JumpTo(999)
	if nav.Index() != want {
		t.Fatalf("JumpTo(999) should be a no-op, moved to %d", nav.Index())
	}
	nav.JumpTo(-1)
	if nav.Index() != want {
		t.Fatalf("JumpTo(-1) should be a no-op, moved to %d", nav.Index())
	}
}

func TestParseFragment(t *testing.T) {
	cases := []struct {
		name     string
		fragment string
		wantID   int
		wantOK   bool
	}{
		{name: "valid", fragment: "#step-7", wantID: 7, wantOK: true},
		{name: "out_of_range_still_parses", fragment: "#step-999", wantID: 999, wantOK: true},
		{name: "missing_prefix", fragment: "step-7", wantOK: false},
		{name: "not_a_number", fragment: "#step-abc", wantOK: false},
		{name: "empty", fragment: "", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ParseFragment(tc.fragment)
			if ok != tc.wantOK {
				t.Fatalf("ParseFragment(%q) ok=%v, want %v", tc.fragment, ok, tc.wantOK)
			}
			if ok && id != tc.wantID {
				t.Fatalf("ParseFragment(%q)=%d, want %d", tc.fragment, id, tc.wantID)
			}
		})
	}
}

func TestDeepLinkResolution(t *testing.T) {
	nav := NewNavigatorFromFragment("#step-7")
	want, _ := catalog.IndexOf(7)
	if nav.Index() != want {
		t.Fatalf("deep link #step-7 resolved to index %d, want %d", nav.Index(), want)
	}

	nav = NewNavigatorFromFragment("#step-999")
	if nav.Index() != 0 {
		t.Fatalf("out-of-range deep link should resolve to 0, got %d", nav.Index())
	}

	nav = NewNavigatorFromFragment("")
	if nav.Index() != 0 {
		t.Fatalf("missing deep link should resolve to 0, got %d", nav.Index())
	}
}
