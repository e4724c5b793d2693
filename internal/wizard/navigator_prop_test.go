package wizard

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/calmtree/profilewizard-backend/internal/catalog"
)

func TestNavigatorIndexStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nav := NewNavigator()
		ops := rapid.SliceOf(rapid.IntRange(0, 2)).Draw(t, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				nav.Next()
			case 1:
				nav.Prev()
			case 2:
				nav.JumpTo(rapid.IntRange(-5, catalog.Count()+5).Draw(t, "jump_id"))
			}
			if nav.Index() < 0 || nav.Index() >= catalog.Count() {
				t.Fatalf("index %d escaped [0, %d)", nav.Index(), catalog.Count())
			}
		}
	})
}
