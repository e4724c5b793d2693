package wizard

import (
	"strconv"
	"strings"

	"github.com/calmtree/profilewizard-backend/internal/catalog"
)

// Navigator is the ephemeral position in the step sequence. It is pure
// presentation routing and never touches progress records.
type Navigator struct {
	index int
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

// NewNavigatorFromFragment starts at the step named by a deep-link fragment
// like "#step-7". Unknown or malformed fragments fall back to the first
// step.
func NewNavigatorFromFragment(fragment string) *Navigator {
	n := &Navigator{}
	if id, ok := ParseFragment(fragment); ok {
		if idx, err := catalog.IndexOf(id); err == nil {
			n.index = idx
		}
	}
	return n
}

func ParseFragment(fragment string) (int, bool) {
	rest, found := strings.CutPrefix(fragment, "#step-")
	if !found {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (n *Navigator) Index() int {
	return n.index
}

func (n *Navigator) Current() catalog.StepDefinition {
	return catalog.All()[n.index]
}

// Next advances one step, staying put on the final step.
func (n *Navigator) Next() {
	if n.index < catalog.Count()-1 {
		n.index++
	}
}

// Prev goes back one step, staying put on the first.
func (n *Navigator) Prev() {
	if n.index > 0 {
		n.index--
	}
}

// JumpTo moves to the step with the given id. Unknown ids are ignored.
func (n *Navigator) JumpTo(id int) {
	idx, err := catalog.IndexOf(id)
	if err != nil {
		return
	}
	n.index = idx
}

func (n *Navigator) AtFinal() bool {
	return n.index == catalog.Count()-1
}
