package catalog

import (
	"errors"
	"fmt"
)

type StepType string

const (
	StepTypeInfo      StepType = "info"
	StepTypeChoice    StepType = "choice"
	StepTypeChecklist StepType = "checklist"
	StepTypeForm      StepType = "form"
	StepTypeFinal     StepType = "final"
)

var ErrStepNotFound = errors.New("step not found")

// Content carries presentation data for a step. The wizard core never reads
// it; renderers switch on Kind.
type Content interface {
	Kind() string
}

type Checklist struct {
	Items []string `json:"items"`
}

func (Checklist) Kind() string { return "checklist" }

type FlowDiagram struct {
	Stages []string `json:"stages"`
}

func (FlowDiagram) Kind() string { return "flow_diagram" }

type Sections struct {
	Heading string   `json:"heading"`
	Body    []string `json:"body"`
}

func (Sections) Kind() string { return "sections" }

type Choices struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

func (Choices) Kind() string { return "choices" }

type FormFields struct {
	Fields []string `json:"fields"`
}

func (FormFields) Kind() string { return "form_fields" }

type StepDefinition struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        StepType `json:"type"`
	Content     Content  `json:"-"`
}

var byID map[int]int

func init() {
	if err := validate(steps); err != nil {
		panic(fmt.Sprintf("catalog: invalid step table: %v", err))
	}
	byID = make(map[int]int, len(steps))
	for i, s := range steps {
		byID[s.ID] = i
	}
}

func validate(defs []StepDefinition) error {
	if len(defs) == 0 {
		return fmt.Errorf("empty step table")
	}
	finals := 0
	for i, s := range defs {
		if s.ID != i+1 {
			return fmt.Errorf("step at position %d has id %d, ids must be 1-based and contiguous", i, s.ID)
		}
		if s.Title == "" || s.Description == "" {
			return fmt.Errorf("step %d has an empty title or description", s.ID)
		}
		switch s.Type {
		case StepTypeInfo, StepTypeChoice, StepTypeChecklist, StepTypeForm:
		case StepTypeFinal:
			finals++
			if s.ID != len(defs) {
				return fmt.Errorf("final step %d is not the last step", s.ID)
			}
		default:
			return fmt.Errorf("step %d has unknown type %q", s.ID, s.Type)
		}
	}
	if finals != 1 {
		return fmt.Errorf("expected exactly one final step, found %d", finals)
	}
	return nil
}

// All returns the full ordered step sequence. Callers get a fresh slice so
// the package-level table stays immutable.
func All() []StepDefinition {
	out := make([]StepDefinition, len(steps))
	copy(out, steps)
	return out
}

func Count() int {
	return len(steps)
}

func ByID(id int) (StepDefinition, error) {
	i, ok := byID[id]
	if !ok {
		return StepDefinition{}, fmt.Errorf("step %d: %w", id, ErrStepNotFound)
	}
	return steps[i], nil
}

// IndexOf maps a step id to its zero-based position, for deep-link
// resolution.
func IndexOf(id int) (int, error) {
	i, ok := byID[id]
	if !ok {
		return 0, fmt.Errorf("step %d: %w", id, ErrStepNotFound)
	}
	return i, nil
}

func Final() StepDefinition {
	return steps[len(steps)-1]
}
