package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderSubjectsRespectsPrerequisiteAndLabEdges(t *testing.T) {
	p := &Problem{
		Classes:              []string{"anyclass"},
		Subjects:             []string{"Algebra", "Calculus"},
		SubjectCredits:       map[string]int{"Algebra": 2, "Calculus": 3},
		SubjectPrerequisites: map[string][]string{"Calculus": {"Algebra"}},
	}
	inst := buildInstance(p)
	required := expandRequirements(p, inst)
	order := orderSubjects(p, inst, required["anyclass"])

	pos := make(map[string]int, len(order))
	for i, s := range order {
		pos[s] = i
	}

	assert.Less(t, pos["Algebra"], pos["Calculus"])
	assert.Less(t, pos["Calculus"], pos["Calculus Lab"])
}

func TestOrderSubjectsFallsBackOnCycle(t *testing.T) {
	p := &Problem{
		Classes:              []string{"anyclass"},
		Subjects:             []string{"A", "B"},
		SubjectCredits:       map[string]int{"A": 1, "B": 1},
		SubjectPrerequisites: map[string][]string{"A": {"B"}, "B": {"A"}},
	}
	inst := buildInstance(p)
	required := expandRequirements(p, inst)
	order := orderSubjects(p, inst, required["anyclass"])

	assert.Equal(t, []string{"A", "B"}, order)
}

func TestInsertionOrderInterleavesLabRightAfterBase(t *testing.T) {
	p := &Problem{
		Classes:        []string{"anyclass"},
		Subjects:       []string{"A", "B"},
		SubjectCredits: map[string]int{"A": 3, "B": 1},
	}
	inst := buildInstance(p)
	required := expandRequirements(p, inst)
	order := insertionOrder(p, required["anyclass"])

	assert.Equal(t, []string{"A", "A Lab", "B"}, order)
}
