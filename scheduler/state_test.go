package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInstance() (*Problem, *instance, map[string]map[string]int) {
	p := &Problem{
		Teachers:  []string{"T1", "T2"},
		Classes:   []string{"C1"},
		Subjects:  []string{"Math"},
		Rooms:     map[string]RoomSpec{"R1": {Capacity: 30, Type: RoomTheory}, "L1": {Capacity: 1, Type: RoomLab}},
		TimeSlots: []string{"Mon-1", "Mon-2", "Tue-1"},
		SubjectCredits:          map[string]int{"Math": 3},
		TeacherQualifications:   map[string][]string{"T1": {"Math", "Math Lab"}, "T2": {"Math"}},
		SubjectRoomRequirements: map[string]RoomKind{"Math": RoomTheory},
		ClassSizes:              map[string]int{"C1": 20},
		TeacherMaxDailyLoad:     5,
	}
	inst := buildInstance(p)
	required := expandRequirements(p, inst)
	return p, inst, required
}

func TestTryPlaceThenUnplaceRestoresState(t *testing.T) {
	_, inst, required := sampleInstance()
	state := newState(inst, required)

	before := state.snapshot()

	ok := state.tryPlace("C1", "Math", "T2", "R1", 0)
	require.True(t, ok)

	ok = state.unplace("C1", 0)
	require.True(t, ok)

	after := state.snapshot()
	assert.Equal(t, before.assignments, after.assignments)
	assert.Equal(t, before.scheduled, after.scheduled)
	assert.Equal(t, before.teacherDay, after.teacherDay)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	_, inst, required := sampleInstance()
	state := newState(inst, required)

	require.True(t, state.tryPlace("C1", "Math", "T2", "R1", 0))
	snap := state.snapshot()

	require.True(t, state.tryPlace("C1", "Math", "T1", "R1", 1))
	state.restore(snap)

	assert.Equal(t, 1, state.scheduledCount("C1", "Math"))
	_, stillThere := state.assignments[cell{class: "C1", slot: 1}]
	assert.False(t, stillThere)
}

func TestUnplaceEmptyCellFails(t *testing.T) {
	_, inst, required := sampleInstance()
	state := newState(inst, required)
	assert.False(t, state.unplace("C1", 0))
}

func TestLabRoomRejectsOversizedClass(t *testing.T) {
	_, inst, required := sampleInstance()
	state := newState(inst, required)

	require.True(t, state.tryPlace("C1", "Math", "T2", "R1", 0))
	// L1 has capacity 1, class C1 has size 20: inadmissible regardless
	// of the lab-before-theory rule.
	assert.False(t, state.admissible("C1", "Math Lab", "T1", "L1", 1))
}

func TestFlexRoomAcceptsTheoryAndLab(t *testing.T) {
	p, inst, required := sampleInstance()
	p.Rooms["F1"] = RoomSpec{Capacity: 30, Type: RoomFlex}
	inst = buildInstance(p)
	state := newState(inst, required)

	require.True(t, state.tryPlace("C1", "Math", "T2", "F1", 0))
	assert.True(t, state.admissible("C1", "Math Lab", "T1", "F1", 1))
}

func TestTeacherDailyLoadCapEnforced(t *testing.T) {
	p, inst, required := sampleInstance()
	p.TeacherMaxDailyLoad = 1
	inst = buildInstance(p)
	state := newState(inst, required)

	require.True(t, state.tryPlace("C1", "Math", "T2", "R1", 0))
	assert.False(t, state.admissible("C1", "Math", "T2", "R1", 1))
}

func TestLabRoomOnlyOneLabPerSlot(t *testing.T) {
	p, inst, required := sampleInstance()
	p.Classes = append(p.Classes, "C2")
	p.ClassSizes["C2"] = 15
	p.Teachers = append(p.Teachers, "T3")
	p.TeacherQualifications["T3"] = []string{"Math Lab"}
	p.Rooms["L2"] = RoomSpec{Capacity: 20, Type: RoomLab}
	p.Rooms["R2"] = RoomSpec{Capacity: 30, Type: RoomTheory}
	required["C2"] = required["C1"]
	inst = buildInstance(p)
	state := newState(inst, required)

	require.True(t, state.tryPlace("C1", "Math", "T2", "R1", 0))
	require.True(t, state.tryPlace("C1", "Math Lab", "T1", "L2", 1))

	require.True(t, state.tryPlace("C2", "Math", "T1", "R2", 0))
	// a second class's lab in the same room at the same slot must be
	// rejected even though C2's own schedule and T3 are both free.
	assert.False(t, state.admissible("C2", "Math Lab", "T3", "L2", 1))
}
