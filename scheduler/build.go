package scheduler

import "sort"

// instance is the resolved, validated form of a Problem: every lookup
// the rest of the package needs is precomputed once here, the way the
// teacher's DataSet precomputes TagToRooms/TagToTimes so the search
// loop never has to re-derive them.
type instance struct {
	problem *Problem

	rooms     map[string]RoomSpec
	roomNames []string // insertion order, for deterministic iteration

	timeSlots []TimeSlot
	slotIndex map[string]int // label -> index into timeSlots

	// qualifications[teacher][subject] is true if teacher can teach
	// subject. subject includes derived lab-subject names when the
	// input explicitly lists them.
	qualifications map[string]map[string]bool

	// requiredKind[subject] is the room kind a session of subject
	// needs. Lab-subjects are always RoomLab regardless of what the
	// base subject declares.
	requiredKind map[string]RoomKind

	classSizes map[string]int

	baseSubjects map[string]bool // original, non-derived subject names
}

func buildInstance(p *Problem) *instance {
	inst := &instance{
		problem:        p,
		rooms:          p.Rooms,
		timeSlots:      make([]TimeSlot, len(p.TimeSlots)),
		slotIndex:      make(map[string]int, len(p.TimeSlots)),
		qualifications: make(map[string]map[string]bool, len(p.Teachers)),
		requiredKind:   make(map[string]RoomKind),
		classSizes:     p.ClassSizes,
		baseSubjects:   make(map[string]bool, len(p.Subjects)),
	}

	inst.roomNames = make([]string, 0, len(p.Rooms))
	for name := range p.Rooms {
		inst.roomNames = append(inst.roomNames, name)
	}
	sort.Strings(inst.roomNames)

	for i, label := range p.TimeSlots {
		inst.timeSlots[i] = TimeSlot{Label: label, Index: i, Day: dayTag(label)}
		inst.slotIndex[label] = i
	}

	for _, subject := range p.Subjects {
		inst.baseSubjects[subject] = true
		kind := p.SubjectRoomRequirements[subject]
		if kind == "" {
			kind = RoomTheory
		}
		inst.requiredKind[subject] = kind
		inst.requiredKind[labSubjectName(subject)] = RoomLab
	}

	for _, teacher := range p.Teachers {
		subjects := make(map[string]bool)
		for _, s := range p.TeacherQualifications[teacher] {
			subjects[s] = true
		}
		inst.qualifications[teacher] = subjects
	}

	return inst
}
