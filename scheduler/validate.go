package scheduler

import "fmt"

// validate rejects malformed or infeasible problems before any search is
// attempted. It mirrors the teacher's fail-fast parsing style (one
// fmt.Errorf per defect, first one wins) rather than accumulating every
// defect found, since the spec calls these "fatal validation failures"
// with "no partial scheduling attempted" — there is nothing useful to
// report beyond the first blocking problem.
func validate(p *Problem) error {
	if len(p.Teachers) == 0 {
		return newError(CodeInvalidInput, "no teachers declared")
	}
	if len(p.Classes) == 0 {
		return newError(CodeInvalidInput, "no classes declared")
	}
	if len(p.Subjects) == 0 {
		return newError(CodeInvalidInput, "no subjects declared")
	}
	if len(p.Rooms) == 0 {
		return newError(CodeInvalidInput, "no rooms declared")
	}
	if len(p.TimeSlots) == 0 {
		return newError(CodeInvalidInput, "no time slots declared")
	}

	for _, class := range p.Classes {
		size, ok := p.ClassSizes[class]
		if !ok {
			return newError(CodeInvalidInput, "class %q has no declared size", class)
		}
		if size <= 0 {
			return newError(CodeInvalidInput, "class %q must have a positive size, found %d", class, size)
		}
	}

	subjectSet := make(map[string]bool, len(p.Subjects))
	for _, s := range p.Subjects {
		subjectSet[s] = true
	}
	for subject := range p.SubjectCredits {
		if !subjectSet[subject] {
			return newError(CodeInvalidInput, "subject_credits references unknown subject %q", subject)
		}
	}
	for subject, prereqs := range p.SubjectPrerequisites {
		if !subjectSet[subject] {
			return newError(CodeInvalidInput, "subject_prerequisites references unknown subject %q", subject)
		}
		for _, pre := range prereqs {
			if !subjectSet[pre] {
				return newError(CodeInvalidInput, "subject %q declares unknown prerequisite %q", subject, pre)
			}
		}
	}
	for room, spec := range p.Rooms {
		if spec.Capacity <= 0 {
			return newError(CodeInvalidInput, "room %q must have a positive capacity", room)
		}
		switch spec.Type {
		case RoomTheory, RoomLab, RoomFlex:
		default:
			return newError(CodeInvalidInput, "room %q has unknown type %q", room, spec.Type)
		}
	}
	teacherSet := make(map[string]bool, len(p.Teachers))
	for _, t := range p.Teachers {
		teacherSet[t] = true
	}
	for teacher := range p.TeacherQualifications {
		if !teacherSet[teacher] {
			return newError(CodeInvalidInput, "teacher_qualifications references unknown teacher %q", teacher)
		}
	}

	return nil
}

// validateExpanded checks the two feasibility conditions that depend on
// the expanded per-class requirement bag: every required subject has at
// least one qualified teacher, and total demand does not exceed the
// trivial capacity bound |teachers| x |time slots|.
func validateExpanded(p *Problem, inst *instance, required map[string]map[string]int) error {
	needed := make(map[string]bool)
	for _, bySubject := range required {
		for subject := range bySubject {
			needed[subject] = true
		}
	}

	for subject := range needed {
		qualified := 0
		for _, subjects := range inst.qualifications {
			if subjects[subject] {
				qualified++
			}
		}
		if qualified == 0 {
			return &Error{Code: CodeUnqualifiedSubject, Message: fmt.Sprintf("no teacher is qualified for %q", subject)}
		}
	}

	total := 0
	for _, bySubject := range required {
		for _, count := range bySubject {
			total += count
		}
	}
	bound := len(p.Teachers) * len(p.TimeSlots)
	if total > bound {
		return &Error{
			Code: CodeInfeasibleCapacity,
			Message: fmt.Sprintf("required sessions (%d) exceed capacity bound |teachers|x|time slots| (%d)",
				total, bound),
		}
	}

	return nil
}
