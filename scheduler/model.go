// Package scheduler implements a constraint-driven university timetable
// generator: it assigns each required session of each subject, for each
// class, to a (time slot, teacher, room) triple subject to a fixed set
// of hard constraints, maximizing a soft preference score along the way.
package scheduler

import "strings"

// RoomKind is the kind of room a subject needs, or a room provides.
type RoomKind string

const (
	RoomTheory RoomKind = "theory"
	RoomLab    RoomKind = "lab"
	RoomFlex   RoomKind = "flex"
)

// RoomSpec describes one room in the inventory.
type RoomSpec struct {
	Capacity int      `json:"capacity"`
	Type     RoomKind `json:"type"`
}

// Problem is the validated input to Schedule. Field names and shapes
// mirror the external interface described for the core: a Go caller
// builds one of these directly, a JSON caller decodes it verbatim.
type Problem struct {
	Teachers []string `json:"teachers"`
	Classes  []string `json:"classes"`
	Subjects []string `json:"subjects"`

	Rooms     map[string]RoomSpec `json:"rooms"`
	TimeSlots []string            `json:"time_slots"`

	SubjectCredits          map[string]int      `json:"subject_credits"`
	TeacherQualifications   map[string][]string `json:"teacher_qualifications"`
	SubjectRoomRequirements map[string]RoomKind `json:"subject_room_requirements"`
	SubjectPrerequisites    map[string][]string `json:"subject_prerequisites"`
	ClassSizes              map[string]int      `json:"class_sizes"`

	TeacherMaxDailyLoad  int   `json:"teacher_max_daily_load,omitempty"`
	ConsecutivePreferred *bool `json:"consecutive_preferred,omitempty"`
	MaxAttempts          int   `json:"max_attempts,omitempty"`

	// Seed controls the per-instance random source used to permute time
	// slot search order and eviction order. Zero means "derive a seed
	// from the current time"; tests should pass a nonzero value.
	Seed int64 `json:"seed,omitempty"`
}

const (
	defaultTeacherMaxDailyLoad = 5
	defaultMaxAttempts         = 200
	maxDriverIterations        = 1000
	maxRepairEvictions         = 3
)

func (p *Problem) teacherMaxDailyLoad() int {
	if p.TeacherMaxDailyLoad > 0 {
		return p.TeacherMaxDailyLoad
	}
	return defaultTeacherMaxDailyLoad
}

func (p *Problem) consecutivePreferred() bool {
	if p.ConsecutivePreferred == nil {
		return true
	}
	return *p.ConsecutivePreferred
}

// TimeSlot is one column of the weekly grid.
type TimeSlot struct {
	Label string
	Index int
	Day   string
}

func dayTag(label string) string {
	if i := strings.IndexByte(label, '-'); i >= 0 {
		return label[:i]
	}
	return label
}

// Entry is one placed session: the occupant of a (class, time slot)
// cell in the final schedule.
type Entry struct {
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
}

// TeacherUtilization reports how many sessions a teacher ended up with.
type TeacherUtilization struct {
	Name          string `json:"name"`
	TotalSessions int    `json:"total_sessions"`
}

// RoomUtilization reports how many sessions a room ended up hosting.
type RoomUtilization struct {
	Name          string `json:"name"`
	TotalSessions int    `json:"total_sessions"`
}

// Statistics summarizes a completed run. AverageRoomHeadroom is
// informational only: capacity minus class size, averaged over every
// placed session. It never feeds back into scoring or admissibility.
type Statistics struct {
	TotalRequired       int                   `json:"total_required"`
	TotalScheduled      int                   `json:"total_scheduled"`
	SuccessRate         float64               `json:"success_rate"`
	TeacherUtilization  []TeacherUtilization  `json:"teacher_utilization"`
	RoomUtilization     []RoomUtilization     `json:"room_utilization"`
	AverageRoomHeadroom float64               `json:"average_room_headroom"`
}

// Result is the output of Schedule.
type Result struct {
	// RunID correlates one Schedule invocation across logs and metrics.
	RunID string `json:"run_id,omitempty"`

	// Schedule[class][timeSlotLabel] is nil for an empty cell.
	Schedule map[string]map[string]*Entry `json:"schedule"`

	Statistics  Statistics `json:"statistics"`
	Constraints []string   `json:"constraints"`
}

// labSubjectName derives the implicit lab-subject name for a base subject.
func labSubjectName(subject string) string {
	return subject + " Lab"
}

// baseOfLabSubject reports whether name was produced by labSubjectName for
// some base subject in bases, returning that base subject.
func baseOfLabSubject(name string, bases map[string]bool) (string, bool) {
	const suffix = " Lab"
	if !strings.HasSuffix(name, suffix) {
		return "", false
	}
	base := strings.TrimSuffix(name, suffix)
	if bases[base] {
		return base, true
	}
	return "", false
}
