package scheduler

import (
	"math/rand"
	"sort"
)

// placementChoice is a candidate (time slot, room) pair along with the
// score it would earn if committed.
type placementChoice struct {
	slot  int
	room  string
	score float64
}

// findPlacement scans legal (time slot, room) combinations for (class,
// subject, teacher) under the hard constraints and returns the
// highest-scoring one, per spec §4.6. It returns ok=false if no
// admissible combination exists.
func (s *State) findPlacement(rng *rand.Rand, class, subject, teacher string, consecutive bool) (placementChoice, bool) {
	kind := s.inst.requiredKind[subject]

	rooms := s.suitableRooms(kind, s.inst.classSizes[class])
	if len(rooms) == 0 {
		return placementChoice{}, false
	}

	order := rng.Perm(len(s.inst.timeSlots))

	best := placementChoice{}
	found := false

	for _, slotIdx := range order {
		for _, room := range rooms {
			if _, isLab := s.baseOfLab(subject); isLab && s.labRoomBusy[slotIdx][room] {
				continue
			}
			if !s.admissible(class, subject, teacher, room, slotIdx) {
				continue
			}
			sc := s.score(class, subject, teacher, room, slotIdx, consecutive)
			if !found || sc > best.score {
				best = placementChoice{slot: slotIdx, room: room, score: sc}
				found = true
			}
		}
	}

	return best, found
}

// suitableRooms returns rooms with capacity >= size and a matching or
// flex kind, ordered ascending by capacity (smallest-fit first).
func (s *State) suitableRooms(kind RoomKind, size int) []string {
	var rooms []string
	for _, name := range s.inst.roomNames {
		spec := s.inst.rooms[name]
		if spec.Capacity < size {
			continue
		}
		if spec.Type != kind && spec.Type != RoomFlex {
			continue
		}
		rooms = append(rooms, name)
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		return s.inst.rooms[rooms[i]].Capacity < s.inst.rooms[rooms[j]].Capacity
	})
	return rooms
}
