package scheduler

// insertionOrder reconstructs the deterministic order in which subjects
// were added to a class's requirement bag: declared subjects in
// declaration order, each immediately followed by its lab-subject if
// the bag contains one.
func insertionOrder(p *Problem, bag map[string]int) []string {
	order := make([]string, 0, len(bag))
	for _, subject := range p.Subjects {
		if _, ok := bag[subject]; ok {
			order = append(order, subject)
		}
		lab := labSubjectName(subject)
		if _, ok := bag[lab]; ok {
			order = append(order, lab)
		}
	}
	return order
}

// orderSubjects builds a DAG over one class's required subject set and
// returns a deterministic topological order: edges run prerequisite ->
// subject, and base-subject -> its lab-subject (the implicit
// theory-before-lab dependency). Zero-in-degree nodes are consumed in
// insertion order. A cycle in the declared prerequisites is ill-formed
// input; rather than aborting, this falls back to the plain insertion
// order for the affected class so scheduling can proceed — the
// Verifier will catch any resulting prerequisite violation.
func orderSubjects(p *Problem, inst *instance, bag map[string]int) []string {
	nodes := insertionOrder(p, bag)
	if len(nodes) == 0 {
		return nodes
	}

	inDegree := make(map[string]int, len(nodes))
	edges := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		inDegree[n] = 0
	}

	addEdge := func(from, to string) {
		if _, ok := inDegree[from]; !ok {
			return
		}
		if _, ok := inDegree[to]; !ok {
			return
		}
		edges[from] = append(edges[from], to)
		inDegree[to]++
	}

	for _, subject := range p.Subjects {
		if _, present := bag[subject]; !present {
			continue
		}
		for _, pre := range p.SubjectPrerequisites[subject] {
			addEdge(pre, subject)
		}
		lab := labSubjectName(subject)
		if _, present := bag[lab]; present {
			addEdge(subject, lab)
		}
	}

	visited := make(map[string]bool, len(nodes))
	result := make([]string, 0, len(nodes))

	for len(result) < len(nodes) {
		picked := ""
		for _, n := range nodes {
			if !visited[n] && inDegree[n] == 0 {
				picked = n
				break
			}
		}
		if picked == "" {
			// cycle: fall back to insertion order entirely.
			return nodes
		}
		visited[picked] = true
		result = append(result, picked)
		for _, next := range edges[picked] {
			inDegree[next]--
		}
	}

	return result
}
