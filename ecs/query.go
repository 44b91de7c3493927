package ecs

// intersectIDs returns the slot ids present in every set. It walks the
// smallest set and probes the others.
func intersectIDs(sets ...*SparseSet) []int {
	if len(sets) == 0 {
		return nil
	}
	smallest := 0
	for i, s := range sets {
		if s == nil || s.Len() == 0 {
			return nil
		}
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	out := make([]int, 0, sets[smallest].Len())
	for _, id := range sets[smallest].IDs() {
		match := true
		for i, s := range sets {
			if i == smallest {
				continue
			}
			if !s.Has(id) {
				match = false
				break
			}
		}
		if match {
			out = append(out, id)
		}
	}
	return out
}
