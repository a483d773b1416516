package keypad

// buttonComponents finds the 4-connected regions of button cells, skipping
// the gap. Each region is a slice of row-major indices in BFS order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (l *Layout) buttonComponents() [][]int {
	seen := make([]bool, len(l.cells))
	var comps [][]int

	for i0 := range l.cells {
		if seen[i0] || l.IsGap(l.coordinate(i0)) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := l.coordinate(queue[qi])
			for _, m := range [...]Move{Up, Right, Down, Left} {
				v := u.Add(m)
				if !l.Walkable(v) {
					continue
				}
				vi := l.index(v.Col, v.Row)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
