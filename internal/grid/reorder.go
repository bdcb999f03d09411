package grid

// MoveRowBefore moves the dragged row so it immediately precedes target.
// It reports whether the order changed.
func (g *Grid) MoveRowBefore(dragged, target RowID) bool {
	return g.moveRow(dragged, target, false)
}

// MoveRowAfter moves the dragged row so it immediately follows target.
func (g *Grid) MoveRowAfter(dragged, target RowID) bool {
	return g.moveRow(dragged, target, true)
}

func (g *Grid) moveRow(dragged, target RowID, after bool) bool {
	if dragged == target {
		return false
	}
	from, ok := g.RowIndex(dragged)
	if !ok {
		return false
	}
	if _, ok := g.RowIndex(target); !ok {
		return false
	}

	r := g.rows[from]
	g.rows = append(g.rows[:from], g.rows[from+1:]...)
	to, _ := g.RowIndex(target)
	if after {
		to++
	}
	g.rows = append(g.rows, row{})
	copy(g.rows[to+1:], g.rows[to:])
	g.rows[to] = r

	return to != from
}

// MoveColumn moves the column at index from next to the column at index to,
// in the header and in every row. Moving rightward inserts after the target,
// moving leftward inserts before it, so the column always lands at index to.
func (g *Grid) MoveColumn(from, to int) bool {
	n := len(g.headers)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	moveIndex(g.headers, from, to)
	for i := range g.rows {
		if len(g.rows[i].cells) == n {
			moveIndex(g.rows[i].cells, from, to)
		}
	}
	return true
}

// moveIndex shifts s[from] to position to, sliding the elements in between.
func moveIndex(s []string, from, to int) {
	v := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = v
}
