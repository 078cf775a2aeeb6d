package voronoi

// Stats holds generic stats about a diagram
type Stats struct {
	Cells       int
	EmptyCells  int
	Edges       int
	BorderEdges int
	Area        float64
}

// Stats returns counts of cells & edges. Edge counts are 0 for diagrams
// built in Filled mode.
func (d *Diagram) Stats() *Stats {
	s := &Stats{Cells: len(d.Cells), Edges: len(d.Edges)}
	for _, c := range d.Cells {
		if c.Empty() {
			s.EmptyCells++
		}
		s.Area += c.Area()
	}
	for _, e := range d.Edges {
		if e.Right == Border {
			s.BorderEdges++
		}
	}
	return s
}
