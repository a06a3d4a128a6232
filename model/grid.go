package model

// Grid raw calendar snapshot. Row 0 holds room headers from column 1,
// column 0 of every other row holds the date. Room cells that held no text
// in the source are empty.
type Grid [][]string

// Headers row 0, nil for an empty grid
func (g Grid) Headers() []string {
	if len(g) == 0 {
		return nil
	}
	return g[0]
}

// Rows everything below the header
func (g Grid) Rows() [][]string {
	if len(g) < 2 {
		return nil
	}
	return g[1:]
}
