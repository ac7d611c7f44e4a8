package world

// Grid is a uniform spatial hash used as collision broadphase. Entities are
// bucketed by their centre, so the cell size must be at least the sum of the
// largest pair of half-extents that will be queried against each other.
type Grid[T Entity] struct {
	CellSize   float64
	GridWidth  int
	GridHeight int
	Cells      [][]T
}

// NewGrid creates a grid covering width×height pixels.
func NewGrid[T Entity](width, height int, cellSize float64) *Grid[T] {
	gridWidth := int(float64(width)/cellSize) + 1
	gridHeight := int(float64(height)/cellSize) + 1

	cells := make([][]T, gridWidth*gridHeight)
	for i := range cells {
		cells[i] = make([]T, 0, 4)
	}

	return &Grid[T]{
		CellSize:   cellSize,
		GridWidth:  gridWidth,
		GridHeight: gridHeight,
		Cells:      cells,
	}
}

// cell maps a position to clamped cell coordinates. Entities outside the
// covered area land in the border cells.
func (g *Grid[T]) cell(x, y float64) (int, int) {
	cx := int(x / g.CellSize)
	cy := int(y / g.CellSize)
	if x < 0 {
		cx = 0
	}
	if y < 0 {
		cy = 0
	}
	if cx >= g.GridWidth {
		cx = g.GridWidth - 1
	}
	if cy >= g.GridHeight {
		cy = g.GridHeight - 1
	}
	return cx, cy
}

// Clear empties every cell, keeping capacity.
func (g *Grid[T]) Clear() {
	for i := range g.Cells {
		var zero T
		for j := range g.Cells[i] {
			g.Cells[i][j] = zero
		}
		g.Cells[i] = g.Cells[i][:0]
	}
}

// Insert adds e to the cell containing its centre. Entities with a
// non-finite box are skipped.
func (g *Grid[T]) Insert(e T) bool {
	b := e.Bounds()
	if !b.Valid() {
		return false
	}
	c := b.Center()
	cx, cy := g.cell(c.X, c.Y)
	idx := cy*g.GridWidth + cx
	g.Cells[idx] = append(g.Cells[idx], e)
	return true
}

// Nearby appends to out every entity in the 3×3 block of cells around
// (x, y), row by row, and returns it.
func (g *Grid[T]) Nearby(x, y float64, out []T) []T {
	cx, cy := g.cell(x, y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			ncx := cx + dx
			ncy := cy + dy
			if ncx < 0 || ncx >= g.GridWidth || ncy < 0 || ncy >= g.GridHeight {
				continue
			}
			out = append(out, g.Cells[ncy*g.GridWidth+ncx]...)
		}
	}
	return out
}
