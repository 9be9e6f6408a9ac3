package console

// Grid is a row-major block of cells with region transfer helpers shared
// by Console implementations.
type Grid struct {
	Size  Coord
	Cells []Cell
}

// NewGrid returns a grid of the given size filled with BlankCell.
func NewGrid(size Coord) *Grid {
	cells := make([]Cell, size.X*size.Y)
	for i := range cells {
		cells[i] = BlankCell
	}
	return &Grid{Size: size, Cells: cells}
}

// At returns the cell at (x, y), or the zero Cell outside the grid.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.Size.X || y >= g.Size.Y {
		return Cell{}
	}
	return g.Cells[y*g.Size.X+x]
}

// Contains reports whether p is a cell of the grid.
func (g *Grid) Contains(p Coord) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Size.X && p.Y < g.Size.Y
}

// Read copies region into dst, a size.X by size.Y grid.
func (g *Grid) Read(dst []Cell, size Coord, region Rect) error {
	w, h, err := g.check(dst, size, region)
	if err != nil {
		return err
	}
	for y := 0; y < h; y++ {
		src := (region.Top+y)*g.Size.X + region.Left
		copy(dst[y*size.X:y*size.X+w], g.Cells[src:src+w])
	}
	return nil
}

// Write copies the top-left of src, a size.X by size.Y grid, into region.
func (g *Grid) Write(src []Cell, size Coord, region Rect) error {
	w, h, err := g.check(src, size, region)
	if err != nil {
		return err
	}
	for y := 0; y < h; y++ {
		dst := (region.Top+y)*g.Size.X + region.Left
		copy(g.Cells[dst:dst+w], src[y*size.X:y*size.X+w])
	}
	return nil
}

func (g *Grid) check(cells []Cell, size Coord, region Rect) (w, h int, err error) {
	if region.Empty() || region.Top < 0 || region.Left < 0 ||
		region.Bottom >= g.Size.Y || region.Right >= g.Size.X {
		return 0, 0, ErrRegion
	}
	w, h = region.Width(), region.Height()
	if w > size.X || h > size.Y || len(cells) < size.X*size.Y {
		return 0, 0, ErrRegion
	}
	return w, h, nil
}
