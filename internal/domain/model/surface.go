package model

import (
	"fmt"
	"math"
)

// Surface is a 2D grid of scalars over the pitch plus the coordinate arrays
// of the cell centers. Cells[i][j] corresponds to (XGrid[j], YGrid[i]).
type Surface struct {
	Cells [][]float64
	XGrid []float64
	YGrid []float64
}

// GridShape derives the grid dimensions from the x resolution and the pitch
// aspect ratio.
func GridShape(dims FieldDimensions, nGridCellsX int) (nx, ny int) {
	nx = nGridCellsX
	ny = int(float64(nGridCellsX) * dims.Width / dims.Length)
	return nx, ny
}

// NewSurface allocates a zeroed surface with cell centers spanning the pitch.
func NewSurface(dims FieldDimensions, nGridCellsX int) *Surface {
	nx, ny := GridShape(dims, nGridCellsX)
	dx := dims.Length / float64(nx)
	dy := dims.Width / float64(ny)

	xgrid := make([]float64, nx)
	for j := range xgrid {
		xgrid[j] = -dims.Length/2 + dx/2 + float64(j)*dx
	}
	ygrid := make([]float64, ny)
	for i := range ygrid {
		ygrid[i] = -dims.Width/2 + dy/2 + float64(i)*dy
	}

	cells := make([][]float64, ny)
	for i := range cells {
		cells[i] = make([]float64, nx)
	}
	return &Surface{Cells: cells, XGrid: xgrid, YGrid: ygrid}
}

// CellCount returns the total number of grid cells.
func (s *Surface) CellCount() int {
	return len(s.XGrid) * len(s.YGrid)
}

// Sum returns the sum of all cell values.
func (s *Surface) Sum() float64 {
	var total float64
	for _, row := range s.Cells {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Clone returns a deep copy of the surface.
func (s *Surface) Clone() *Surface {
	cells := make([][]float64, len(s.Cells))
	for i, row := range s.Cells {
		cells[i] = make([]float64, len(row))
		copy(cells[i], row)
	}
	xg := make([]float64, len(s.XGrid))
	copy(xg, s.XGrid)
	yg := make([]float64, len(s.YGrid))
	copy(yg, s.YGrid)
	return &Surface{Cells: cells, XGrid: xg, YGrid: yg}
}

// Sub returns the cell-wise difference s - o on a fresh surface.
func (s *Surface) Sub(o *Surface) (*Surface, error) {
	if len(s.XGrid) != len(o.XGrid) || len(s.YGrid) != len(o.YGrid) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrShapeMismatch, len(s.XGrid), len(s.YGrid), len(o.XGrid), len(o.YGrid))
	}
	out := s.Clone()
	for i := range out.Cells {
		for j := range out.Cells[i] {
			out.Cells[i][j] -= o.Cells[i][j]
		}
	}
	return out, nil
}

// MaxAbs returns the largest absolute cell value. Useful for scaling a
// difference surface before rendering.
func (s *Surface) MaxAbs() float64 {
	var m float64
	for _, row := range s.Cells {
		for _, v := range row {
			if a := math.Abs(v); a > m {
				m = a
			}
		}
	}
	return m
}
