package entity

import (
	"fmt"

	"github.com/rocketscienceinc/seabattle/internal/apperror"
)

type Orientation string

const (
	Horizontal Orientation = "H"
	Vertical   Orientation = "V"
)

// Vessel is a ship occupying a contiguous straight run of cells.
type Vessel struct {
	cells         []Coordinate
	remainingHits int
}

// NewVessel lays out length cells starting at bow. Bounds are not checked here.
func NewVessel(length int, bow Coordinate, orientation Orientation) (*Vessel, error) {
	if orientation != Horizontal && orientation != Vertical {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidOrientation, orientation)
	}

	cells := make([]Coordinate, 0, length)
	for i := range length {
		switch orientation {
		case Horizontal:
			cells = append(cells, Coordinate{Row: bow.Row, Col: bow.Col + i})
		case Vertical:
			cells = append(cells, Coordinate{Row: bow.Row + i, Col: bow.Col})
		}
	}

	return &Vessel{
		cells:         cells,
		remainingHits: length,
	}, nil
}

func (that *Vessel) Cells() []Coordinate {
	cells := make([]Coordinate, len(that.cells))
	copy(cells, that.cells)

	return cells
}

func (that *Vessel) Len() int {
	return len(that.cells)
}

func (that *Vessel) RemainingHits() int {
	return that.remainingHits
}

func (that *Vessel) IsSunk() bool {
	return that.remainingHits == 0
}

func (that *Vessel) Contains(target Coordinate) bool {
	for _, cell := range that.cells {
		if cell == target {
			return true
		}
	}

	return false
}

// takeHit reports whether this hit sank the vessel.
func (that *Vessel) takeHit() bool {
	if that.remainingHits == 0 {
		return false
	}

	that.remainingHits--

	return that.remainingHits == 0
}
