package entity

import "strconv"

// BoardSize is the side length of the square grid.
const BoardSize = 6

// Coordinate is a 0-indexed position on the grid.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

func (that Coordinate) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// String returns the 1-indexed "rowcol" form used for move input, e.g. "11" for (0,0).
func (that Coordinate) String() string {
	return strconv.Itoa(that.Row+1) + strconv.Itoa(that.Col+1)
}

// neighbourhood returns the coordinate itself and its 8 neighbours, including off-grid ones.
func (that Coordinate) neighbourhood() []Coordinate {
	around := make([]Coordinate, 0, 9)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			around = append(around, Coordinate{Row: that.Row + dr, Col: that.Col + dc})
		}
	}

	return around
}
