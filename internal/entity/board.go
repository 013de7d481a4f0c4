package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/seabattle/internal/apperror"
)

type CellState uint8

const (
	CellEmpty CellState = iota
	CellOccupied
	CellHit
	CellMiss
)

const (
	glyphEmpty    = " "
	glyphOccupied = "▆"
	glyphHit      = "X"
	glyphMiss     = "T"
)

// titleWidth is the width the board title is centered in.
const titleWidth = 15

// Board owns a grid and every vessel placed on it.
type Board struct {
	title            string
	grid             [BoardSize][BoardSize]CellState
	vessels          []*Vessel
	remainingVessels int
	revealVessels    bool
}

// NewBoard creates an empty board. revealVessels controls what String shows.
func NewBoard(title string, revealVessels bool) *Board {
	return &Board{
		title:         title,
		revealVessels: revealVessels,
	}
}

// PlaceVessel adds the vessel if none of its cells is blocked and all of them are on the grid.
// The overlap check runs first, so a vessel failing both reports ErrOverlap.
func (that *Board) PlaceVessel(vessel *Vessel) error {
	blocked := that.blockedSet()
	for _, cell := range vessel.cells {
		if _, ok := blocked[cell]; ok {
			return fmt.Errorf("%w: cell %s", apperror.ErrOverlap, cell)
		}
	}

	for _, cell := range vessel.cells {
		if !cell.InBounds() {
			return fmt.Errorf("%w: cell %d,%d", apperror.ErrOutOfBounds, cell.Row, cell.Col)
		}
	}

	that.vessels = append(that.vessels, vessel)
	that.remainingVessels++
	for _, cell := range vessel.cells {
		that.grid[cell.Row][cell.Col] = CellOccupied
	}

	return nil
}

// BlockedZone returns every vessel cell and its 8 neighbours, deduplicated, in discovery order.
func (that *Board) BlockedZone() []Coordinate {
	seen := make(map[Coordinate]struct{})
	zone := make([]Coordinate, 0)

	for _, vessel := range that.vessels {
		for _, cell := range vessel.cells {
			for _, near := range cell.neighbourhood() {
				if _, ok := seen[near]; ok {
					continue
				}
				seen[near] = struct{}{}
				zone = append(zone, near)
			}
		}
	}

	return zone
}

func (that *Board) IsBlocked(target Coordinate) bool {
	_, ok := that.blockedSet()[target]
	return ok
}

func (that *Board) blockedSet() map[Coordinate]struct{} {
	zone := that.BlockedZone()

	blocked := make(map[Coordinate]struct{}, len(zone))
	for _, cell := range zone {
		blocked[cell] = struct{}{}
	}

	return blocked
}

// ResolveShot fires at target and reports whether a vessel was hit.
func (that *Board) ResolveShot(target Coordinate) (bool, error) {
	if !target.InBounds() {
		return false, fmt.Errorf("%w: cell %d,%d", apperror.ErrOutOfBounds, target.Row, target.Col)
	}

	switch that.grid[target.Row][target.Col] {
	case CellOccupied:
		that.grid[target.Row][target.Col] = CellHit
		for _, vessel := range that.vessels {
			if !vessel.Contains(target) {
				continue
			}
			if vessel.takeHit() {
				that.remainingVessels--
			}
			break
		}

		return true, nil
	case CellEmpty:
		that.grid[target.Row][target.Col] = CellMiss

		return false, nil
	default:
		return false, fmt.Errorf("%w: cell %s", apperror.ErrAlreadyShot, target)
	}
}

// Reset empties the grid and drops every vessel.
func (that *Board) Reset() {
	that.grid = [BoardSize][BoardSize]CellState{}
	that.vessels = nil
	that.remainingVessels = 0
}

// State returns the state of an on-grid cell; off-grid cells read as empty.
func (that *Board) State(target Coordinate) CellState {
	if !target.InBounds() {
		return CellEmpty
	}

	return that.grid[target.Row][target.Col]
}

// IsTried reports whether the cell has already been shot at.
func (that *Board) IsTried(target Coordinate) bool {
	state := that.State(target)
	return state == CellHit || state == CellMiss
}

func (that *Board) Vessels() []*Vessel {
	vessels := make([]*Vessel, len(that.vessels))
	copy(vessels, that.vessels)

	return vessels
}

func (that *Board) RemainingVessels() int {
	return that.remainingVessels
}

func (that *Board) OccupiedCount() int {
	count := 0
	for _, vessel := range that.vessels {
		count += vessel.Len()
	}

	return count
}

func (that *Board) Title() string {
	return that.title
}

// Render draws the grid with 1-indexed headers. Occupied cells are hidden unless showVessels is set.
func (that *Board) Render(showVessels bool) string {
	var sb strings.Builder

	sb.WriteString(center(that.title, titleWidth))
	sb.WriteString("\n |")
	for col := range BoardSize {
		sb.WriteString(strconv.Itoa(col + 1))
		sb.WriteString("|")
	}
	sb.WriteString("\n")

	for row := range BoardSize {
		sb.WriteString(strconv.Itoa(row + 1))
		sb.WriteString("|")
		for col := range BoardSize {
			sb.WriteString(glyph(that.grid[row][col], showVessels))
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (that *Board) String() string {
	return that.Render(that.revealVessels)
}

func glyph(state CellState, showVessels bool) string {
	switch state {
	case CellHit:
		return glyphHit
	case CellMiss:
		return glyphMiss
	case CellOccupied:
		if showVessels {
			return glyphOccupied
		}
		return glyphEmpty
	default:
		return glyphEmpty
	}
}

func center(text string, width int) string {
	pad := width - len([]rune(text))
	if pad <= 0 {
		return text
	}

	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
