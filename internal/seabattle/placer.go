package seabattle

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/seabattle/internal/apperror"
	"github.com/rocketscienceinc/seabattle/internal/entity"
)

// FleetLengths is the standard fleet, longest vessel first.
var FleetLengths = []int{3, 2, 2, 1, 1, 1, 1}

// defaultStuckAttempts is how many failed placements in a row count as a dead end for the current layout.
const defaultStuckAttempts = 1000

var orientations = []entity.Orientation{entity.Horizontal, entity.Vertical}

// RandomPlacer fills boards with the standard fleet.
type RandomPlacer struct {
	rnd           *rand.Rand
	stuckAttempts int
}

func NewRandomPlacer(rnd *rand.Rand) *RandomPlacer {
	return &RandomPlacer{
		rnd:           rnd,
		stuckAttempts: defaultStuckAttempts,
	}
}

// Fill clears the board and places the whole fleet at random. A vessel that does not fit is retried
// at another free cell; when no free cell is left, or the layout is a dead end where free cells remain
// but the current vessel fits none of them, the board is cleared and placement starts over from the
// first vessel. It returns how many times it had to start over.
func (that *RandomPlacer) Fill(board *entity.Board) int {
	board.Reset()

	restarts := 0
	placed := 0
	failures := 0
	for placed < len(FleetLengths) {
		free := freeCells(board)
		if len(free) == 0 || failures >= that.stuckAttempts {
			board.Reset()
			placed = 0
			failures = 0
			restarts++
			continue
		}

		bow := free[that.rnd.Intn(len(free))]
		orientation := orientations[that.rnd.Intn(len(orientations))]

		vessel, err := entity.NewVessel(FleetLengths[placed], bow, orientation)
		if err != nil {
			panic(fmt.Errorf("fleet generation: %w", err))
		}

		if err = board.PlaceVessel(vessel); err != nil {
			if !errors.Is(err, apperror.ErrOverlap) && !errors.Is(err, apperror.ErrOutOfBounds) {
				panic(fmt.Errorf("fleet generation: %w", err))
			}
			failures++
			continue
		}

		placed++
		failures = 0
	}

	return restarts
}

// FleetCells is how many cells the standard fleet occupies.
func FleetCells() int {
	total := 0
	for _, length := range FleetLengths {
		total += length
	}

	return total
}

// freeCells lists on-grid cells outside the blocked zone, row by row.
func freeCells(board *entity.Board) []entity.Coordinate {
	blocked := make(map[entity.Coordinate]struct{})
	for _, cell := range board.BlockedZone() {
		blocked[cell] = struct{}{}
	}

	free := make([]entity.Coordinate, 0, entity.BoardSize*entity.BoardSize)
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			cell := entity.NewCoordinate(row, col)
			if _, ok := blocked[cell]; !ok {
				free = append(free, cell)
			}
		}
	}

	return free
}
