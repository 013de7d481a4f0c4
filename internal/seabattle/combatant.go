package seabattle

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/seabattle/internal/apperror"
	"github.com/rocketscienceinc/seabattle/internal/entity"
)

const moveLength = 2

// Combatant picks the next cell to shoot at on the opponent's board.
type Combatant interface {
	SelectTarget() (entity.Coordinate, error)
	Target() *entity.Board
}

// MoveSource delivers raw moves typed by a human. NextMove may block.
type MoveSource interface {
	NextMove() (string, error)
}

// ParseMove converts a 1-indexed "rowcol" string like "21" into a coordinate.
func ParseMove(move string) (entity.Coordinate, error) {
	if len(move) != moveLength {
		return entity.Coordinate{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMoveFormat, move)
	}

	row, ok := parseDigit(move[0])
	if !ok {
		return entity.Coordinate{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMoveFormat, move)
	}

	col, ok := parseDigit(move[1])
	if !ok {
		return entity.Coordinate{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMoveFormat, move)
	}

	return entity.NewCoordinate(row, col), nil
}

func parseDigit(ch byte) (int, bool) {
	if ch < '1' || ch > '0'+entity.BoardSize {
		return 0, false
	}

	return int(ch - '1'), true
}

type Human struct {
	target *entity.Board
	moves  MoveSource
}

func NewHuman(target *entity.Board, moves MoveSource) *Human {
	return &Human{
		target: target,
		moves:  moves,
	}
}

func (that *Human) Target() *entity.Board {
	return that.target
}

func (that *Human) SelectTarget() (entity.Coordinate, error) {
	raw, err := that.moves.NextMove()
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("failed to read move: %w", err)
	}

	cell, err := ParseMove(raw)
	if err != nil {
		return entity.Coordinate{}, err
	}

	if that.target.IsTried(cell) {
		return entity.Coordinate{}, fmt.Errorf("%w: cell %s", apperror.ErrAlreadyShot, cell)
	}

	return cell, nil
}

// Bot shoots at uniformly random untried cells.
type Bot struct {
	target *entity.Board
	rnd    *rand.Rand
}

func NewBot(target *entity.Board, rnd *rand.Rand) *Bot {
	return &Bot{
		target: target,
		rnd:    rnd,
	}
}

func (that *Bot) Target() *entity.Board {
	return that.target
}

func (that *Bot) SelectTarget() (entity.Coordinate, error) {
	if !hasUntried(that.target) {
		return entity.Coordinate{}, apperror.ErrNoTargetsLeft
	}

	for {
		cell := entity.NewCoordinate(that.rnd.Intn(entity.BoardSize), that.rnd.Intn(entity.BoardSize))
		if !that.target.IsTried(cell) {
			return cell, nil
		}
	}
}

func hasUntried(board *entity.Board) bool {
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if !board.IsTried(entity.NewCoordinate(row, col)) {
				return true
			}
		}
	}

	return false
}
