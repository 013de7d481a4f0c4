package seabattle

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/seabattle/internal/apperror"
	"github.com/rocketscienceinc/seabattle/internal/entity"
)

// TurnResult describes one resolved shot.
type TurnResult struct {
	Side     entity.Side
	Target   entity.Coordinate
	Hit      bool
	Sunk     bool
	Finished bool
	Winner   entity.Side
}

// MatchController alternates turns between a human and a bot until one fleet is gone.
// The human moves first.
type MatchController struct {
	combatants map[entity.Side]Combatant
	shots      map[entity.Side]int

	active entity.Side
	status string
	winner entity.Side
	turns  int
}

func NewMatchController(human, bot Combatant) *MatchController {
	return &MatchController{
		combatants: map[entity.Side]Combatant{
			entity.SideHuman: human,
			entity.SideBot:   bot,
		},
		shots: map[entity.Side]int{
			entity.SideHuman: 0,
			entity.SideBot:   0,
		},
		active: entity.SideHuman,
		status: entity.StatusInProgress,
	}
}

// Step plays a single turn for the active side. On error nothing changes and the same side
// is expected to try again.
func (that *MatchController) Step() (TurnResult, error) {
	if that.IsFinished() {
		return TurnResult{}, apperror.ErrMatchFinished
	}

	side := that.active
	combatant := that.combatants[side]

	target, err := combatant.SelectTarget()
	if err != nil {
		return TurnResult{}, fmt.Errorf("%s failed to select target: %w", side, err)
	}

	board := combatant.Target()
	remaining := board.RemainingVessels()

	hit, err := board.ResolveShot(target)
	if err != nil {
		return TurnResult{}, fmt.Errorf("%s failed to shoot at %s: %w", side, target, err)
	}

	that.turns++
	that.shots[side]++

	result := TurnResult{
		Side:   side,
		Target: target,
		Hit:    hit,
		Sunk:   board.RemainingVessels() < remaining,
	}

	that.updateMatchStatus(side, hit)

	result.Finished = that.IsFinished()
	result.Winner = that.winner

	return result, nil
}

// updateMatchStatus - checks the fleets after a shot and passes the turn on a miss.
func (that *MatchController) updateMatchStatus(side entity.Side, hit bool) {
	if that.combatants[side].Target().RemainingVessels() == 0 {
		that.status = entity.StatusFinished
		that.winner = side
		return
	}

	if !hit {
		that.active = side.Opponent()
	}
}

func (that *MatchController) Status() string {
	return that.status
}

func (that *MatchController) IsFinished() bool {
	return that.status == entity.StatusFinished
}

func (that *MatchController) Active() entity.Side {
	return that.active
}

func (that *MatchController) Winner() entity.Side {
	return that.winner
}

// Loser is the side whose fleet was destroyed, or SideNone while the match is running.
func (that *MatchController) Loser() entity.Side {
	return that.winner.Opponent()
}

func (that *MatchController) Turns() int {
	return that.turns
}

func (that *MatchController) Shots(side entity.Side) int {
	return that.shots[side]
}

// HumanBoard is the board the bot shoots at.
func (that *MatchController) HumanBoard() *entity.Board {
	return that.combatants[entity.SideBot].Target()
}

// BotBoard is the board the human shoots at.
func (that *MatchController) BotBoard() *entity.Board {
	return that.combatants[entity.SideHuman].Target()
}

// IsRecoverable reports whether the error only voids the current attempt, so the same side may retry.
func IsRecoverable(err error) bool {
	return errors.Is(err, apperror.ErrOutOfBounds) ||
		errors.Is(err, apperror.ErrAlreadyShot) ||
		errors.Is(err, apperror.ErrInvalidMoveFormat)
}
