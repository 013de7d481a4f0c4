package usecase

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/seabattle/internal/apperror"
	"github.com/rocketscienceinc/seabattle/internal/entity"
	"github.com/rocketscienceinc/seabattle/internal/seabattle"
)

func describeError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidMoveFormat):
		return "Invalid move: type two digits from 1 to 6, row then column."
	case errors.Is(err, apperror.ErrAlreadyShot):
		return "That cell has already been shot at."
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "That shot is off the board."
	default:
		return fmt.Sprintf("Move rejected: %v", err)
	}
}

func describeTurn(result seabattle.TurnResult) string {
	who := "You"
	if result.Side == entity.SideBot {
		who = "Bot"
	}

	switch {
	case result.Finished:
		return fmt.Sprintf("%s fired at %s: hit, last vessel sunk.", who, result.Target)
	case result.Sunk:
		return fmt.Sprintf("%s fired at %s: hit and sunk. Shoot again.", who, result.Target)
	case result.Hit:
		return fmt.Sprintf("%s fired at %s: hit. Shoot again.", who, result.Target)
	default:
		return fmt.Sprintf("%s fired at %s: miss. Turn passes.", who, result.Target)
	}
}

func describeOutcome(winner entity.Side) string {
	if winner == entity.SideHuman {
		return "You won!"
	}

	return "The bot won."
}
