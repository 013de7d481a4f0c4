package entity

import (
	"fmt"
	"time"
)

const (
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// Side identifies one of the two combatants of a match.
type Side string

const (
	SideNone  Side = ""
	SideHuman Side = "human"
	SideBot   Side = "bot"
)

func (that Side) Opponent() Side {
	switch that {
	case SideHuman:
		return SideBot
	case SideBot:
		return SideHuman
	default:
		return SideNone
	}
}

// MatchRecord is the summary of a finished match kept in the history.
type MatchRecord struct {
	ID         string    `json:"id"`
	Winner     Side      `json:"winner"`
	Status     string    `json:"status"`
	Turns      int       `json:"turns"`
	HumanShots int       `json:"human_shots"`
	BotShots   int       `json:"bot_shots"`
	Restarts   int       `json:"restarts,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}

func (that *MatchRecord) IsFinished() bool {
	return that.Status == StatusFinished
}

// Validate checks the record describes a finished match with a winner.
func (that *MatchRecord) Validate() error {
	if that.ID == "" {
		return ErrEmptyMatchID
	}

	if !that.IsFinished() {
		return fmt.Errorf("%w: %s", ErrMatchNotFinished, that.Status)
	}

	if that.Winner != SideHuman && that.Winner != SideBot {
		return fmt.Errorf("%w: %q", ErrUnknownSide, that.Winner)
	}

	return nil
}
