package apperror

import "errors"

var (
	ErrOutOfBounds        = errors.New("coordinate is out of the board")
	ErrOverlap            = errors.New("vessel overlaps the blocked zone")
	ErrAlreadyShot        = errors.New("cell has already been shot")
	ErrInvalidMoveFormat  = errors.New("invalid move format")
	ErrInvalidOrientation = errors.New("invalid vessel orientation")
	ErrMatchFinished      = errors.New("match is already finished")
	ErrNoTargetsLeft      = errors.New("no untried cells left")
)
