package entity

import "errors"

var (
	ErrEmptyMatchID     = errors.New("match id is empty")
	ErrMatchNotFinished = errors.New("match is not finished")
	ErrUnknownSide      = errors.New("unknown side")
)
