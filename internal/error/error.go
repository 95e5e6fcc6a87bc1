package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrAttackFailed    = "attack operation failed"
	ConstErrPlacementFailed = "ship placement failed"
)

var (
	ErrInvalidPlacement   = errors.New("invalid ship placement")
	ErrAlreadyAttacked    = errors.New("position already attacked")
	ErrPlacementExhausted = errors.New("ship placement attempts exhausted")
	ErrWrongState         = errors.New("operation not allowed in current match state")
	ErrOutOfGridBound     = errors.New("coordinates out of grid bound")
	ErrNoTargetsLeft      = errors.New("no unattacked position left")
	ErrGameNotExists      = errors.New("game does not exist")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrWrongView          = errors.New("operation not allowed in current view")
	ErrNoShipCellsLeft    = errors.New("no ship cells left to hit")
)

func ErrGameNotExist(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExists, gameUuid)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfGridBound, x, y)
}

func ErrAttackPositionAlreadyFilled(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrAlreadyAttacked, x, y)
}

func ErrShipPlacementInvalid(x, y, length int, orientation string) error {
	return fmt.Errorf("%w: ship of length %d at x: %d y: %d (%s) is out of bound or overlapping", ErrInvalidPlacement, length, x, y, orientation)
}

func ErrShipPlacementExhausted(length, attempts int) error {
	return fmt.Errorf("%w: could not place ship of length %d after %d attempts", ErrPlacementExhausted, length, attempts)
}

func ErrMatchWrongState(operation, state string) error {
	return fmt.Errorf("%w: %s during %s", ErrWrongState, operation, state)
}

func ErrAppWrongView(operation, view string) error {
	return fmt.Errorf("%w: %s from %s", ErrWrongView, operation, view)
}

func ErrConfigField(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, reason)
}

func ErrShipCellsExhausted(playerUuid string) error {
	return fmt.Errorf("%w, player: %s", ErrNoShipCellsLeft, playerUuid)
}
