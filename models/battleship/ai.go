package battleship

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	cerr "github.com/saeidalz13/battleship-arcade/internal/error"
)

type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionRight
	DirectionDown
	DirectionLeft
)

// Order in which a hunt probes around its anchor.
var huntOrder = [4]Direction{DirectionUp, DirectionRight, DirectionDown, DirectionLeft}

func (d Direction) Step(c Coordinates) Coordinates {
	switch d {
	case DirectionUp:
		return NewCoordinates(c.X, c.Y+1)
	case DirectionRight:
		return NewCoordinates(c.X+1, c.Y)
	case DirectionDown:
		return NewCoordinates(c.X, c.Y-1)
	case DirectionLeft:
		return NewCoordinates(c.X-1, c.Y)
	}
	return c
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	}
	return "none"
}

// TargetingMode selects where a hunt steps from once a
// direction is set.
type TargetingMode uint8

const (
	// Always step from the anchor. After a hit along a
	// direction the next step lands on an attacked cell, so
	// the hunt falls back to probing the next direction.
	TargetingAnchor TargetingMode = iota
	// Step from the most recent hit of the streak, walking
	// along the ship.
	TargetingAdvance
)

func ParseTargetingMode(s string) (TargetingMode, bool) {
	switch s {
	case "anchor", "":
		return TargetingAnchor, true
	case "advance":
		return TargetingAdvance, true
	}
	return TargetingAnchor, false
}

func (m TargetingMode) String() string {
	if m == TargetingAdvance {
		return "advance"
	}
	return "anchor"
}

// AttackHistory is what the AI needs to know about its own
// past shots.
type AttackHistory interface {
	Size() int
	IsAttacked(c Coordinates) bool
	Unattacked() []Coordinates
}

type AIMode uint8

const (
	AISearching AIMode = iota
	AIHunting
)

func (m AIMode) String() string {
	if m == AIHunting {
		return "hunting"
	}
	return "searching"
}

// Read-only view of the targeting state.
type AIState struct {
	Mode      AIMode
	Anchor    *Coordinates
	Streak    []Coordinates
	Direction Direction
	Tried     []Direction
}

type TargetingAI struct {
	rng    *rand.Rand
	mode   TargetingMode
	logger *log.Logger

	anchor    *Coordinates
	streak    []Coordinates
	direction Direction
	tried     map[Direction]bool
}

func NewTargetingAI(rng *rand.Rand, mode TargetingMode, logger *log.Logger) *TargetingAI {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &TargetingAI{
		rng:    rng,
		mode:   mode,
		logger: logger,
		tried:  make(map[Direction]bool, len(huntOrder)),
	}
}

func (ai *TargetingAI) Reset() {
	ai.anchor = nil
	ai.streak = nil
	ai.direction = DirectionNone
	ai.tried = make(map[Direction]bool, len(huntOrder))
}

func (ai *TargetingAI) State() AIState {
	state := AIState{
		Mode:      AISearching,
		Streak:    append([]Coordinates(nil), ai.streak...),
		Direction: ai.direction,
	}
	if ai.anchor != nil {
		anchor := *ai.anchor
		state.Anchor = &anchor
		state.Mode = AIHunting
	}
	for _, d := range huntOrder {
		if ai.tried[d] {
			state.Tried = append(state.Tried, d)
		}
	}
	return state
}

// NextTarget picks the next position to fire at. It never
// returns a position already present in history.
func (ai *TargetingAI) NextTarget(history AttackHistory) (Coordinates, error) {
	if ai.anchor == nil {
		return ai.randomTarget(history)
	}
	if ai.direction == DirectionNone {
		return ai.chooseDirection(history)
	}

	next := ai.direction.Step(ai.stepBase())
	if isOpen(history, next) {
		ai.logger.Debug("ai [follow]", "direction", ai.direction, "x", next.X, "y", next.Y)
		return next, nil
	}

	ai.direction = DirectionNone
	return ai.chooseDirection(history)
}

// Update feeds the result of the last shot back into the hunt.
func (ai *TargetingAI) Update(c Coordinates, hit bool) {
	if hit {
		if ai.anchor == nil {
			anchor := c
			ai.anchor = &anchor
		}
		ai.streak = append(ai.streak, c)
		return
	}

	if ai.direction != DirectionNone {
		ai.direction = DirectionNone
	}
	if len(ai.streak) == 0 {
		ai.anchor = nil
	}
}

func (ai *TargetingAI) stepBase() Coordinates {
	if ai.mode == TargetingAdvance && len(ai.streak) > 0 {
		return ai.streak[len(ai.streak)-1]
	}
	return *ai.anchor
}

func (ai *TargetingAI) chooseDirection(history AttackHistory) (Coordinates, error) {
	for _, d := range huntOrder {
		if ai.tried[d] {
			continue
		}
		next := d.Step(*ai.anchor)
		if isOpen(history, next) {
			ai.direction = d
			ai.tried[d] = true
			ai.logger.Debug("ai [choose direction]", "direction", d, "x", next.X, "y", next.Y)
			return next, nil
		}
	}

	ai.logger.Debug("ai [hunt exhausted]", "anchor_x", ai.anchor.X, "anchor_y", ai.anchor.Y)
	ai.Reset()
	return ai.randomTarget(history)
}

func (ai *TargetingAI) randomTarget(history AttackHistory) (Coordinates, error) {
	size := history.Size()

	// Rejection sampling stays cheap while the grid is mostly
	// open; past the budget the open cells are enumerated.
	budget := size * size * 4
	for i := 0; i < budget; i++ {
		c := NewCoordinates(ai.rng.Intn(size), ai.rng.Intn(size))
		if !history.IsAttacked(c) {
			return c, nil
		}
	}

	free := history.Unattacked()
	if len(free) == 0 {
		return Coordinates{}, cerr.ErrNoTargetsLeft
	}
	return free[ai.rng.Intn(len(free))], nil
}

func isOpen(history AttackHistory, c Coordinates) bool {
	return c.inBounds(history.Size()) && !history.IsAttacked(c)
}
