package battleship

import (
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-arcade/internal/error"
)

type Side uint8

const (
	SideNone Side = iota
	SideHuman
	SideComputer
)

func (s Side) String() string {
	switch s {
	case SideHuman:
		return "human"
	case SideComputer:
		return "computer"
	}
	return "none"
}

// Player is one side of a match: its own board, what it
// knows about the opponent and how many of its ship cells
// are still afloat.
type Player struct {
	uuid               string
	side               Side
	board              *Board
	attackGrid         *GuessGrid
	shipCellsRemaining int
}

func NewPlayer(side Side, gridSize int, fleet Fleet) *Player {
	return &Player{
		uuid:               uuid.NewString()[:10],
		side:               side,
		board:              NewBoard(gridSize),
		attackGrid:         NewGuessGrid(gridSize),
		shipCellsRemaining: fleet.TotalCells(),
	}
}

func (p *Player) Uuid() string {
	return p.uuid
}

func (p *Player) Side() Side {
	return p.side
}

func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) AttackGrid() *GuessGrid {
	return p.attackGrid
}

func (p *Player) ShipCellsRemaining() int {
	return p.shipCellsRemaining
}

func (p *Player) IsLoser() bool {
	return p.shipCellsRemaining == 0
}

// HitShipCell takes one cell off the afloat count. A hit on a
// player with nothing afloat means the board and the count
// disagree.
func (p *Player) HitShipCell() error {
	if p.shipCellsRemaining == 0 {
		return cerr.ErrShipCellsExhausted(p.uuid)
	}
	p.shipCellsRemaining--
	return nil
}

func (p *Player) setBoard(b *Board) {
	p.board = b
}
