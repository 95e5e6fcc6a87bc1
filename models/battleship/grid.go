package battleship

import (
	cerr "github.com/saeidalz13/battleship-arcade/internal/error"
)

const DefaultGridSize int = 10

// State of a single position in a player's own board.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss
)

func (c CellState) String() string {
	switch c {
	case CellShip:
		return "ship"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		return "empty"
	}
}

// State of a single position in the grid an attacker keeps
// about the opponent's board.
type GuessState uint8

const (
	GuessUnknown GuessState = iota
	GuessMiss
	GuessHit
)

func (g GuessState) String() string {
	switch g {
	case GuessMiss:
		return "miss"
	case GuessHit:
		return "hit"
	default:
		return "unknown"
	}
}

type AttackOutcome uint8

const (
	OutcomeMiss AttackOutcome = iota
	OutcomeHit
	OutcomeAlreadyAttacked
)

func (o AttackOutcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeAlreadyAttacked:
		return "already_attacked"
	default:
		return "miss"
	}
}

// X is the column and Y is the row.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) inBounds(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// Board holds one side's fleet. Cells only move
// Empty->Ship while placing and Ship->Hit or Empty->Miss
// while fighting.
type Board struct {
	size  int
	cells [][]CellState
}

func NewBoard(size int) *Board {
	cells := make([][]CellState, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]CellState, size)
	}
	return &Board{size: size, cells: cells}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(c Coordinates) bool {
	return c.inBounds(b.size)
}

// Cell returns CellEmpty for anything off the board.
func (b *Board) Cell(c Coordinates) CellState {
	if !b.InBounds(c) {
		return CellEmpty
	}
	return b.cells[c.Y][c.X]
}

func (b *Board) CanPlace(req PlacementRequest) bool {
	if req.Length <= 0 {
		return false
	}
	for _, c := range req.Cells() {
		if !b.InBounds(c) || b.cells[c.Y][c.X] != CellEmpty {
			return false
		}
	}
	return true
}

func (b *Board) Place(req PlacementRequest) error {
	if !b.CanPlace(req) {
		return cerr.ErrShipPlacementInvalid(req.Origin.X, req.Origin.Y, req.Length, req.Orientation.String())
	}
	for _, c := range req.Cells() {
		b.cells[c.Y][c.X] = CellShip
	}
	return nil
}

func (b *Board) Attack(c Coordinates) (AttackOutcome, error) {
	if !b.InBounds(c) {
		return OutcomeMiss, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}

	switch b.cells[c.Y][c.X] {
	case CellShip:
		b.cells[c.Y][c.X] = CellHit
		return OutcomeHit, nil
	case CellEmpty:
		b.cells[c.Y][c.X] = CellMiss
		return OutcomeMiss, nil
	default:
		return OutcomeAlreadyAttacked, nil
	}
}

// Number of ship cells that have not been hit yet.
func (b *Board) ShipCellsRemaining() int {
	var n int
	for y := range b.cells {
		for _, c := range b.cells[y] {
			if c == CellShip {
				n++
			}
		}
	}
	return n
}

func (b *Board) Clone() *Board {
	clone := NewBoard(b.size)
	for y := range b.cells {
		copy(clone.cells[y], b.cells[y])
	}
	return clone
}

// Cells returns a copy indexed as [y][x].
func (b *Board) Cells() [][]CellState {
	return b.Clone().cells
}

type GuessGrid struct {
	size     int
	cells    [][]GuessState
	attacked int
}

func NewGuessGrid(size int) *GuessGrid {
	cells := make([][]GuessState, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]GuessState, size)
	}
	return &GuessGrid{size: size, cells: cells}
}

func (g *GuessGrid) Size() int {
	return g.size
}

func (g *GuessGrid) InBounds(c Coordinates) bool {
	return c.inBounds(g.size)
}

func (g *GuessGrid) State(c Coordinates) GuessState {
	if !g.InBounds(c) {
		return GuessUnknown
	}
	return g.cells[c.Y][c.X]
}

func (g *GuessGrid) IsAttacked(c Coordinates) bool {
	return g.State(c) != GuessUnknown
}

// Record stores the result of a resolved shot. A position
// is recorded once; a second record is rejected.
func (g *GuessGrid) Record(c Coordinates, outcome AttackOutcome) error {
	if !g.InBounds(c) {
		return cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	if g.cells[c.Y][c.X] != GuessUnknown {
		return cerr.ErrAttackPositionAlreadyFilled(c.X, c.Y)
	}

	switch outcome {
	case OutcomeHit:
		g.cells[c.Y][c.X] = GuessHit
	case OutcomeMiss:
		g.cells[c.Y][c.X] = GuessMiss
	default:
		return cerr.ErrAttackPositionAlreadyFilled(c.X, c.Y)
	}
	g.attacked++
	return nil
}

func (g *GuessGrid) Attacked() int {
	return g.attacked
}

func (g *GuessGrid) Unattacked() []Coordinates {
	free := make([]Coordinates, 0, g.size*g.size-g.attacked)
	for y := range g.cells {
		for x, s := range g.cells[y] {
			if s == GuessUnknown {
				free = append(free, NewCoordinates(x, y))
			}
		}
	}
	return free
}

// Cells returns a copy indexed as [y][x].
func (g *GuessGrid) Cells() [][]GuessState {
	out := make([][]GuessState, g.size)
	for y := range g.cells {
		out[y] = make([]GuessState, g.size)
		copy(out[y], g.cells[y])
	}
	return out
}
