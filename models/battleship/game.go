package battleship

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-arcade/internal/error"
	"github.com/saeidalz13/battleship-arcade/internal/i18n"
	"github.com/saeidalz13/battleship-arcade/internal/random"
	"golang.org/x/text/message"
)

const (
	ScoreHit      = 100
	ScoreMiss     = -10
	ScoreWinBonus = 1000
	DefaultPlayer = "Player"
)

type MatchState uint8

const (
	StatePlacingShips MatchState = iota
	StatePlayerTurn
	StateComputerTurn
	StateGameOver
)

func (s MatchState) String() string {
	switch s {
	case StatePlayerTurn:
		return "player_turn"
	case StateComputerTurn:
		return "computer_turn"
	case StateGameOver:
		return "game_over"
	}
	return "placing_ships"
}

// ShotReport describes one resolved shot.
type ShotReport struct {
	Target  Coordinates
	Outcome AttackOutcome
}

type AttackReport struct {
	Shot ShotReport
	// nil when the match ended on the human's shot or the
	// shot was already attacked
	ComputerShot *ShotReport
	GameOver     bool
	Winner       Side
	Score        int
	Turns        int
}

type PlacementReport struct {
	Placement      PlacementRequest
	FleetIndex     int
	NextShipLength int
	ShipsToPlace   int
	State          MatchState
}

type PlacementPreview struct {
	Cells    []Coordinates
	Valid    bool
	Length   int
	Oriented Orientation
}

// Snapshot is a read-only copy of everything a renderer needs.
// The computer's board is only visible through the human's
// attack grid.
type Snapshot struct {
	Uuid                   string
	State                  MatchState
	Score                  int
	Turns                  int
	Message                string
	Winner                 Side
	Orientation            Orientation
	FleetIndex             int
	CurrentShipLength      int
	ShipsToPlace           int
	PlayerBoard            [][]CellState
	PlayerAttackGrid       [][]GuessState
	ComputerAttackGrid     [][]GuessState
	PlayerShipsRemaining   int
	ComputerShipsRemaining int
}

type Option func(*Game) error

// Game is the match controller. It is not safe for concurrent
// use; the human's shot and the computer's reply are resolved
// within a single Attack call.
type Game struct {
	uuid        string
	gridSize    int
	fleet       Fleet
	rng         *rand.Rand
	placer      Placer
	targeting   TargetingMode
	logger      *log.Logger
	printer     *message.Printer
	playerName  string
	maxAttempts int

	state          MatchState
	human          *Player
	computer       *Player
	ai             *TargetingAI
	fleetIndex     int
	orientation    Orientation
	score          int
	turns          int
	message        string
	winner         Side
	penaltyApplied bool
}

// NewGame builds a match in the ship placement phase. Without
// WithRand or WithSeed the computer's fleet and shots come from a
// freshly crypto-seeded generator.
func NewGame(optFuncs ...Option) (*Game, error) {
	game := Game{
		uuid:        uuid.NewString()[:6],
		gridSize:    DefaultGridSize,
		fleet:       DefaultFleet.Clone(),
		targeting:   TargetingAnchor,
		playerName:  DefaultPlayer,
		maxAttempts: DefaultMaxPlacementAttempts,
	}
	for _, opt := range optFuncs {
		if err := opt(&game); err != nil {
			return nil, err
		}
	}

	if game.rng == nil {
		rng, _, err := random.NewRand(0)
		if err != nil {
			return nil, err
		}
		game.rng = rng
	}
	if game.logger == nil {
		game.logger = log.New(io.Discard)
	}
	if game.printer == nil {
		game.printer = i18n.Printer(i18n.Default())
	}
	if game.placer == nil {
		game.placer = NewRandomPlacer(game.rng, game.maxAttempts)
	}

	game.Reset()
	return &game, nil
}

func WithGridSize(size int) Option {
	return func(g *Game) error {
		if size <= 0 {
			return cerr.ErrConfigField("grid size", "must be positive")
		}
		g.gridSize = size
		return nil
	}
}

func WithFleet(fleet Fleet) Option {
	return func(g *Game) error {
		if len(fleet) == 0 {
			return cerr.ErrConfigField("fleet", "must not be empty")
		}
		for _, length := range fleet {
			if length <= 0 {
				return cerr.ErrConfigField("fleet", fmt.Sprintf("has non-positive length %d", length))
			}
		}
		g.fleet = fleet.Clone()
		return nil
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) error {
		g.rng = rng
		return nil
	}
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithOpponentPlacer replaces the random placement of the
// computer's fleet.
func WithOpponentPlacer(placer Placer) Option {
	return func(g *Game) error {
		g.placer = placer
		return nil
	}
}

func WithMaxPlacementAttempts(attempts int) Option {
	return func(g *Game) error {
		if attempts <= 0 {
			return cerr.ErrConfigField("max placement attempts", "must be positive")
		}
		g.maxAttempts = attempts
		return nil
	}
}

func WithTargetingMode(mode TargetingMode) Option {
	return func(g *Game) error {
		g.targeting = mode
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(g *Game) error {
		g.logger = logger
		return nil
	}
}

func WithPrinter(printer *message.Printer) Option {
	return func(g *Game) error {
		g.printer = printer
		return nil
	}
}

func WithPlayerName(name string) Option {
	return func(g *Game) error {
		if name != "" {
			g.playerName = name
		}
		return nil
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) State() MatchState {
	return g.state
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) Message() string {
	return g.message
}

func (g *Game) Winner() Side {
	return g.winner
}

func (g *Game) Orientation() Orientation {
	return g.orientation
}

func (g *Game) FleetIndex() int {
	return g.fleetIndex
}

func (g *Game) Fleet() Fleet {
	return g.fleet.Clone()
}

func (g *Game) Human() *Player {
	return g.human
}

func (g *Game) Computer() *Player {
	return g.computer
}

func (g *Game) AI() *TargetingAI {
	return g.ai
}

// Reset reinitializes boards, counters, AI, score and turns
// and goes back to ship placement. The match keeps its uuid.
func (g *Game) Reset() {
	g.human = NewPlayer(SideHuman, g.gridSize, g.fleet)
	g.computer = NewPlayer(SideComputer, g.gridSize, g.fleet)
	g.ai = NewTargetingAI(g.rng, g.targeting, g.logger)

	g.state = StatePlacingShips
	g.fleetIndex = 0
	g.orientation = Horizontal
	g.score = 0
	g.turns = 0
	g.winner = SideNone
	g.penaltyApplied = false
	g.message = g.placementMessage()

	g.logger.Debug("game [reset]", "game", g.uuid, "grid", g.gridSize, "fleet", g.fleet)
}

func (g *Game) ToggleOrientation() (Orientation, error) {
	if g.state != StatePlacingShips {
		return g.orientation, cerr.ErrMatchWrongState("toggle orientation", g.state.String())
	}
	g.orientation = g.orientation.Toggle()
	return g.orientation, nil
}

// PreviewPlacement reports where the current ship would land
// with the current orientation without touching the board.
func (g *Game) PreviewPlacement(origin Coordinates) (PlacementPreview, error) {
	if g.state != StatePlacingShips {
		return PlacementPreview{}, cerr.ErrMatchWrongState("preview placement", g.state.String())
	}

	req := NewPlacementRequest(origin, g.fleet[g.fleetIndex], g.orientation)
	return PlacementPreview{
		Cells:    req.Cells(),
		Valid:    g.human.board.CanPlace(req),
		Length:   req.Length,
		Oriented: req.Orientation,
	}, nil
}

// PlaceShip places the next ship of the human's fleet. Placing
// the last one also places the computer's fleet and starts the
// battle; both fleets are committed together or not at all.
func (g *Game) PlaceShip(origin Coordinates, orientation Orientation) (PlacementReport, error) {
	if g.state != StatePlacingShips {
		return PlacementReport{}, cerr.ErrMatchWrongState("place ship", g.state.String())
	}

	req := NewPlacementRequest(origin, g.fleet[g.fleetIndex], orientation)
	if !g.human.board.CanPlace(req) {
		return PlacementReport{}, cerr.ErrShipPlacementInvalid(origin.X, origin.Y, req.Length, orientation.String())
	}

	if g.fleetIndex+1 < len(g.fleet) {
		if err := g.human.board.Place(req); err != nil {
			return PlacementReport{}, err
		}
		g.fleetIndex++
		g.message = g.placementMessage()
		return g.placementReport(req), nil
	}

	staged := g.human.board.Clone()
	if err := staged.Place(req); err != nil {
		return PlacementReport{}, err
	}
	opponent := NewBoard(g.gridSize)
	if err := g.placer.PlaceFleet(opponent, g.fleet); err != nil {
		g.logger.Error("game [opponent placement]", "game", g.uuid, "err", err)
		return PlacementReport{}, fmt.Errorf("place opponent fleet: %w", err)
	}

	g.human.setBoard(staged)
	g.computer.setBoard(opponent)
	g.fleetIndex++
	g.state = StatePlayerTurn
	g.message = g.printer.Sprintf(i18n.KeyAllPlaced)
	g.logger.Info("game [battle started]", "game", g.uuid)

	return g.placementReport(req), nil
}

func (g *Game) placementReport(req PlacementRequest) PlacementReport {
	report := PlacementReport{
		Placement:    req,
		FleetIndex:   g.fleetIndex,
		ShipsToPlace: len(g.fleet) - g.fleetIndex,
		State:        g.state,
	}
	if g.fleetIndex < len(g.fleet) {
		report.NextShipLength = g.fleet[g.fleetIndex]
	}
	return report
}

func (g *Game) placementMessage() string {
	return g.printer.Sprintf(i18n.KeyPlaceShip, g.fleet[g.fleetIndex], len(g.fleet)-g.fleetIndex)
}

// Attack fires the human's shot at the computer's board and,
// unless that ends the match, lets the computer reply.
// Already attacked positions change nothing.
func (g *Game) Attack(target Coordinates) (AttackReport, error) {
	if g.state != StatePlayerTurn {
		return AttackReport{}, cerr.ErrMatchWrongState("attack", g.state.String())
	}
	if !g.computer.board.InBounds(target) {
		return AttackReport{}, cerr.ErrXorYOutOfGridBound(target.X, target.Y)
	}

	report := AttackReport{Shot: ShotReport{Target: target}}
	if g.human.attackGrid.IsAttacked(target) {
		report.Shot.Outcome = OutcomeAlreadyAttacked
		return g.fillReport(report), nil
	}

	outcome, err := g.fire(g.human, g.computer, target)
	if err != nil {
		return AttackReport{}, err
	}
	report.Shot.Outcome = outcome

	g.turns++
	if outcome == OutcomeHit {
		g.score += ScoreHit
		g.message = g.printer.Sprintf(i18n.KeyHit)
	} else {
		g.score += ScoreMiss
		g.message = g.printer.Sprintf(i18n.KeyMiss)
	}
	g.logger.Debug("game [player shot]", "game", g.uuid, "x", target.X, "y", target.Y, "outcome", outcome)

	if g.CheckGameOver() {
		return g.fillReport(report), nil
	}

	g.state = StateComputerTurn
	shot, err := g.computerTurn()
	if err != nil {
		return AttackReport{}, err
	}
	report.ComputerShot = &shot

	return g.fillReport(report), nil
}

func (g *Game) fillReport(report AttackReport) AttackReport {
	report.GameOver = g.state == StateGameOver
	report.Winner = g.winner
	report.Score = g.score
	report.Turns = g.turns
	return report
}

func (g *Game) computerTurn() (ShotReport, error) {
	target, err := g.ai.NextTarget(g.computer.attackGrid)
	if err != nil {
		return ShotReport{}, fmt.Errorf("computer target: %w", err)
	}

	outcome, err := g.fire(g.computer, g.human, target)
	if err != nil {
		return ShotReport{}, err
	}
	g.ai.Update(target, outcome == OutcomeHit)

	if outcome == OutcomeHit {
		g.message = g.printer.Sprintf(i18n.KeyComputerHit)
	} else {
		g.message = g.printer.Sprintf(i18n.KeyComputerMiss)
	}
	g.logger.Debug("game [computer shot]", "game", g.uuid, "x", target.X, "y", target.Y, "outcome", outcome)

	if !g.CheckGameOver() {
		g.state = StatePlayerTurn
	}
	return ShotReport{Target: target, Outcome: outcome}, nil
}

// fire resolves a shot on the defender's board and records it
// in the attacker's grid.
func (g *Game) fire(attacker, defender *Player, target Coordinates) (AttackOutcome, error) {
	outcome, err := defender.board.Attack(target)
	if err != nil {
		return outcome, err
	}
	if outcome == OutcomeAlreadyAttacked {
		return outcome, cerr.ErrAttackPositionAlreadyFilled(target.X, target.Y)
	}
	if err := attacker.attackGrid.Record(target, outcome); err != nil {
		return outcome, err
	}
	if outcome == OutcomeHit {
		if err := defender.HitShipCell(); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

// CheckGameOver moves the match to GameOver once a side has
// no ship cells left. The turn penalty is applied once no
// matter how often this is called.
func (g *Game) CheckGameOver() bool {
	if g.state == StateGameOver {
		return true
	}

	switch {
	case g.human.IsLoser():
		g.winner = SideComputer
		g.message = g.printer.Sprintf(i18n.KeyPlayerLost, g.playerName)
	case g.computer.IsLoser():
		g.winner = SideHuman
		g.score += ScoreWinBonus
		g.message = g.printer.Sprintf(i18n.KeyPlayerWon, g.playerName)
	default:
		return false
	}

	g.state = StateGameOver
	if !g.penaltyApplied {
		g.score -= g.turns
		g.penaltyApplied = true
	}
	g.logger.Info("game [over]", "game", g.uuid, "winner", g.winner, "score", g.score, "turns", g.turns)
	return true
}

func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Uuid:                   g.uuid,
		State:                  g.state,
		Score:                  g.score,
		Turns:                  g.turns,
		Message:                g.message,
		Winner:                 g.winner,
		Orientation:            g.orientation,
		FleetIndex:             g.fleetIndex,
		ShipsToPlace:           len(g.fleet) - g.fleetIndex,
		PlayerBoard:            g.human.board.Cells(),
		PlayerAttackGrid:       g.human.attackGrid.Cells(),
		ComputerAttackGrid:     g.computer.attackGrid.Cells(),
		PlayerShipsRemaining:   g.human.shipCellsRemaining,
		ComputerShipsRemaining: g.computer.shipCellsRemaining,
	}
	if g.fleetIndex < len(g.fleet) {
		snap.CurrentShipLength = g.fleet[g.fleetIndex]
	}
	return snap
}
