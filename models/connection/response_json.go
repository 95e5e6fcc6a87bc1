package connection

import (
	mb "github.com/saeidalz13/battleship-arcade/models/battleship"
)

const (
	ResultMiss            = "miss"
	ResultHit             = "hit"
	ResultAlreadyAttacked = "already_attacked"
	ResultHitAndGameOver  = "hit_and_game_over"
)

type RespGameCreated struct {
	GameUuid string `json:"game_uuid"`
}

type RespPlacement struct {
	X              int    `json:"x"`
	Y              int    `json:"y"`
	Length         int    `json:"length"`
	Orientation    string `json:"orientation"`
	FleetIndex     int    `json:"fleet_index"`
	NextShipLength int    `json:"next_ship_length,omitempty"`
	ShipsToPlace   int    `json:"ships_to_place"`
	State          string `json:"state"`
}

func NewRespPlacement(report mb.PlacementReport) RespPlacement {
	return RespPlacement{
		X:              report.Placement.Origin.X,
		Y:              report.Placement.Origin.Y,
		Length:         report.Placement.Length,
		Orientation:    report.Placement.Orientation.String(),
		FleetIndex:     report.FleetIndex,
		NextShipLength: report.NextShipLength,
		ShipsToPlace:   report.ShipsToPlace,
		State:          report.State.String(),
	}
}

type RespPreview struct {
	Cells       []mb.Coordinates `json:"cells"`
	Valid       bool             `json:"valid"`
	Length      int              `json:"length"`
	Orientation string           `json:"orientation"`
}

func NewRespPreview(preview mb.PlacementPreview) RespPreview {
	return RespPreview{
		Cells:       preview.Cells,
		Valid:       preview.Valid,
		Length:      preview.Length,
		Orientation: preview.Oriented.String(),
	}
}

type RespOrientation struct {
	Orientation string `json:"orientation"`
}

type RespShot struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Result string `json:"result"`
}

type RespAttack struct {
	RespShot
	ComputerShot           *RespShot `json:"computer_shot,omitempty"`
	Score                  int       `json:"score"`
	Turns                  int       `json:"turns"`
	PlayerShipsRemaining   int       `json:"player_ships_remaining"`
	ComputerShipsRemaining int       `json:"computer_ships_remaining"`
	GameOver               bool      `json:"game_over"`
	Winner                 string    `json:"winner,omitempty"`
	Message                string    `json:"message"`
}

func NewRespAttack(report mb.AttackReport, game *mb.Game) RespAttack {
	resp := RespAttack{
		RespShot: RespShot{
			X:      report.Shot.Target.X,
			Y:      report.Shot.Target.Y,
			Result: shotResult(report.Shot.Outcome, report.GameOver && report.ComputerShot == nil),
		},
		Score:                  report.Score,
		Turns:                  report.Turns,
		PlayerShipsRemaining:   game.Human().ShipCellsRemaining(),
		ComputerShipsRemaining: game.Computer().ShipCellsRemaining(),
		GameOver:               report.GameOver,
		Message:                game.Message(),
	}
	if report.ComputerShot != nil {
		resp.ComputerShot = &RespShot{
			X:      report.ComputerShot.Target.X,
			Y:      report.ComputerShot.Target.Y,
			Result: shotResult(report.ComputerShot.Outcome, report.GameOver),
		}
	}
	if report.Winner != mb.SideNone {
		resp.Winner = report.Winner.String()
	}
	return resp
}

// shotResult names an outcome; a hit that ends the match is
// reported as such.
func shotResult(outcome mb.AttackOutcome, ended bool) string {
	switch outcome {
	case mb.OutcomeHit:
		if ended {
			return ResultHitAndGameOver
		}
		return ResultHit
	case mb.OutcomeAlreadyAttacked:
		return ResultAlreadyAttacked
	}
	return ResultMiss
}

type RespState struct {
	View                   string     `json:"view"`
	GameUuid               string     `json:"game_uuid,omitempty"`
	State                  string     `json:"state,omitempty"`
	Score                  int        `json:"score"`
	Turns                  int        `json:"turns"`
	Message                string     `json:"message,omitempty"`
	Winner                 string     `json:"winner,omitempty"`
	Orientation            string     `json:"orientation,omitempty"`
	FleetIndex             int        `json:"fleet_index"`
	CurrentShipLength      int        `json:"current_ship_length,omitempty"`
	ShipsToPlace           int        `json:"ships_to_place"`
	PlayerBoard            [][]string `json:"player_board,omitempty"`
	PlayerAttackGrid       [][]string `json:"player_attack_grid,omitempty"`
	ComputerAttackGrid     [][]string `json:"computer_attack_grid,omitempty"`
	PlayerShipsRemaining   int        `json:"player_ships_remaining"`
	ComputerShipsRemaining int        `json:"computer_ships_remaining"`
}

func NewRespState(view string, snap mb.Snapshot) RespState {
	resp := RespState{
		View:                   view,
		GameUuid:               snap.Uuid,
		State:                  snap.State.String(),
		Score:                  snap.Score,
		Turns:                  snap.Turns,
		Message:                snap.Message,
		Orientation:            snap.Orientation.String(),
		FleetIndex:             snap.FleetIndex,
		CurrentShipLength:      snap.CurrentShipLength,
		ShipsToPlace:           snap.ShipsToPlace,
		PlayerBoard:            stringGrid(snap.PlayerBoard),
		PlayerAttackGrid:       stringGrid(snap.PlayerAttackGrid),
		ComputerAttackGrid:     stringGrid(snap.ComputerAttackGrid),
		PlayerShipsRemaining:   snap.PlayerShipsRemaining,
		ComputerShipsRemaining: snap.ComputerShipsRemaining,
	}
	if snap.Winner != mb.SideNone {
		resp.Winner = snap.Winner.String()
	}
	return resp
}

func stringGrid[T interface{ String() string }](grid [][]T) [][]string {
	out := make([][]string, len(grid))
	for y := range grid {
		out[y] = make([]string, len(grid[y]))
		for x, cell := range grid[y] {
			out[y][x] = cell.String()
		}
	}
	return out
}

type RespEndGame struct {
	Winner     string `json:"winner"`
	FinalScore int    `json:"final_score"`
	Message    string `json:"message"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
