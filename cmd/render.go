package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	mb "github.com/saeidalz13/battleship-arcade/models/battleship"
	mc "github.com/saeidalz13/battleship-arcade/models/connection"
)

const boardGap = "      "

func cellIcon(state string) byte {
	switch state {
	case "ship":
		return 'B'
	case "hit":
		return 'X'
	case "miss":
		return 'o'
	}
	return '.'
}

// gridLines draws a grid with letters for rows and 1-based
// numbers for columns, y -> x.
func gridLines(title string, grid [][]string) []string {
	lines := []string{title}

	var header strings.Builder
	header.WriteString("   ")
	for x := range grid {
		fmt.Fprintf(&header, "%3d", x+1)
	}
	lines = append(lines, header.String())

	for y, row := range grid {
		var line strings.Builder
		fmt.Fprintf(&line, "%2c ", 'A'+rune(y))
		for _, cell := range row {
			line.WriteString("  ")
			line.WriteByte(cellIcon(cell))
		}
		lines = append(lines, line.String())
	}
	return lines
}

func renderBoards(w io.Writer, state mc.RespState) {
	left := gridLines("Your fleet", state.PlayerBoard)
	right := gridLines("Enemy waters", state.PlayerAttackGrid)

	width := 0
	for _, line := range left {
		width = max(width, len(line))
	}
	for i := 0; i < max(len(left), len(right)); i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		fmt.Fprintf(w, "%-*s%s%s\n", width, l, boardGap, r)
	}
}

func renderState(w io.Writer, state mc.RespState) {
	if state.GameUuid == "" {
		fmt.Fprintf(w, "view: %s\n", state.View)
		if state.View == "menu" {
			fmt.Fprintln(w, "type 'start' to begin a match")
		}
		return
	}

	renderBoards(w, state)
	fmt.Fprintf(w, "game %s  state: %s  score: %d  turns: %d\n", state.GameUuid, state.State, state.Score, state.Turns)
	fmt.Fprintf(w, "ship cells left  you: %d  computer: %d\n", state.PlayerShipsRemaining, state.ComputerShipsRemaining)
	if state.State == mb.StatePlacingShips.String() {
		fmt.Fprintf(w, "orientation: %s\n", state.Orientation)
	}
	if state.Message != "" {
		fmt.Fprintln(w, state.Message)
	}
}

// renderResponse prints one protocol response. It reports
// whether the boards are worth redrawing afterwards.
func renderResponse(w io.Writer, resp mc.Message[json.RawMessage]) (bool, error) {
	if resp.Failed() && resp.Code != mc.CodeAttack {
		fmt.Fprintf(w, "error: %s", resp.Error.Message)
		if resp.Error.ErrorDetails != "" {
			fmt.Fprintf(w, " (%s)", resp.Error.ErrorDetails)
		}
		fmt.Fprintln(w)
		return false, nil
	}

	switch resp.Code {
	case mc.CodeQueryState, mc.CodeStartGame, mc.CodeReset:
		var state mc.RespState
		if err := json.Unmarshal(resp.Payload, &state); err != nil {
			return false, err
		}
		renderState(w, state)
		return false, nil

	case mc.CodePlaceShip:
		var placed mc.RespPlacement
		if err := json.Unmarshal(resp.Payload, &placed); err != nil {
			return false, err
		}
		fmt.Fprintf(w, "placed ship of size %d at %s (%s)\n", placed.Length,
			FormatCoordinate(mb.NewCoordinates(placed.X, placed.Y)), placed.Orientation)
		return true, nil

	case mc.CodeToggleOrientation:
		var orientation mc.RespOrientation
		if err := json.Unmarshal(resp.Payload, &orientation); err != nil {
			return false, err
		}
		fmt.Fprintf(w, "orientation: %s\n", orientation.Orientation)
		return false, nil

	case mc.CodePreviewPlacement:
		var preview mc.RespPreview
		if err := json.Unmarshal(resp.Payload, &preview); err != nil {
			return false, err
		}
		cells := make([]string, len(preview.Cells))
		for i, c := range preview.Cells {
			cells[i] = FormatCoordinate(c)
		}
		verdict := "fits"
		if !preview.Valid {
			verdict = "does not fit"
		}
		fmt.Fprintf(w, "ship of size %d %s: %s (%s)\n", preview.Length, preview.Orientation, strings.Join(cells, " "), verdict)
		return false, nil

	case mc.CodeAttack, mc.CodeEndGame:
		if len(resp.Payload) == 0 {
			if resp.Failed() {
				fmt.Fprintf(w, "error: %s (%s)\n", resp.Error.Message, resp.Error.ErrorDetails)
			}
			return false, nil
		}
		var attack mc.RespAttack
		if err := json.Unmarshal(resp.Payload, &attack); err != nil {
			return false, err
		}
		renderAttack(w, attack)
		return attack.Result != mc.ResultAlreadyAttacked, nil

	case mc.CodeQuit:
		if len(resp.Payload) != 0 {
			var end mc.RespEndGame
			if err := json.Unmarshal(resp.Payload, &end); err != nil {
				return false, err
			}
			if end.Message != "" {
				fmt.Fprintln(w, end.Message)
			}
		}
		fmt.Fprintln(w, "bye")
		return false, nil
	}

	fmt.Fprintf(w, "unexpected response code %d\n", resp.Code)
	return false, nil
}

func renderAttack(w io.Writer, attack mc.RespAttack) {
	target := FormatCoordinate(mb.NewCoordinates(attack.X, attack.Y))
	if attack.Result == mc.ResultAlreadyAttacked {
		fmt.Fprintf(w, "%s was already attacked, pick another target\n", target)
		return
	}

	fmt.Fprintf(w, "you fired at %s: %s\n", target, attack.Result)
	if attack.ComputerShot != nil {
		shot := FormatCoordinate(mb.NewCoordinates(attack.ComputerShot.X, attack.ComputerShot.Y))
		fmt.Fprintf(w, "computer fired at %s: %s\n", shot, attack.ComputerShot.Result)
	}
	if attack.GameOver {
		fmt.Fprintf(w, "game over, winner: %s, final score: %d\n", attack.Winner, attack.Score)
	}
}
