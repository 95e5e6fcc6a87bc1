package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	mb "github.com/saeidalz13/battleship-arcade/models/battleship"
	mc "github.com/saeidalz13/battleship-arcade/models/connection"
)

var errHelp = errors.New("help requested")

// ParseCoordinate reads coordinates such as "B3": the letter is
// the row and the number the 1-based column.
func ParseCoordinate(coord string, gridSize int) (mb.Coordinates, error) {
	coord = strings.TrimSpace(coord)
	if len(coord) < 2 {
		return mb.Coordinates{}, fmt.Errorf("invalid coordinate: %s", coord)
	}

	row := strings.ToUpper(coord[:1])[0]
	if row < 'A' || int(row-'A') >= gridSize {
		return mb.Coordinates{}, fmt.Errorf("invalid row: %c", row)
	}
	col, err := strconv.Atoi(coord[1:])
	if err != nil {
		return mb.Coordinates{}, fmt.Errorf("invalid column: %s", coord[1:])
	}
	if col < 1 || col > gridSize {
		return mb.Coordinates{}, fmt.Errorf("column out of bounds: %d", col)
	}

	return mb.NewCoordinates(col-1, int(row-'A')), nil
}

func FormatCoordinate(c mb.Coordinates) string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Y), c.X+1)
}

// command is one text line translated into a protocol request.
type command struct {
	code    uint8
	payload any
}

func (c command) encode() ([]byte, error) {
	msg := mc.NewMessage[any](c.code)
	msg.AddPayload(c.payload)
	return json.Marshal(msg)
}

func parseCommand(line string, gridSize int) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, errors.New("empty command")
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "help", "?":
		return command{}, errHelp
	case "start", "new":
		return command{code: mc.CodeStartGame}, nil
	case "state", "s":
		return command{code: mc.CodeQueryState}, nil
	case "rotate", "r":
		return command{code: mc.CodeToggleOrientation}, nil
	case "reset":
		return command{code: mc.CodeReset}, nil
	case "quit", "q", "exit":
		return command{code: mc.CodeQuit}, nil

	case "place", "p":
		if len(args) < 1 || len(args) > 2 {
			return command{}, errors.New("usage: place <coord> [h|v]")
		}
		c, err := ParseCoordinate(args[0], gridSize)
		if err != nil {
			return command{}, err
		}
		req := mc.ReqPlaceShip{X: c.X, Y: c.Y}
		if len(args) == 2 {
			if _, ok := mb.ParseOrientation(strings.ToLower(args[1])); !ok {
				return command{}, fmt.Errorf("invalid orientation: %s", args[1])
			}
			req.Orientation = strings.ToLower(args[1])
		}
		return command{code: mc.CodePlaceShip, payload: req}, nil

	case "preview":
		if len(args) != 1 {
			return command{}, errors.New("usage: preview <coord>")
		}
		c, err := ParseCoordinate(args[0], gridSize)
		if err != nil {
			return command{}, err
		}
		return command{code: mc.CodePreviewPlacement, payload: mc.ReqPreviewPlacement{X: c.X, Y: c.Y}}, nil

	case "fire", "f", "attack":
		if len(args) != 1 {
			return command{}, errors.New("usage: fire <coord>")
		}
		c, err := ParseCoordinate(args[0], gridSize)
		if err != nil {
			return command{}, err
		}
		return command{code: mc.CodeAttack, payload: mc.ReqAttack{X: c.X, Y: c.Y}}, nil
	}

	return command{}, fmt.Errorf("unknown command: %s", verb)
}

const helpText = `commands:
  start               start a new match
  place <coord> [h|v] place the next ship, e.g. place B3 v
  rotate              toggle the placement orientation
  preview <coord>     show where the next ship would go
  fire <coord>        fire at the enemy board, e.g. fire C7
  state               show both boards
  reset               restart the current match
  quit                leave the game`
