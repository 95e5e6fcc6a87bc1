package api

import (
	"encoding/json"
	"errors"

	"github.com/charmbracelet/log"
	cerr "github.com/saeidalz13/battleship-arcade/internal/error"
	mb "github.com/saeidalz13/battleship-arcade/models/battleship"
	mc "github.com/saeidalz13/battleship-arcade/models/connection"
)

// RequestProcessor turns one JSON request into one JSON
// response against the app's current view and match.
type RequestProcessor struct {
	app    *App
	logger *log.Logger
}

func NewRequestProcessor(app *App) RequestProcessor {
	return RequestProcessor{
		app:    app,
		logger: app.logger,
	}
}

func (rp RequestProcessor) App() *App {
	return rp.app
}

func (rp RequestProcessor) Process(payload []byte) []byte {
	signal, err := decodeSignal(payload)
	if err != nil {
		return rp.encode(mc.NewErrMessage(mc.CodeSignalAbsent, err.Error(), ConstErrSignalAbsent))
	}
	rp.logger.Debug("request [received]", "code", signal.Code, "view", rp.app.View())

	if op, ok := viewOperations[signal.Code]; ok && !op.allowed(rp.app.View()) {
		err := cerr.ErrAppWrongView(op.name, rp.app.View().String())
		return rp.encode(mc.NewErrMessage(mc.CodeWrongView, err.Error(), ConstErrWrongView))
	}

	req := NewRequest(payload)

	switch signal.Code {
	case mc.CodeQueryState:
		return rp.encode(req.HandleQueryState(rp.app))

	case mc.CodeStartGame:
		return rp.encode(req.HandleStartGame(rp.app))

	case mc.CodeQuit:
		return rp.encode(req.HandleQuit(rp.app))

	case mc.CodePlaceShip, mc.CodeToggleOrientation, mc.CodePreviewPlacement, mc.CodeAttack, mc.CodeReset:
		game, err := rp.app.CurrentGame()
		if err != nil {
			code := signal.Code
			if isWrongView(err) {
				code = mc.CodeWrongView
			}
			return rp.encode(mc.NewErrMessage(code, err.Error(), ConstErrWrongView))
		}
		return rp.processGameRequest(signal.Code, req, game)

	default:
		return rp.encode(mc.NewErrMessage(mc.CodeInvalidSignal, "", ConstErrInvalidSignal))
	}
}

// decodeSignal requires an explicit code; a missing one would
// otherwise decode as CodeQueryState.
func decodeSignal(payload []byte) (mc.Signal, error) {
	var raw struct {
		Code *uint8 `json:"code"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return mc.Signal{}, err
	}
	if raw.Code == nil {
		return mc.Signal{}, errors.New("code field is missing")
	}
	return mc.NewSignal(*raw.Code), nil
}

func (rp RequestProcessor) processGameRequest(code uint8, req Request, game *mb.Game) []byte {
	switch code {
	case mc.CodePlaceShip:
		return rp.encode(req.HandlePlaceShip(game))
	case mc.CodeToggleOrientation:
		return rp.encode(req.HandleToggleOrientation(game))
	case mc.CodePreviewPlacement:
		return rp.encode(req.HandlePreviewPlacement(game))
	case mc.CodeAttack:
		return rp.encode(req.HandleAttack(game))
	default:
		return rp.encode(req.HandleReset(rp.app, game))
	}
}

func (rp RequestProcessor) encode(msg any) []byte {
	out, err := json.Marshal(msg)
	if err != nil {
		rp.logger.Error("response [encode]", "err", err)
		out, _ = json.Marshal(mc.NewErrMessage(mc.CodeInvalidSignal, err.Error(), "could not encode response"))
	}
	return out
}

type viewOperation struct {
	name  string
	views []View
}

func (op viewOperation) allowed(view View) bool {
	for _, v := range op.views {
		if v == view {
			return true
		}
	}
	return false
}

// Codes missing here are valid from every view.
var viewOperations = map[uint8]viewOperation{
	mc.CodeStartGame:         {name: "start game", views: []View{ViewMenu}},
	mc.CodePlaceShip:         {name: "place ship", views: []View{ViewGame}},
	mc.CodeToggleOrientation: {name: "toggle orientation", views: []View{ViewGame}},
	mc.CodePreviewPlacement:  {name: "preview placement", views: []View{ViewGame}},
	mc.CodeAttack:            {name: "attack", views: []View{ViewGame}},
	mc.CodeReset:             {name: "reset", views: []View{ViewGame}},
}
