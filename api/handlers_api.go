package api

import (
	"encoding/json"
	"errors"
	"fmt"

	cerr "github.com/saeidalz13/battleship-arcade/internal/error"
	"github.com/saeidalz13/battleship-arcade/internal/i18n"
	mb "github.com/saeidalz13/battleship-arcade/models/battleship"
	mc "github.com/saeidalz13/battleship-arcade/models/connection"
)

// Every incoming request carries its raw payload; the handlers
// decode the part they need.
type Request struct {
	payload []byte
}

func NewRequest(payload ...[]byte) Request {
	var req Request
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return req
}

func (r Request) HandleQueryState(app *App) mc.Message[mc.RespState] {
	resp := mc.NewMessage[mc.RespState](mc.CodeQueryState)

	game, err := app.CurrentGame()
	if err != nil {
		resp.AddPayload(mc.RespState{View: app.View().String()})
		return resp
	}
	resp.AddPayload(mc.NewRespState(app.View().String(), game.Snapshot()))
	return resp
}

func (r Request) HandleStartGame(app *App) mc.Message[mc.RespState] {
	resp := mc.NewMessage[mc.RespState](mc.CodeStartGame)

	game, err := app.StartGame()
	if err != nil {
		resp.AddError(err.Error(), ConstErrStartGame)
		return resp
	}
	resp.AddPayload(mc.NewRespState(app.View().String(), game.Snapshot()))
	return resp
}

func (r Request) HandlePlaceShip(game *mb.Game) mc.Message[mc.RespPlacement] {
	resp := mc.NewMessage[mc.RespPlacement](mc.CodePlaceShip)

	var req mc.Message[mc.ReqPlaceShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), ConstErrInvalidPayload)
		return resp
	}

	orientation := game.Orientation()
	if req.Payload.Orientation != "" {
		parsed, ok := mb.ParseOrientation(req.Payload.Orientation)
		if !ok {
			resp.AddError(fmt.Sprintf("unknown orientation: %s", req.Payload.Orientation), ConstErrInvalidPayload)
			return resp
		}
		orientation = parsed
	}

	report, err := game.PlaceShip(mb.NewCoordinates(req.Payload.X, req.Payload.Y), orientation)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlacementFailed)
		return resp
	}
	resp.AddPayload(mc.NewRespPlacement(report))
	return resp
}

func (r Request) HandleToggleOrientation(game *mb.Game) mc.Message[mc.RespOrientation] {
	resp := mc.NewMessage[mc.RespOrientation](mc.CodeToggleOrientation)

	orientation, err := game.ToggleOrientation()
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlacementFailed)
		return resp
	}
	resp.AddPayload(mc.RespOrientation{Orientation: orientation.String()})
	return resp
}

func (r Request) HandlePreviewPlacement(game *mb.Game) mc.Message[mc.RespPreview] {
	resp := mc.NewMessage[mc.RespPreview](mc.CodePreviewPlacement)

	var req mc.Message[mc.ReqPreviewPlacement]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), ConstErrInvalidPayload)
		return resp
	}

	preview, err := game.PreviewPlacement(mb.NewCoordinates(req.Payload.X, req.Payload.Y))
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlacementFailed)
		return resp
	}
	resp.AddPayload(mc.NewRespPreview(preview))
	return resp
}

// HandleAttack fires the human's shot. The response carries the
// computer's reply as well; it is coded CodeEndGame when the
// exchange ends the match.
func (r Request) HandleAttack(game *mb.Game) mc.Message[mc.RespAttack] {
	var req mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)
		resp.AddError(err.Error(), ConstErrInvalidPayload)
		return resp
	}

	report, err := game.Attack(mb.NewCoordinates(req.Payload.X, req.Payload.Y))
	if err != nil {
		resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)
		resp.AddError(err.Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	code := mc.CodeAttack
	if report.GameOver {
		code = mc.CodeEndGame
	}
	resp := mc.NewMessage[mc.RespAttack](code)
	resp.AddPayload(mc.NewRespAttack(report, game))

	if report.Shot.Outcome == mb.OutcomeAlreadyAttacked {
		resp.AddError(cerr.ErrAttackPositionAlreadyFilled(req.Payload.X, req.Payload.Y).Error(), cerr.ConstErrAttackFailed)
	}
	return resp
}

func (r Request) HandleReset(app *App, game *mb.Game) mc.Message[mc.RespState] {
	resp := mc.NewMessage[mc.RespState](mc.CodeReset)

	game.Reset()
	app.Analytics().IncrementRematchCalledCount()
	resp.AddPayload(mc.NewRespState(app.View().String(), game.Snapshot()))
	return resp
}

func (r Request) HandleQuit(app *App) mc.Message[mc.RespEndGame] {
	resp := mc.NewMessage[mc.RespEndGame](mc.CodeQuit)

	game := app.Quit()
	if game == nil {
		return resp
	}

	payload := mc.RespEndGame{
		FinalScore: game.Score(),
		Message:    i18n.FinalScore(app.Printer(), game.Score()),
	}
	if game.Winner() != mb.SideNone {
		payload.Winner = game.Winner().String()
	}
	resp.AddPayload(payload)
	return resp
}

// isWrongView reports whether err is a view mismatch rather
// than a failure of the operation itself.
func isWrongView(err error) bool {
	return errors.Is(err, cerr.ErrWrongView)
}
