package api

import (
	"encoding/json"
	"testing"

	mb "github.com/saeidalz13/battleship-arcade/models/battleship"
	mc "github.com/saeidalz13/battleship-arcade/models/connection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scriptedOpponent = []mb.PlacementRequest{
	{Origin: mb.NewCoordinates(0, 0), Orientation: mb.Horizontal},
	{Origin: mb.NewCoordinates(0, 2), Orientation: mb.Horizontal},
	{Origin: mb.NewCoordinates(0, 4), Orientation: mb.Horizontal},
}

func newTestProcessor(t *testing.T) RequestProcessor {
	t.Helper()
	app, _ := newTestApp(t, WithGameOptions(
		mb.WithSeed(1),
		mb.WithOpponentPlacer(&mb.FixedPlacer{Requests: scriptedOpponent}),
	))
	return NewRequestProcessor(app)
}

func send(t *testing.T, rp RequestProcessor, code uint8, payload any) mc.Message[json.RawMessage] {
	t.Helper()
	req := map[string]any{"code": code}
	if payload != nil {
		req["payload"] = payload
	}
	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var resp mc.Message[json.RawMessage]
	require.NoError(t, json.Unmarshal(rp.Process(raw), &resp))
	return resp
}

func decodePayload[T any](t *testing.T, resp mc.Message[json.RawMessage]) T {
	t.Helper()
	var payload T
	require.NoError(t, json.Unmarshal(resp.Payload, &payload))
	return payload
}

func startAndPlace(t *testing.T, rp RequestProcessor) {
	t.Helper()
	resp := send(t, rp, mc.CodeStartGame, nil)
	require.Nil(t, resp.Error)

	for _, y := range []int{5, 7, 9} {
		resp = send(t, rp, mc.CodePlaceShip, mc.ReqPlaceShip{X: 0, Y: y, Orientation: "h"})
		require.Nil(t, resp.Error)
	}
	placed := decodePayload[mc.RespPlacement](t, resp)
	require.Equal(t, mb.StatePlayerTurn.String(), placed.State)
}

func TestProcess_SignalAbsent(t *testing.T) {
	rp := newTestProcessor(t)

	for _, raw := range []string{`not json`, `{}`, `{"payload":{"x":1}}`} {
		var resp mc.Message[json.RawMessage]
		require.NoError(t, json.Unmarshal(rp.Process([]byte(raw)), &resp))
		assert.Equal(t, mc.CodeSignalAbsent, resp.Code, raw)
		require.NotNil(t, resp.Error, raw)
		assert.Equal(t, ConstErrSignalAbsent, resp.Error.Message)
	}
}

func TestProcess_InvalidSignal(t *testing.T) {
	rp := newTestProcessor(t)

	resp := send(t, rp, 200, nil)
	assert.Equal(t, mc.CodeInvalidSignal, resp.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ConstErrInvalidSignal, resp.Error.Message)

	resp = send(t, rp, mc.CodeEndGame, nil)
	assert.Equal(t, mc.CodeInvalidSignal, resp.Code)
}

func TestProcess_WrongView(t *testing.T) {
	rp := newTestProcessor(t)

	tests := []uint8{mc.CodePlaceShip, mc.CodeToggleOrientation, mc.CodePreviewPlacement, mc.CodeAttack, mc.CodeReset}
	for _, code := range tests {
		resp := send(t, rp, code, mc.ReqAttack{X: 1, Y: 1})
		assert.Equal(t, mc.CodeWrongView, resp.Code, code)
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.ErrorDetails, "from menu")
	}

	resp := send(t, rp, mc.CodeStartGame, nil)
	require.Nil(t, resp.Error)

	resp = send(t, rp, mc.CodeStartGame, nil)
	assert.Equal(t, mc.CodeWrongView, resp.Code)

	resp = send(t, rp, mc.CodeQuit, nil)
	assert.Equal(t, mc.CodeQuit, resp.Code)

	resp = send(t, rp, mc.CodeStartGame, nil)
	assert.Equal(t, mc.CodeWrongView, resp.Code)
	assert.Contains(t, resp.Error.ErrorDetails, "from closed")

	resp = send(t, rp, mc.CodeQuit, nil)
	assert.Equal(t, mc.CodeQuit, resp.Code)
	assert.Nil(t, resp.Error)

	resp = send(t, rp, mc.CodeQueryState, nil)
	assert.Equal(t, mc.CodeQueryState, resp.Code)
	assert.Equal(t, "closed", decodePayload[mc.RespState](t, resp).View)
}

func TestProcess_QueryState(t *testing.T) {
	rp := newTestProcessor(t)

	resp := send(t, rp, mc.CodeQueryState, nil)
	state := decodePayload[mc.RespState](t, resp)
	assert.Equal(t, "menu", state.View)
	assert.Empty(t, state.GameUuid)

	send(t, rp, mc.CodeStartGame, nil)
	resp = send(t, rp, mc.CodeQueryState, nil)
	state = decodePayload[mc.RespState](t, resp)
	assert.Equal(t, "game", state.View)
	assert.Equal(t, rp.App().GameUuid(), state.GameUuid)
	assert.Equal(t, "placing_ships", state.State)
	assert.Equal(t, 4, state.CurrentShipLength)
	assert.Equal(t, 3, state.ShipsToPlace)
	assert.Len(t, state.PlayerBoard, mb.DefaultGridSize)
	assert.Equal(t, "empty", state.PlayerBoard[0][0])
}

func TestProcess_Placement(t *testing.T) {
	rp := newTestProcessor(t)
	send(t, rp, mc.CodeStartGame, nil)

	resp := send(t, rp, mc.CodePlaceShip, mc.ReqPlaceShip{X: 8, Y: 0, Orientation: "horizontal"})
	assert.Equal(t, mc.CodePlaceShip, resp.Code)
	require.NotNil(t, resp.Error)

	resp = send(t, rp, mc.CodePlaceShip, mc.ReqPlaceShip{X: 0, Y: 0, Orientation: "diagonal"})
	require.NotNil(t, resp.Error)
	assert.Equal(t, ConstErrInvalidPayload, resp.Error.Message)

	resp = send(t, rp, mc.CodeToggleOrientation, nil)
	require.Nil(t, resp.Error)
	assert.Equal(t, "vertical", decodePayload[mc.RespOrientation](t, resp).Orientation)

	resp = send(t, rp, mc.CodePreviewPlacement, mc.ReqPreviewPlacement{X: 2, Y: 1})
	require.Nil(t, resp.Error)
	preview := decodePayload[mc.RespPreview](t, resp)
	assert.True(t, preview.Valid)
	assert.Equal(t, 4, preview.Length)
	assert.Equal(t, []mb.Coordinates{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}}, preview.Cells)

	// no orientation uses the toggled one
	resp = send(t, rp, mc.CodePlaceShip, mc.ReqPlaceShip{X: 2, Y: 1})
	require.Nil(t, resp.Error)
	placed := decodePayload[mc.RespPlacement](t, resp)
	assert.Equal(t, "vertical", placed.Orientation)
	assert.Equal(t, 1, placed.FleetIndex)
	assert.Equal(t, 3, placed.NextShipLength)
	assert.Equal(t, 2, placed.ShipsToPlace)

	resp = send(t, rp, mc.CodePreviewPlacement, mc.ReqPreviewPlacement{X: 2, Y: 2})
	assert.False(t, decodePayload[mc.RespPreview](t, resp).Valid)
}

func TestProcess_AttackAndAlreadyAttacked(t *testing.T) {
	rp := newTestProcessor(t)
	startAndPlace(t, rp)

	resp := send(t, rp, mc.CodeAttack, mc.ReqAttack{X: 0, Y: 0})
	require.Nil(t, resp.Error)
	assert.Equal(t, mc.CodeAttack, resp.Code)
	attack := decodePayload[mc.RespAttack](t, resp)
	assert.Equal(t, mc.ResultHit, attack.Result)
	assert.Equal(t, 100, attack.Score)
	assert.Equal(t, 1, attack.Turns)
	assert.Equal(t, 8, attack.ComputerShipsRemaining)
	require.NotNil(t, attack.ComputerShot)

	resp = send(t, rp, mc.CodeAttack, mc.ReqAttack{X: 0, Y: 0})
	require.NotNil(t, resp.Error)
	again := decodePayload[mc.RespAttack](t, resp)
	assert.Equal(t, mc.ResultAlreadyAttacked, again.Result)
	assert.Equal(t, 1, again.Turns)
	assert.Equal(t, 100, again.Score)
	assert.Nil(t, again.ComputerShot)

	resp = send(t, rp, mc.CodeAttack, mc.ReqAttack{X: 10, Y: 0})
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.ErrorDetails, "out of grid bound")
}

func TestProcess_PlayToWin(t *testing.T) {
	rp := newTestProcessor(t)
	startAndPlace(t, rp)

	var targets []mb.Coordinates
	for i, req := range scriptedOpponent {
		req.Length = mb.DefaultFleet[i]
		targets = append(targets, req.Cells()...)
	}

	var resp mc.Message[json.RawMessage]
	for _, c := range targets {
		resp = send(t, rp, mc.CodeAttack, mc.ReqAttack{X: c.X, Y: c.Y})
		require.Nil(t, resp.Error)
	}

	assert.Equal(t, mc.CodeEndGame, resp.Code)
	final := decodePayload[mc.RespAttack](t, resp)
	assert.Equal(t, mc.ResultHitAndGameOver, final.Result)
	assert.True(t, final.GameOver)
	assert.Equal(t, "human", final.Winner)
	assert.Nil(t, final.ComputerShot)
	assert.Equal(t, 9*mb.ScoreHit+mb.ScoreWinBonus-9, final.Score)
	assert.Equal(t, 0, final.ComputerShipsRemaining)
	assert.Equal(t, "Congratulations Player! You won!", final.Message)

	resp = send(t, rp, mc.CodeAttack, mc.ReqAttack{X: 9, Y: 9})
	assert.Equal(t, mc.CodeAttack, resp.Code)
	require.NotNil(t, resp.Error)

	resp = send(t, rp, mc.CodeQuit, nil)
	end := decodePayload[mc.RespEndGame](t, resp)
	assert.Equal(t, "human", end.Winner)
	assert.Equal(t, final.Score, end.FinalScore)
	assert.Equal(t, "Final score: 1891", end.Message)
}

func TestProcess_Reset(t *testing.T) {
	rp := newTestProcessor(t)
	startAndPlace(t, rp)
	uuid := rp.App().GameUuid()

	send(t, rp, mc.CodeAttack, mc.ReqAttack{X: 9, Y: 0})

	resp := send(t, rp, mc.CodeReset, nil)
	require.Nil(t, resp.Error)
	state := decodePayload[mc.RespState](t, resp)
	assert.Equal(t, uuid, state.GameUuid)
	assert.Equal(t, "placing_ships", state.State)
	assert.Equal(t, 0, state.Score)
	assert.Equal(t, 0, state.Turns)
	assert.Equal(t, 3, state.ShipsToPlace)
	assert.Equal(t, int64(1), rp.App().Analytics().RematchCalledCount())
	assert.Equal(t, int64(1), rp.App().Analytics().GamesCreatedCount())
}
