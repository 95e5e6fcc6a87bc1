package connection

import (
	"encoding/json"
	"testing"

	mb "github.com/saeidalz13/battleship-arcade/models/battleship"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShotResult(t *testing.T) {
	tests := []struct {
		outcome mb.AttackOutcome
		ended   bool
		want    string
	}{
		{mb.OutcomeMiss, false, ResultMiss},
		{mb.OutcomeMiss, true, ResultMiss},
		{mb.OutcomeHit, false, ResultHit},
		{mb.OutcomeHit, true, ResultHitAndGameOver},
		{mb.OutcomeAlreadyAttacked, false, ResultAlreadyAttacked},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, shotResult(test.outcome, test.ended))
	}
}

func TestNewRespState(t *testing.T) {
	game, err := mb.NewGame(mb.WithGridSize(4), mb.WithFleet(mb.Fleet{2}))
	require.NoError(t, err)

	_, err = game.PlaceShip(mb.NewCoordinates(1, 2), mb.Horizontal)
	require.NoError(t, err)

	resp := NewRespState("game", game.Snapshot())
	assert.Equal(t, "player_turn", resp.State)
	assert.Equal(t, game.Uuid(), resp.GameUuid)
	assert.Empty(t, resp.Winner)
	require.Len(t, resp.PlayerBoard, 4)
	assert.Equal(t, []string{"empty", "ship", "ship", "empty"}, resp.PlayerBoard[2])
	assert.Equal(t, "unknown", resp.PlayerAttackGrid[0][0])
	assert.Equal(t, 2, resp.ComputerShipsRemaining)
}

func TestMessageAddError(t *testing.T) {
	msg := NewMessage[NoPayload](CodeInvalidSignal)
	msg.AddError("", "invalid code in the incoming payload")

	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":9,"error":{"message":"invalid code in the incoming payload"}}`, string(raw))
}
