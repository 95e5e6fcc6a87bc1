package battleship

import (
	"sync"

	"github.com/dolthub/swiss"
	cerr "github.com/saeidalz13/battleship-arcade/internal/error"
)

type GameManager interface {
	CreateGame(optFuncs ...Option) (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	Count() int
}

// BattleshipGameManager keeps the matches of one process.
// The registry is guarded for concurrent lookups; a single
// match is still meant to be driven by one goroutine.
type BattleshipGameManager struct {
	games *swiss.Map[string, *Game]
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: swiss.NewMap[string, *Game](10),
	}
}

func (bgm *BattleshipGameManager) CreateGame(optFuncs ...Option) (*Game, error) {
	game, err := NewGame(optFuncs...)
	if err != nil {
		return nil, err
	}

	bgm.mu.Lock()
	bgm.games.Put(game.Uuid(), game)
	bgm.mu.Unlock()

	return game, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games.Get(gameUuid)
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExist(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	bgm.games.Delete(gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) Count() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return bgm.games.Count()
}
