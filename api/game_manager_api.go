package api

import (
	cerr "github.com/saeidalz13/battleship-arcade/internal/error"
	mb "github.com/saeidalz13/battleship-arcade/models/battleship"
)

// StartGame creates a match and switches to the game view. It
// is only valid from the menu.
func (a *App) StartGame() (*mb.Game, error) {
	if a.view != ViewMenu {
		return nil, cerr.ErrAppWrongView("start game", a.view.String())
	}

	opts := make([]mb.Option, 0, len(a.gameOpts)+1)
	opts = append(opts, a.gameOpts...)
	opts = append(opts, mb.WithLogger(a.logger))

	game, err := a.gameManager.CreateGame(opts...)
	if err != nil {
		return nil, err
	}

	a.gameUuid = game.Uuid()
	a.view = ViewGame
	a.analytics.IncrementGamesCreatedCount()
	a.logger.Info("app [game started]", "game", a.gameUuid)
	return game, nil
}

func (a *App) CurrentGame() (*mb.Game, error) {
	if a.view != ViewGame {
		return nil, cerr.ErrAppWrongView("fetch game", a.view.String())
	}
	return a.gameManager.GetGame(a.gameUuid)
}

// Quit terminates the current match, if any, and closes the
// app. The terminated match is returned so its final state can
// still be reported; it is nil when quitting from the menu.
func (a *App) Quit() *mb.Game {
	var game *mb.Game
	if a.gameUuid != "" {
		var err error
		if game, err = a.gameManager.GetGame(a.gameUuid); err != nil {
			a.logger.Error("app [quit]", "game", a.gameUuid, "err", err)
		}
		a.gameManager.TerminateGame(a.gameUuid)
		a.gameUuid = ""
	}

	a.view = ViewClosed
	a.logger.Info("app [closed]",
		"gamesCreated", a.analytics.GamesCreatedCount(),
		"rematchCalled", a.analytics.RematchCalledCount(),
	)
	return game
}
