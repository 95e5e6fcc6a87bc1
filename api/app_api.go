package api

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/saeidalz13/battleship-arcade/internal/config"
	"github.com/saeidalz13/battleship-arcade/internal/i18n"
	mb "github.com/saeidalz13/battleship-arcade/models/battleship"
	"golang.org/x/text/message"
)

type View uint8

const (
	ViewMenu View = iota
	ViewGame
	ViewClosed
)

func (v View) String() string {
	switch v {
	case ViewGame:
		return "game"
	case ViewClosed:
		return "closed"
	}
	return "menu"
}

type Option func(*App) error

// App owns the match registry, the id of the current match and
// the active view. Views only change through StartGame and Quit.
type App struct {
	gameManager mb.GameManager
	analytics   *AnalyticsManager
	gameOpts    []mb.Option
	logger      *log.Logger
	printer     *message.Printer

	view     View
	gameUuid string
}

func NewApp(gameManager mb.GameManager, optFuncs ...Option) (*App, error) {
	app := App{
		gameManager: gameManager,
		analytics:   NewAnalyticsManager(),
		view:        ViewMenu,
	}
	for _, opt := range optFuncs {
		if err := opt(&app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = log.New(io.Discard)
	}
	if app.printer == nil {
		app.printer = i18n.Printer(i18n.Default())
	}
	return &app, nil
}

func WithLogger(logger *log.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithGameOptions appends options applied to every match the
// app starts.
func WithGameOptions(opts ...mb.Option) Option {
	return func(a *App) error {
		a.gameOpts = append(a.gameOpts, opts...)
		return nil
	}
}

// WithConfig turns a loaded configuration into match options.
// rng is shared by every match of the app; nil keeps the match
// default.
func WithConfig(cfg config.Config, rng *rand.Rand) Option {
	return func(a *App) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		a.printer = i18n.Printer(i18n.ResolveTag(cfg.Lang))
		a.gameOpts = append(a.gameOpts,
			mb.WithGridSize(cfg.GridSize),
			mb.WithFleet(cfg.FleetValue()),
			mb.WithMaxPlacementAttempts(cfg.MaxPlacementAttempts),
			mb.WithTargetingMode(cfg.TargetingModeValue()),
			mb.WithPlayerName(cfg.PlayerName),
			mb.WithPrinter(a.printer),
		)
		if rng != nil {
			a.gameOpts = append(a.gameOpts, mb.WithRand(rng))
		}
		return nil
	}
}

func (a *App) View() View {
	return a.view
}

func (a *App) GameUuid() string {
	return a.gameUuid
}

func (a *App) Printer() *message.Printer {
	return a.printer
}

func (a *App) Analytics() *AnalyticsManager {
	return a.analytics
}
