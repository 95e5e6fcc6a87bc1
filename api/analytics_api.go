package api

import "sync/atomic"

// AnalyticsManager counts how the app is used within one
// process.
type AnalyticsManager struct {
	gamesCreated  atomic.Int64
	rematchCalled atomic.Int64
}

func NewAnalyticsManager() *AnalyticsManager {
	return &AnalyticsManager{}
}

func (a *AnalyticsManager) IncrementGamesCreatedCount() {
	a.gamesCreated.Add(1)
}

func (a *AnalyticsManager) IncrementRematchCalledCount() {
	a.rematchCalled.Add(1)
}

func (a *AnalyticsManager) GamesCreatedCount() int64 {
	return a.gamesCreated.Load()
}

func (a *AnalyticsManager) RematchCalledCount() int64 {
	return a.rematchCalled.Load()
}
