package battleship

import (
	"math/rand"

	cerr "github.com/saeidalz13/battleship-arcade/internal/error"
)

const DefaultMaxPlacementAttempts int = 10000

// Placer fills an empty board with a whole fleet.
type Placer interface {
	PlaceFleet(b *Board, fleet Fleet) error
}

// RandomPlacer draws a uniform origin and orientation for each
// ship until the ship fits. Attempts are capped per ship.
type RandomPlacer struct {
	rng         *rand.Rand
	maxAttempts int
}

var _ Placer = (*RandomPlacer)(nil)

func NewRandomPlacer(rng *rand.Rand, maxAttempts int) *RandomPlacer {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxPlacementAttempts
	}
	return &RandomPlacer{rng: rng, maxAttempts: maxAttempts}
}

func (p *RandomPlacer) PlaceFleet(b *Board, fleet Fleet) error {
	for _, length := range fleet {
		if err := p.placeShip(b, length); err != nil {
			return err
		}
	}
	return nil
}

func (p *RandomPlacer) placeShip(b *Board, length int) error {
	size := b.Size()
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		origin := NewCoordinates(p.rng.Intn(size), p.rng.Intn(size))
		orientation := Horizontal
		if p.rng.Intn(2) == 1 {
			orientation = Vertical
		}

		req := NewPlacementRequest(origin, length, orientation)
		if b.CanPlace(req) {
			return b.Place(req)
		}
	}
	return cerr.ErrShipPlacementExhausted(length, p.maxAttempts)
}

// FixedPlacer replays a scripted list of requests. Lengths come
// from the fleet, so only origin and orientation are used.
type FixedPlacer struct {
	Requests []PlacementRequest
}

var _ Placer = (*FixedPlacer)(nil)

func (p *FixedPlacer) PlaceFleet(b *Board, fleet Fleet) error {
	if len(p.Requests) < len(fleet) {
		return cerr.ErrShipPlacementExhausted(fleet[len(p.Requests)], 0)
	}
	for i, length := range fleet {
		req := p.Requests[i]
		req.Length = length
		if err := b.Place(req); err != nil {
			return err
		}
	}
	return nil
}
