package battleship

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

func (o Orientation) Toggle() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// ParseOrientation accepts "horizontal"/"h" and "vertical"/"v".
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "horizontal", "h", "H":
		return Horizontal, true
	case "vertical", "v", "V":
		return Vertical, true
	}
	return Horizontal, false
}

// Fleet is the ordered list of ship lengths a side places.
type Fleet []int

var DefaultFleet = Fleet{4, 3, 2}

func (f Fleet) TotalCells() int {
	var total int
	for _, length := range f {
		total += length
	}
	return total
}

func (f Fleet) Clone() Fleet {
	return append(Fleet(nil), f...)
}

type PlacementRequest struct {
	Origin      Coordinates
	Length      int
	Orientation Orientation
}

func NewPlacementRequest(origin Coordinates, length int, orientation Orientation) PlacementRequest {
	return PlacementRequest{Origin: origin, Length: length, Orientation: orientation}
}

// Cells lists every position the ship would cover, starting
// at the origin. Horizontal ships grow along X, vertical along Y.
func (r PlacementRequest) Cells() []Coordinates {
	if r.Length <= 0 {
		return nil
	}

	cells := make([]Coordinates, 0, r.Length)
	for i := 0; i < r.Length; i++ {
		if r.Orientation == Horizontal {
			cells = append(cells, NewCoordinates(r.Origin.X+i, r.Origin.Y))
		} else {
			cells = append(cells, NewCoordinates(r.Origin.X, r.Origin.Y+i))
		}
	}
	return cells
}
