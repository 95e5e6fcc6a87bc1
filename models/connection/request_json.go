package connection

type ReqPlaceShip struct {
	X int `json:"x"`
	Y int `json:"y"`
	// "horizontal" or "vertical"; the match's current
	// orientation is used when empty
	Orientation string `json:"orientation,omitempty"`
}

type ReqPreviewPlacement struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type ReqAttack struct {
	X int `json:"x"`
	Y int `json:"y"`
}
