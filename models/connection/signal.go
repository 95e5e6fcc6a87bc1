package connection

const (
	CodeQueryState uint8 = iota
	CodeStartGame
	CodePlaceShip
	CodeToggleOrientation
	CodePreviewPlacement
	CodeAttack
	CodeReset
	CodeQuit

	// Sent back instead of CodeAttack when the shot ends the match
	CodeEndGame

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent

	// the request is not valid for the active view,
	// e.g. attacking from the menu
	CodeWrongView
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
