package api

const (
	ConstErrInvalidPayload = "invalid request payload"
	ConstErrStartGame      = "could not start game"
	ConstErrWrongView      = "request not available in this view"
	ConstErrInvalidSignal  = "invalid code in the incoming payload"
	ConstErrSignalAbsent   = "incoming req payload must contain 'code' field"
)
