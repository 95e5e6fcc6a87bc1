package connection

// NoPayload marks responses that only ever carry an error.
type NoPayload bool

// Message is the envelope of every request and response. Code
// is one of the Code* signals; a response sets Error when the
// operation was refused.
type Message[T any] struct {
	Code    uint8    `json:"code"`
	Payload T        `json:"payload,omitempty"`
	Error   *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code}
}

// NewErrMessage builds a response that reports a refusal and
// nothing else.
func NewErrMessage(code uint8, errorDetails, message string) Message[NoPayload] {
	msg := NewMessage[NoPayload](code)
	msg.AddError(errorDetails, message)
	return msg
}

func (m *Message[T]) AddPayload(payload T) {
	m.Payload = payload
}

func (m *Message[T]) AddError(errorDetails, message string) {
	m.Error = NewRespErr(errorDetails, message)
}

func (m Message[T]) Failed() bool {
	return m.Error != nil
}
