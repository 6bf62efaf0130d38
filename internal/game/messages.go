package game

import (
	"fmt"

	"github.com/gruftwerk/gruft/internal/console"
)

// Message is one line of the game log with its display color.
type Message struct {
	Text  string
	Color console.Color
}

// Messages accumulates the lines shown to the player. The log only
// grows; fitting it to the window is the renderer's concern.
type Messages struct {
	buffer []Message
}

// NewMessages allocates an empty log.
func NewMessages() *Messages {
	return &Messages{}
}

// Log formats and appends one message.
func (m *Messages) Log(color console.Color, mess string, args ...interface{}) {
	m.Append(Message{Text: fmt.Sprintf(mess, args...), Color: color})
}

// Append adds messages in order.
func (m *Messages) Append(msgs ...Message) {
	m.buffer = append(m.buffer, msgs...)
}

// All returns the messages oldest first.
func (m *Messages) All() []Message { return m.buffer }

// Len returns the number of buffered messages.
func (m *Messages) Len() int { return len(m.buffer) }
