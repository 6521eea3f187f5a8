package errors

import (
	"sync"
	"time"
)

// Kind classifies a status message.
type Kind int

const (
	KindError Kind = iota
	KindWarning
	KindInfo
	KindSuccess
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindWarning:
		return "warning"
	case KindInfo:
		return "info"
	case KindSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Message is a single status line entry.
type Message struct {
	Text      string
	Kind      Kind
	Timestamp time.Time
}

// DefaultHistory is the number of messages a TUIHandler keeps.
const DefaultHistory = 20

// TUIHandler collects notices for the TUI status line. It keeps a bounded
// history so long sessions do not grow without limit.
type TUIHandler struct {
	mu       sync.RWMutex
	messages []Message
	limit    int
	now      func() time.Time
	notify   func(Message)
}

var _ Handler = (*TUIHandler)(nil)

// NewTUIHandler creates a handler that calls notify for each new message.
// notify may be nil.
func NewTUIHandler(notify func(Message)) *TUIHandler {
	return &TUIHandler{
		limit:  DefaultHistory,
		now:    time.Now,
		notify: notify,
	}
}

func (h *TUIHandler) Error(msg string)   { h.add(msg, KindError) }
func (h *TUIHandler) Warning(msg string) { h.add(msg, KindWarning) }
func (h *TUIHandler) Info(msg string)    { h.add(msg, KindInfo) }
func (h *TUIHandler) Success(msg string) { h.add(msg, KindSuccess) }

func (h *TUIHandler) add(text string, kind Kind) {
	h.mu.Lock()
	msg := Message{Text: text, Kind: kind, Timestamp: h.now()}
	h.messages = append(h.messages, msg)
	if over := len(h.messages) - h.limit; over > 0 {
		h.messages = append([]Message(nil), h.messages[over:]...)
	}
	notify := h.notify
	h.mu.Unlock()

	if notify != nil {
		notify(msg)
	}
}

// Latest returns the newest message.
func (h *TUIHandler) Latest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// Current returns the newest message if it is younger than ttl.
func (h *TUIHandler) Current(ttl time.Duration) (Message, bool) {
	msg, ok := h.Latest()
	if !ok || h.now().Sub(msg.Timestamp) >= ttl {
		return Message{}, false
	}
	return msg, true
}

// All returns a copy of the retained history, oldest first.
func (h *TUIHandler) All() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}

// Clear drops the history.
func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
}
