package errors

import (
	"sync"
	"time"
)

// StatusTTL is how long a status message stays visible in the browser.
const StatusTTL = 4 * time.Second

// MessageType is the severity of a status message.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// Message is one status-line entry.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// TUIHandler keeps the latest status message for the browser's status line.
type TUIHandler struct {
	mu     sync.RWMutex
	latest *Message
	now    func() time.Time
}

func NewTUIHandler() *TUIHandler {
	return &TUIHandler{now: time.Now}
}

func (h *TUIHandler) Error(msg string)   { h.set(msg, MessageTypeError) }
func (h *TUIHandler) Warning(msg string) { h.set(msg, MessageTypeWarning) }
func (h *TUIHandler) Info(msg string)    { h.set(msg, MessageTypeInfo) }
func (h *TUIHandler) Success(msg string) { h.set(msg, MessageTypeSuccess) }

func (h *TUIHandler) set(msg string, typ MessageType) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = &Message{Text: msg, Type: typ, Timestamp: h.now()}
}

// Current returns the latest message if it is younger than StatusTTL.
// Errors stay until replaced or cleared.
func (h *TUIHandler) Current() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.latest == nil {
		return Message{}, false
	}
	if h.latest.Type != MessageTypeError && h.now().Sub(h.latest.Timestamp) > StatusTTL {
		return Message{}, false
	}
	return *h.latest, true
}

func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = nil
}
