package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/authclient/internal/client/screens"
)

type alertMsg struct {
	title   string
	message string
	// done is closed when the user dismisses the alert; nil for alerts
	// raised by the model itself.
	done chan struct{}
}

type navigateMsg struct {
	route screens.Route
}

// Bridge is the Presenter and Navigator handed to screens. It turns their
// calls into program messages. Alert blocks until the user dismisses the
// modal or the bridge is closed, so it must not be called from Update.
type Bridge struct {
	mu     sync.Mutex
	send   func(tea.Msg)
	closed chan struct{}
	once   sync.Once
}

func NewBridge() *Bridge {
	return &Bridge{closed: make(chan struct{})}
}

// Attach sets the function messages are delivered with, normally
// (*tea.Program).Send.
func (b *Bridge) Attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

// Close releases any Alert still waiting for dismissal.
func (b *Bridge) Close() {
	b.once.Do(func() { close(b.closed) })
}

func (b *Bridge) deliver(msg tea.Msg) bool {
	b.mu.Lock()
	send := b.send
	b.mu.Unlock()
	if send == nil {
		return false
	}
	select {
	case <-b.closed:
		return false
	default:
	}
	send(msg)
	return true
}

func (b *Bridge) Alert(title, message string) {
	done := make(chan struct{})
	if !b.deliver(alertMsg{title: title, message: message, done: done}) {
		return
	}
	select {
	case <-done:
	case <-b.closed:
	}
}

func (b *Bridge) Navigate(r screens.Route) {
	b.deliver(navigateMsg{route: r})
}

var (
	_ screens.Presenter = (*Bridge)(nil)
	_ screens.Navigator = (*Bridge)(nil)
)
