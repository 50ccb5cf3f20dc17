package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/authclient/internal/client/screens"
	"github.com/stretchr/testify/require"
)

func TestBridge_NotAttached(t *testing.T) {
	b := NewBridge()
	// neither call may block without a program
	b.Alert("Notice", "hello")
	b.Navigate(screens.RouteHome)
}

func TestBridge_AlertWaitsForDismissal(t *testing.T) {
	msgs := make(chan tea.Msg, 1)
	b := NewBridge()
	b.Attach(func(m tea.Msg) { msgs <- m })

	returned := make(chan struct{})
	go func() {
		b.Alert("Notice", "hello")
		close(returned)
	}()

	a := recv(t, msgs).(alertMsg)
	require.Equal(t, "hello", a.message)

	select {
	case <-returned:
		t.Fatal("Alert returned before dismissal")
	case <-time.After(20 * time.Millisecond):
	}

	close(a.done)
	recv(t, returned)
}

func TestBridge_CloseReleasesAlert(t *testing.T) {
	msgs := make(chan tea.Msg, 1)
	b := NewBridge()
	b.Attach(func(m tea.Msg) { msgs <- m })

	returned := make(chan struct{})
	go func() {
		b.Alert("Notice", "x")
		close(returned)
	}()
	recv(t, msgs)

	b.Close()
	recv(t, returned)

	// after Close nothing is delivered
	b.Navigate(screens.RouteHome)
	require.Empty(t, msgs)
}

func TestBridge_Navigate(t *testing.T) {
	msgs := make(chan tea.Msg, 1)
	b := NewBridge()
	b.Attach(func(m tea.Msg) { msgs <- m })

	b.Navigate(screens.RouteSignUp)
	require.Equal(t, navigateMsg{route: screens.RouteSignUp}, recv(t, msgs))
}

func recv[T any](t *testing.T, ch chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
	var zero T
	return zero
}
