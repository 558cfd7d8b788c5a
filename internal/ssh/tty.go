// Package ssh adapts gliderlabs SSH sessions into tcell terminals.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty on top of one SSH session's PTY.
type Tty struct {
	session gossh.Session
	term    string
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	resize func()
}

// NewTty wraps s. It returns false when the client did not request a PTY.
func NewTty(s gossh.Session) (*Tty, bool) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, false
	}
	return &Tty{
		session: s,
		term:    pty.Term,
		winCh:   winCh,
		window:  pty.Window,
	}, true
}

// Term is the TERM value the client sent with its PTY request.
func (t *Tty) Term() string { return t.term }

// Read reads keyboard input from the session.
func (t *Tty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write sends rendered output to the session.
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the session channel.
func (t *Tty) Close() error { return t.session.Close() }

// Start is a no-op; the channel is open when the handler runs.
func (t *Tty) Start() error { return nil }

// Stop is a no-op; the handler goroutine owns the channel.
func (t *Tty) Stop() error { return nil }

// Drain is a no-op; session writes are not buffered.
func (t *Tty) Drain() error { return nil }

// WindowSize returns the latest terminal dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts forwarding window-change requests
// for the lifetime of the session.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	first := t.resize == nil
	t.resize = cb
	t.mu.Unlock()
	if first {
		go t.watchResize()
	}
}

func (t *Tty) watchResize() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.resize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
