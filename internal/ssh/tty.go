// Package ssh adapts a gliderlabs SSH session into a tcell terminal so the
// game can be played over the network without any client install.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty on top of an SSH session. Each connection gets
// its own Tty and therefore its own tcell.Screen.
type Tty struct {
	session gossh.Session

	mu       sync.Mutex
	window   gossh.Window
	onResize func()

	resizes <-chan gossh.Window
	started bool
}

// NewTty wraps s as a tcell Tty. pty carries the initial window size and
// resizes delivers later window-change requests from the client.
func NewTty(s gossh.Session, pty gossh.Pty, resizes <-chan gossh.Window) *Tty {
	return &Tty{
		session: s,
		window:  pty.Window,
		resizes: resizes,
	}
}

// Read pulls keyboard input from the session's stdin.
func (t *Tty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write pushes rendered output to the session's stdout.
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close tears down the SSH channel.
func (t *Tty) Close() error { return t.session.Close() }

// Start, Stop, and Drain are no-ops: the channel is already open and SSH
// flushes writes as they happen.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize reports the client terminal's current dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb to run on every window-change request. The first
// registration starts the goroutine that drains the resize channel for the
// lifetime of the session.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.started
	t.started = true
	t.mu.Unlock()

	if !start {
		return
	}
	go func() {
		for win := range t.resizes {
			t.mu.Lock()
			t.window = win
			cb := t.onResize
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}()
}
