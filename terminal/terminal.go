// terminal.go

// Copyright (C) 2018  Steve Merrony

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Open when stdin is not a tty.
var ErrNotTerminal = errors.New("terminal: stdin is not a terminal")

var (
	csiClear      = []byte("\x1b[2J\x1b[H")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
)

// Terminal is a raw-mode keyboard plus a cursor-addressed, buffered screen.
type Terminal struct {
	inFd     int
	oldState *term.State
	w        *bufio.Writer
	closed   bool
}

// Open puts stdin into raw mode and prepares stdout for drawing.
// The caller must Close the Terminal to get the user's tty back.
func Open() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	t := newTerminal(fd, os.Stdout)
	t.oldState = old
	t.w.Write(csiCursorHide)
	return t, nil
}

func newTerminal(inFd int, out io.Writer) *Terminal {
	return &Terminal{
		inFd: inFd,
		w:    bufio.NewWriter(out),
	}
}

// PollKey returns the next pending input byte, if any, without blocking.
func (t *Terminal) PollKey() (byte, bool, error) {
	fds := []unix.PollFd{{Fd: int32(t.inFd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil {
		if err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("poll stdin: %w", err)
	}
	if n == 0 || fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) == 0 {
		return 0, false, nil
	}

	var b [1]byte
	rn, err := unix.Read(t.inFd, b[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read stdin: %w", err)
	}
	if rn == 0 {
		return 0, false, io.EOF
	}
	return b[0], true, nil
}

// Clear blanks the whole screen and homes the cursor.
func (t *Terminal) Clear() {
	t.w.Write(csiClear)
}

// Print writes s starting at the 1-based column and row.
// Nothing reaches the screen until Flush.
func (t *Terminal) Print(col, row int, s string) {
	fmt.Fprintf(t.w, "\x1b[%d;%dH%s", row, col, s)
}

// Flush sends everything drawn since the last Flush. Write errors from
// Clear and Print are sticky and surface here.
func (t *Terminal) Flush() error {
	return t.w.Flush()
}

// Close shows the cursor, clears the screen and restores the tty mode saved
// by Open. It is safe to call more than once.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	t.w.Write(csiCursorShow)
	t.w.Write(csiClear)
	werr := t.w.Flush()

	if t.oldState != nil {
		if err := term.Restore(t.inFd, t.oldState); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
	}
	return werr
}
