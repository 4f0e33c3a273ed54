// tellocli project terminal_test.go

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
	"bytes"
	"errors"
	"io"
	"os"
	"testing"
)

func pipeTerminal(t *testing.T) (*Terminal, *os.File, *bytes.Buffer) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe failed with %v", err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	var out bytes.Buffer
	return newTerminal(int(r.Fd()), &out), w, &out
}

func TestPollKey(t *testing.T) {
	term, w, _ := pipeTerminal(t)

	if _, ok, err := term.PollKey(); ok || err != nil {
		t.Fatalf("Expected nothing pending, got ok=%v err=%v", ok, err)
	}

	w.Write([]byte("wr"))

	for _, want := range []byte("wr") {
		b, ok, err := term.PollKey()
		if err != nil || !ok {
			t.Fatalf("Expected key %q, got ok=%v err=%v", want, ok, err)
		}
		if b != want {
			t.Errorf("Expected key %q, got %q", want, b)
		}
	}

	if _, ok, _ := term.PollKey(); ok {
		t.Error("Expected input to be drained")
	}
}

func TestPollKeyEOF(t *testing.T) {
	term, w, _ := pipeTerminal(t)
	w.Close()

	if _, _, err := term.PollKey(); !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestPrintIsBufferedUntilFlush(t *testing.T) {
	term, _, out := pipeTerminal(t)

	term.Clear()
	term.Print(17, 12, "Battery 50 %")
	if out.Len() != 0 {
		t.Fatalf("Expected nothing written before Flush, got %q", out.String())
	}
	if err := term.Flush(); err != nil {
		t.Fatalf("Flush failed with %v", err)
	}

	want := "\x1b[2J\x1b[H\x1b[12;17HBattery 50 %"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestFlushReportsWriteErrors(t *testing.T) {
	term := newTerminal(-1, failingWriter{})
	term.Print(1, 1, "DJI Tello CLI")
	if err := term.Flush(); err == nil {
		t.Error("Expected Flush to fail")
	}
}

func TestCloseTwice(t *testing.T) {
	term, _, out := pipeTerminal(t)

	if err := term.Close(); err != nil {
		t.Fatalf("Close failed with %v", err)
	}
	if !bytes.Contains(out.Bytes(), csiCursorShow) {
		t.Error("Expected the cursor to be shown again")
	}
	n := out.Len()
	if err := term.Close(); err != nil {
		t.Fatalf("Second Close failed with %v", err)
	}
	if out.Len() != n {
		t.Error("Second Close wrote to the screen")
	}
}
