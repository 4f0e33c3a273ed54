// tellocli project fakes_test.go

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

package control

import (
	"fmt"

	"github.com/SMerrony/tellocli/tello"
)

type motion struct {
	vertical, lateral, longitudinal, yaw float32
	fast                                 bool
}

type fakeLink struct {
	connects  []uint16
	inbox     []tello.Message
	polls     int
	motions   []motion
	takeOffs  int
	lands     int
	calls     []string
	connErr   error
	motionErr error
	cmdErr    error
}

func (f *fakeLink) Connect(port uint16) error {
	f.connects = append(f.connects, port)
	f.calls = append(f.calls, "connect")
	return f.connErr
}

func (f *fakeLink) Poll() (tello.Message, bool) {
	f.polls++
	f.calls = append(f.calls, "poll")
	if len(f.inbox) == 0 {
		return nil, false
	}
	msg := f.inbox[0]
	f.inbox = f.inbox[1:]
	return msg, true
}

func (f *fakeLink) SendMotion(vertical, lateral, longitudinal, yaw float32, fast bool) error {
	f.calls = append(f.calls, "motion")
	if f.motionErr != nil {
		return f.motionErr
	}
	f.motions = append(f.motions, motion{vertical, lateral, longitudinal, yaw, fast})
	return nil
}

func (f *fakeLink) TakeOff() error {
	f.calls = append(f.calls, "takeoff")
	if f.cmdErr != nil {
		return f.cmdErr
	}
	f.takeOffs++
	return nil
}

func (f *fakeLink) Land() error {
	f.calls = append(f.calls, "land")
	if f.cmdErr != nil {
		return f.cmdErr
	}
	f.lands++
	return nil
}

type fakeKeys struct {
	pending []byte
	err     error
}

func (f *fakeKeys) PollKey() (byte, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	if len(f.pending) == 0 {
		return 0, false, nil
	}
	b := f.pending[0]
	f.pending = f.pending[1:]
	return b, true, nil
}

// fakeScreen keeps what is currently painted, keyed by "col,row"
type fakeScreen struct {
	cells    map[string]string
	clears   int
	flushes  int
	flushErr error
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{cells: map[string]string{}}
}

func (f *fakeScreen) Clear() {
	f.clears++
	f.cells = map[string]string{}
}

func (f *fakeScreen) Print(col, row int, s string) {
	f.cells[fmt.Sprintf("%d,%d", col, row)] = s
}

func (f *fakeScreen) Flush() error {
	f.flushes++
	return f.flushErr
}

func (f *fakeScreen) at(col, row int) string {
	return f.cells[fmt.Sprintf("%d,%d", col, row)]
}
