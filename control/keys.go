// keys.go

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

// Action is what a single key press asks for.
type Action int

// Actions, in no particular order. Only the axis actions touch the sticks.
const (
	NoOp Action = iota
	Quit
	TakeOff
	Land
	YawLeft
	YawRight
	Up
	Down
	Forward
	Backward
	Right
	Left
	Stop
)

var actionNames = [...]string{
	NoOp:     "NoOp",
	Quit:     "Quit",
	TakeOff:  "TakeOff",
	Land:     "Land",
	YawLeft:  "YawLeft",
	YawRight: "YawRight",
	Up:       "Up",
	Down:     "Down",
	Forward:  "Forward",
	Backward: "Backward",
	Right:    "Right",
	Left:     "Left",
	Stop:     "Stop",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Action(?)"
	}
	return actionNames[a]
}

// keyMap only knows about key-down bytes; a raw tty never tells us a key was released.
var keyMap = map[byte]Action{
	'x': Quit,
	't': TakeOff,
	'l': Land,
	'q': YawLeft,
	'e': YawRight,
	'r': Up,
	'f': Down,
	'w': Forward,
	's': Backward,
	'd': Right,
	'a': Left,
	' ': Stop,
}

// Classify maps a raw key byte to an Action. Unknown keys are NoOp.
func Classify(b byte) Action {
	return keyMap[b]
}
