// axes.go

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

// Axes is the motion intent: each axis is -1, 0 or +1 and stays put until
// another key changes it.
type Axes struct {
	Vertical     int8 // +1 up
	Lateral      int8 // +1 right
	Longitudinal int8 // +1 forward
	Yaw          int8 // +1 clockwise
}

// Apply returns the intent after action. Actions that are not about the
// sticks leave it unchanged.
func (ax Axes) Apply(action Action) Axes {
	switch action {
	case YawLeft:
		ax.Yaw = -1
	case YawRight:
		ax.Yaw = 1
	case Up:
		ax.Vertical = 1
	case Down:
		ax.Vertical = -1
	case Forward:
		ax.Longitudinal = 1
	case Backward:
		ax.Longitudinal = -1
	case Right:
		ax.Lateral = 1
	case Left:
		ax.Lateral = -1
	case Stop:
		ax = Axes{}
	}
	return ax
}
