// render.go

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
	"strconv"
)

// Screen is a cursor-addressed display; positions are 1-based (column, row).
type Screen interface {
	Clear()
	Print(col, row int, s string)
	Flush() error
}

const statusRow = 12

// Render repaints the whole screen from st. Every call clears first, so
// there is some flicker.
func Render(scr Screen, st State) error {
	tm := st.Telemetry

	scr.Clear()
	scr.Print(1, 1, "DJI Tello CLI")
	scr.Print(1, 3, "(x) Quit")
	scr.Print(1, 4, "(t) Take off")
	scr.Print(1, 5, "(l) Land now")
	scr.Print(1, 6, "(w/s) Forward/Back  (a/d) Left/Right")
	scr.Print(1, 7, "(r/f) Up/Down  (q/e) Turn  (space) Stop")

	scr.Print(1, statusRow, "Connected "+yesNo(tm.Connected))
	scr.Print(17, statusRow, fmt.Sprintf("Battery %d %%", tm.Battery()))
	scr.Print(35, statusRow, fmt.Sprintf("Height %d dm", tm.Height()))
	scr.Print(50, statusRow, fmt.Sprintf("FlightTime %.1f sec", tm.FlightTime()))

	light := "-"
	if tm.Light != nil {
		light = strconv.Itoa(int(tm.Light.LightStrength))
	}
	scr.Print(1, statusRow+1, "Light "+light)

	ax := st.Axes
	scr.Print(1, statusRow+2, fmt.Sprintf("Sticks up %+d right %+d fwd %+d turn %+d",
		ax.Vertical, ax.Lateral, ax.Longitudinal, ax.Yaw))

	if err := scr.Flush(); err != nil {
		return fmt.Errorf("flush screen: %w", err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
