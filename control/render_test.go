// tellocli project render_test.go

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
	"errors"
	"testing"

	"github.com/SMerrony/tellocli/tello"
)

func TestRenderDefaults(t *testing.T) {
	scr := newFakeScreen()
	if err := Render(scr, NewState()); err != nil {
		t.Fatalf("Render failed with %v", err)
	}

	want := map[[2]int]string{
		{1, 1}:   "DJI Tello CLI",
		{1, 3}:   "(x) Quit",
		{1, 4}:   "(t) Take off",
		{1, 5}:   "(l) Land now",
		{1, 12}:  "Connected No",
		{17, 12}: "Battery 0 %",
		{35, 12}: "Height 0 dm",
		{50, 12}: "FlightTime 0.0 sec",
		{1, 13}:  "Light -",
		{1, 14}:  "Sticks up +0 right +0 fwd +0 turn +0",
	}
	for pos, s := range want {
		if got := scr.at(pos[0], pos[1]); got != s {
			t.Errorf("At %v expected %q, got %q", pos, s, got)
		}
	}
	if scr.clears != 1 || scr.flushes != 1 {
		t.Errorf("Expected one clear and one flush, got %d and %d", scr.clears, scr.flushes)
	}
}

func TestRenderTelemetry(t *testing.T) {
	st := NewState()
	st.Telemetry = st.Telemetry.
		Ingest(tello.ConnAck{}).
		Ingest(status(73, 15, 125)).
		Ingest(tello.LightInfo{LightStrength: 1})
	st.Axes = Axes{Vertical: 1, Yaw: -1}

	scr := newFakeScreen()
	if err := Render(scr, st); err != nil {
		t.Fatalf("Render failed with %v", err)
	}

	checks := []struct {
		col, row int
		want     string
	}{
		{1, 12, "Connected Yes"},
		{17, 12, "Battery 73 %"},
		{35, 12, "Height 15 dm"},
		{50, 12, "FlightTime 12.5 sec"},
		{1, 13, "Light 1"},
		{1, 14, "Sticks up +1 right +0 fwd +0 turn -1"},
	}
	for _, c := range checks {
		if got := scr.at(c.col, c.row); got != c.want {
			t.Errorf("At %d,%d expected %q, got %q", c.col, c.row, c.want, got)
		}
	}
}

func TestRenderFlushError(t *testing.T) {
	boom := errors.New("boom")
	scr := newFakeScreen()
	scr.flushErr = boom

	if err := Render(scr, NewState()); !errors.Is(err, boom) {
		t.Errorf("Expected wrapped flush error, got %v", err)
	}
}
