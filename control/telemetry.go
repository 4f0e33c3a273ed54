// telemetry.go

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

import "github.com/SMerrony/tellocli/tello"

// Telemetry is the last known state reported by the drone.
// Nil records have never been received. Nothing is ever cleared, so stale
// values stay on screen if the link goes quiet, and Connected stays true
// once set.
type Telemetry struct {
	Flight    *tello.FlightData
	Light     *tello.LightInfo
	Connected bool
}

// Ingest returns the cache updated with msg; the latest record always wins.
func (tm Telemetry) Ingest(msg tello.Message) Telemetry {
	switch m := msg.(type) {
	case tello.FlightStatus:
		fd := m.FlightData
		tm.Flight = &fd
	case tello.LightInfo:
		tm.Light = &m
	case tello.ConnAck:
		tm.Connected = true
	}
	return tm
}

// Battery is the charge in percent, 0 until reported.
func (tm Telemetry) Battery() int {
	if tm.Flight == nil {
		return 0
	}
	return int(tm.Flight.BatteryPercentage)
}

// Height is in decimetres, 0 until reported.
func (tm Telemetry) Height() int {
	if tm.Flight == nil {
		return 0
	}
	return int(tm.Flight.Height)
}

// FlightTime is in seconds; the drone counts in tenths.
func (tm Telemetry) FlightTime() float64 {
	if tm.Flight == nil {
		return 0
	}
	return float64(tm.Flight.FlyTime) / 10.0
}
