// loop.go

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
	"log"
	"time"

	"github.com/SMerrony/tellocli/tello"
)

const (
	// Period is the pause after each tick's work. It is not a deadline:
	// time spent in the tick itself is not subtracted, so the cadence drifts
	// under load.
	Period = time.Second / 20
	// TelemetryPort is the local port we ask the drone to stream to.
	TelemetryPort = 11111
)

// Link is the drone end of the loop.
type Link interface {
	Connect(videoPort uint16) error
	Poll() (tello.Message, bool)
	SendMotion(vertical, lateral, longitudinal, yaw float32, fast bool) error
	TakeOff() error
	Land() error
}

// Keyboard yields at most one pending key byte per call and never blocks.
type Keyboard interface {
	PollKey() (byte, bool, error)
}

// Loop multiplexes the keyboard, the drone and the screen on one goroutine.
type Loop struct {
	link   Link
	keys   Keyboard
	screen Screen
	sleep  func(time.Duration)
}

// New returns a Loop that owns link, keys and screen while it runs.
func New(link Link, keys Keyboard, screen Screen) *Loop {
	return &Loop{
		link:   link,
		keys:   keys,
		screen: screen,
		sleep:  time.Sleep,
	}
}

// Run says hello to the drone then ticks until the user quits or something
// fails. The first error ends the run; nothing is retried and no landing is
// commanded on the way out.
func (l *Loop) Run() error {
	l.screen.Clear()
	if err := l.screen.Flush(); err != nil {
		return fmt.Errorf("flush screen: %w", err)
	}

	if err := l.link.Connect(TelemetryPort); err != nil {
		log.Printf("Connect request failed - %v\n", err)
	}

	st := NewState()
	for {
		var err error
		if st, err = l.Tick(st); err != nil {
			return err
		}
		if !st.Running {
			log.Println("Quit requested")
			return nil
		}
		l.sleep(Period)
	}
}

// Tick does one round: one key, one telemetry message, one stick update and
// one repaint. A quit key ends the tick straight away with Running false.
func (l *Loop) Tick(st State) (State, error) {
	b, ok, err := l.keys.PollKey()
	if err != nil {
		return st, fmt.Errorf("read key: %w", err)
	}
	if ok {
		switch action := Classify(b); action {
		case Quit:
			st.Running = false
			return st, nil
		case TakeOff:
			log.Println("Take off")
			if err := l.link.TakeOff(); err != nil {
				return st, fmt.Errorf("take off: %w", err)
			}
		case Land:
			log.Println("Land")
			if err := l.link.Land(); err != nil {
				return st, fmt.Errorf("land: %w", err)
			}
		default:
			st.Axes = st.Axes.Apply(action)
		}
	}

	if msg, ok := l.link.Poll(); ok {
		st.Telemetry = st.Telemetry.Ingest(msg)
	}

	ax := st.Axes
	if err := l.link.SendMotion(float32(ax.Vertical), float32(ax.Lateral),
		float32(ax.Longitudinal), float32(ax.Yaw), false); err != nil {
		return st, fmt.Errorf("send sticks: %w", err)
	}

	if err := Render(l.screen, st); err != nil {
		return st, err
	}
	return st, nil
}
