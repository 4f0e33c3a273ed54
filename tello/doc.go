// doc.go

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

/*Package tello provides a small, single-threaded control link for the Ryze Tello® drone.

Disclaimer

Tello is a registered trademark of Ryze Tech.  The author(s) of this package is/are in no way affiliated with Ryze, DJI, or Intel.
The protocol knowledge here was gathered from a variety of sources on the Internet
(especially the generous contributors at  https://tellopilots.com), and by examining data packets sent to/from the Tello.

Use this package at your own risk.  The author(s) is/are in no way responsible for any damage caused either to or by the
drone when using this software.

Polling, not Goroutines

Unlike a general purpose drone API, nothing here runs in the background.
Dial opens the UDP control connection, Connect says hello, and the caller then
drives everything from its own loop: Poll returns at most one pending Message
and never blocks, SendMotion transmits the current stick positions, and
TakeOff/Land are sent without waiting for any confirmation.

The drone expects stick updates continuously; sending one every 50ms or so
doubles as the connection keepalive.

Messages

Poll yields one of FlightStatus, LightInfo, ConnAck or Unknown.  Date/time
requests and flight log headers from the drone are answered inside Poll and
surface as Unknown.
*/
package tello
