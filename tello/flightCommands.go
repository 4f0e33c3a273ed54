// flightCommands.go

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

package tello

// TakeOff sends a normal takeoff request to the Tello
func (d *Drone) TakeOff() error {
	d.ctrlSeq++
	pkt := newPacket(ptSet, msgDoTakeoff, d.ctrlSeq, 0)
	return d.send(pkt)
}

// Land sends a normal Land request to the Tello
func (d *Drone) Land() error {
	d.ctrlSeq++
	pkt := newPacket(ptSet, msgDoLand, d.ctrlSeq, 1)
	pkt.payload[0] = 0
	return d.send(pkt)
}

// SendMotion transmits one stick update. Each axis ranges from -1 to 1,
// positive meaning up, right, forward and clockwise respectively.
// fast selects the drone's 'sports' mode.
func (d *Drone) SendMotion(vertical, lateral, longitudinal, yaw float32, fast bool) error {
	pkt := newPacket(ptData2, msgSetStick, 0, 11)

	// This packing of the joystick data is just vile...
	packedAxes := packStickAxes(vertical, lateral, longitudinal, yaw, fast)
	pkt.payload[0] = byte(packedAxes)
	pkt.payload[1] = byte(packedAxes >> 8)
	pkt.payload[2] = byte(packedAxes >> 16)
	pkt.payload[3] = byte(packedAxes >> 24)
	pkt.payload[4] = byte(packedAxes >> 32)
	pkt.payload[5] = byte(packedAxes >> 40)

	now := d.now()
	pkt.payload[6] = byte(now.Hour())
	pkt.payload[7] = byte(now.Minute())
	pkt.payload[8] = byte(now.Second())
	ms := now.UnixNano() / 1000000
	pkt.payload[9] = byte(ms & 0xff)
	pkt.payload[10] = byte(ms >> 8)

	return d.send(pkt)
}
