// flog.go

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

import "fmt"

const msgLogData = 0x1051 // 4177

// ackLogHeader answers a msgLogHeader, otherwise the drone keeps resending it
func (d *Drone) ackLogHeader(payload []byte) error {
	if len(payload) < 2 {
		return fmt.Errorf("%w: log header payload is %d bytes", ErrShortPacket, len(payload))
	}
	d.ctrlSeq++
	pkt := newPacket(ptData1, msgLogHeader, d.ctrlSeq, 3)
	pkt.payload[1] = payload[0]
	pkt.payload[2] = payload[1]
	return d.send(pkt)
}
