// drone.go

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

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

const (
	// DefaultAddr is where the drone listens for control packets on its own access point.
	DefaultAddr = "192.168.10.1:8889"
	// DefaultLocalPort is the local UDP port we bind the control connection to.
	DefaultLocalPort = 8800
)

const maxDatagram = 4096

// Drone is a single-threaded control connection to a Tello.
// Nothing runs in the background: replies are only read when Poll is called,
// and the caller is expected to send stick updates often enough to keep the
// drone from timing out. A Drone is not safe for concurrent use.
type Drone struct {
	conn    *net.UDPConn
	raw     syscall.RawConn
	ctrlSeq uint16
	buff    []byte
	lastErr error // last read error logged, to avoid repeating it every tick
	now     func() time.Time
}

// Dial opens the control connection to a Tello at droneAddr ("host:port"),
// bound locally to localPort (0 picks an ephemeral port).
// No packets are exchanged until Connect is called.
func Dial(droneAddr string, localPort int) (*Drone, error) {
	remote, err := net.ResolveUDPAddr("udp", droneAddr)
	if err != nil {
		return nil, fmt.Errorf("resolve drone address: %w", err)
	}
	local, err := net.ResolveUDPAddr("udp", ":"+strconv.Itoa(localPort))
	if err != nil {
		return nil, fmt.Errorf("resolve local address: %w", err)
	}
	conn, err := net.DialUDP("udp", local, remote)
	if err != nil {
		return nil, fmt.Errorf("dial udp: %w", err)
	}
	raw, err := conn.SyscallConn()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("raw udp conn: %w", err)
	}
	return &Drone{
		conn: conn,
		raw:  raw,
		buff: make([]byte, maxDatagram),
		now:  time.Now,
	}, nil
}

// Close releases the control socket. It does not tell the drone anything.
func (d *Drone) Close() error {
	return d.conn.Close()
}

// LocalAddr reports the local end of the control connection.
func (d *Drone) LocalAddr() net.Addr {
	return d.conn.LocalAddr()
}

// Connect says hello to the Tello, asking it to stream video to videoPort.
// It does not wait for the answer; a ConnAck will turn up in Poll.
func (d *Drone) Connect(videoPort uint16) error {
	// the initial connect request is different to the usual packets...
	msgBuff := make([]byte, 0, len(connReqPrefix)+2)
	msgBuff = append(msgBuff, connReqPrefix...)
	msgBuff = append(msgBuff, byte(videoPort), byte(videoPort>>8))
	if _, err := d.conn.Write(msgBuff); err != nil {
		return fmt.Errorf("send connect request: %w", err)
	}
	return nil
}

// Poll returns at most one pending message from the drone without blocking.
// ok is false when nothing usable was waiting; read failures and garbled
// packets are logged and reported the same way.
func (d *Drone) Poll() (msg Message, ok bool) {
	n, ok := d.readDatagram()
	if !ok {
		return nil, false
	}
	return d.decode(d.buff[:n])
}

func (d *Drone) readDatagram() (int, bool) {
	var (
		n    int
		rerr error
	)
	err := d.raw.Read(func(fd uintptr) bool {
		n, _, rerr = unix.Recvfrom(int(fd), d.buff, unix.MSG_DONTWAIT)
		return true // never wait for readability
	})
	if err == nil {
		err = rerr
	}
	if err != nil {
		if !errors.Is(err, unix.EAGAIN) && !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, d.lastErr) {
			log.Printf("Network Read Error - %v\n", err)
			d.lastErr = err
		}
		return 0, false
	}
	d.lastErr = nil
	return n, n > 0
}

func (d *Drone) decode(buff []byte) (Message, bool) {
	// the connect response is different...
	if len(buff) == connAckSize && bytes.HasPrefix(buff, connAckPrefix) {
		log.Printf("Debug: conn_ack received, buffer len: %d\n", len(buff))
		return ConnAck{VideoPort: uint16(buff[9]) | uint16(buff[10])<<8}, true
	}

	pkt, err := bufferToPacket(buff)
	if err != nil {
		log.Printf("Unexpected network message from Tello <% x> - %v\n", head(buff), err)
		return nil, false
	}

	switch pkt.messageID {
	case msgFlightStatus:
		fd, err := payloadToFlightData(pkt.payload)
		if err != nil {
			log.Printf("Bad flight status from Tello - %v\n", err)
			return nil, false
		}
		return FlightStatus{FlightData: fd}, true
	case msgLightStrength:
		if len(pkt.payload) < 1 {
			log.Println("Empty light strength message from Tello")
			return nil, false
		}
		return LightInfo{LightStrength: pkt.payload[0]}, true
	case msgSetDateTime:
		if err := d.sendDateTime(); err != nil {
			log.Printf("Could not answer DateTime request - %v\n", err)
		}
	case msgLogHeader:
		if err := d.ackLogHeader(pkt.payload); err != nil {
			log.Printf("Could not ack Log Header - %v\n", err)
		}
	case msgDoLand, msgDoTakeoff, msgSetStick, msgWifiStrength, msgLogData:
		// acknowledgements and chatter we have no use for
	default:
		log.Printf("Unknown message from Tello - ID: <%d>, Size %d, Type: %d\n",
			pkt.messageID, pkt.size13, pkt.packetType)
	}
	return Unknown{MessageID: pkt.messageID}, true
}

func (d *Drone) sendDateTime() error {
	d.ctrlSeq++
	pkt := newPacket(ptData1, msgSetDateTime, d.ctrlSeq, 15)
	pkt.payload[0] = 0

	now := d.now()
	pkt.payload[1] = byte(now.Year())
	pkt.payload[2] = byte(now.Year() >> 8)
	pkt.payload[3] = byte(int(now.Month()))
	pkt.payload[4] = byte(int(now.Month()) >> 8)
	pkt.payload[5] = byte(now.Day())
	pkt.payload[6] = byte(now.Day() >> 8)
	pkt.payload[7] = byte(now.Hour())
	pkt.payload[8] = byte(now.Hour() >> 8)
	pkt.payload[9] = byte(now.Minute())
	pkt.payload[10] = byte(now.Minute() >> 8)
	pkt.payload[11] = byte(now.Second())
	pkt.payload[12] = byte(now.Second() >> 8)
	ms := now.UnixNano() / 1000000
	pkt.payload[13] = byte(ms)
	pkt.payload[14] = byte(ms >> 8)

	return d.send(pkt)
}

func (d *Drone) send(pkt packet) error {
	if _, err := d.conn.Write(packetToBuffer(pkt)); err != nil {
		return fmt.Errorf("send message %d: %w", pkt.messageID, err)
	}
	return nil
}

// head trims a buffer for logging
func head(b []byte) []byte {
	if len(b) > 16 {
		return b[:16]
	}
	return b
}
