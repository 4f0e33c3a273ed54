// messages.go

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

	"github.com/lunixbochs/struc"
)

const msgHdr = 0xcc // 204

// packet is our internal representation of the messages passed to/from the Tello
type packet struct {
	header        byte
	size13        uint16
	crc8          byte
	fromDrone     bool // the following 4 fields are encoded in a single byte in the raw packet
	toDrone       bool
	packetType    uint8 // 3-bit
	packetSubtype uint8 // 3-bit
	messageID     uint16
	sequence      uint16
	payload       []byte
	crc16         uint16
}

const minPktSize = 11 // smallest possible raw packet

// tello packet types, 3 and 7 currently unknown
const (
	ptExtended = 0
	ptGet      = 1
	ptData1    = 2
	ptData2    = 4
	ptSet      = 5
	ptFlip     = 6
)

// Tello message IDs we send or understand
const (
	msgDoConnect     = 0x0001 // 1
	msgConnected     = 0x0002 // 2
	msgWifiStrength  = 0x001a // 26
	msgLightStrength = 0x0035 // 53
	msgSetDateTime   = 0x0046 // 70
	msgSetStick      = 0x0050 // 80
	msgDoTakeoff     = 0x0054 // 84
	msgDoLand        = 0x0055 // 85
	msgFlightStatus  = 0x0056 // 86
	msgLogHeader     = 0x1050 // 4176
)

// the initial handshake is plain text rather than a packet
var (
	connReqPrefix = []byte("conn_req:")
	connAckPrefix = []byte("conn_ack:")
)

const connAckSize = 11

// Errors returned while decoding raw buffers from the drone.
var (
	ErrShortPacket = errors.New("tello: packet too short")
	ErrBadHeader   = errors.New("tello: bad packet header")
	ErrBadCRC      = errors.New("tello: packet CRC mismatch")
)

// Message is anything the drone sends us on the control channel.
// The concrete types are FlightStatus, LightInfo, ConnAck and Unknown.
type Message interface {
	isMessage()
}

// FlightStatus carries a freshly decoded flight status report.
type FlightStatus struct {
	FlightData
}

// LightInfo carries the drone's ambient light indicator.
type LightInfo struct {
	LightStrength uint8
}

// ConnAck is the drone's answer to a connection request.
type ConnAck struct {
	VideoPort uint16
}

// Unknown is any packet we do not surface to the caller.
type Unknown struct {
	MessageID uint16
}

func (FlightStatus) isMessage() {}
func (LightInfo) isMessage()    {}
func (ConnAck) isMessage()      {}
func (Unknown) isMessage()      {}

// FlightData holds the flight status fields reported by the drone.
type FlightData struct {
	BatteryLow               bool
	BatteryCritical          bool
	BatteryMilliVolts        int16
	BatteryPercentage        int8
	BatteryState             bool
	CameraState              uint8
	DownVisualState          bool
	DroneFlyTimeLeft         int16
	DroneHover               bool
	EmOpen                   bool
	EastSpeed                int16
	ElectricalMachineryState uint8
	FactoryMode              bool
	Flying                   bool
	FlyMode                  uint8
	FlyTime                  int16 // tenths of a second
	FrontIn                  bool
	FrontLSC                 bool
	FrontOut                 bool
	GravityState             bool
	Height                   int16 // seems to be in decimetres
	ImuCalibrationState      int8
	ImuState                 bool
	NorthSpeed               int16
	OnGround                 bool
	OutageRecording          bool
	OverTemp                 bool
	PowerState               bool
	PressureState            bool
	ThrowFlyTimer            int8
	VerticalSpeed            int16
	WindState                bool
}

// flightStatusPayload is the wire layout of a msgFlightStatus payload
type flightStatusPayload struct {
	Height                   int16 `struc:"int16,little"`
	NorthSpeed               int16 `struc:"int16,little"`
	EastSpeed                int16 `struc:"int16,little"`
	VerticalSpeed            int16 `struc:"int16,little"`
	FlyTime                  int16 `struc:"int16,little"`
	SensorFlags              uint8 `struc:"uint8"`
	ImuCalibrationState      int8  `struc:"int8"`
	BatteryPercentage        int8  `struc:"int8"`
	DroneFlyTimeLeft         int16 `struc:"int16,little"`
	BatteryMilliVolts        int16 `struc:"int16,little"`
	StateFlags               uint8 `struc:"uint8"`
	FlyMode                  uint8 `struc:"uint8"`
	ThrowFlyTimer            int8  `struc:"int8"`
	CameraState              uint8 `struc:"uint8"`
	ElectricalMachineryState uint8 `struc:"uint8"`
	FrontFlags               uint8 `struc:"uint8"`
	TempFlags                uint8 `struc:"uint8"`
}

const flightStatusSize = 24

// utility funcs for message handling

func bit(b uint8, n uint) bool {
	return (b>>n)&1 == 1
}

// bufferToPacket takes a raw buffer of bytes and populates our packet struct
func bufferToPacket(buff []byte) (pkt packet, err error) {
	if len(buff) < minPktSize {
		return pkt, ErrShortPacket
	}
	if buff[0] != msgHdr {
		return pkt, ErrBadHeader
	}
	pkt.header = buff[0]
	pkt.size13 = (uint16(buff[1]) + uint16(buff[2])<<8) >> 3
	if int(pkt.size13) < minPktSize || int(pkt.size13) > len(buff) {
		return pkt, fmt.Errorf("%w: declared %d, have %d", ErrShortPacket, pkt.size13, len(buff))
	}
	pkt.crc8 = buff[3]
	if calculateCRC8(buff[0:3]) != pkt.crc8 {
		return pkt, fmt.Errorf("%w: header", ErrBadCRC)
	}
	pkt.fromDrone = (buff[4] & 0x80) != 0
	pkt.toDrone = (buff[4] & 0x40) != 0
	pkt.packetType = (buff[4] >> 3) & 0x07
	pkt.packetSubtype = buff[4] & 0x07
	pkt.messageID = (uint16(buff[6]) << 8) | uint16(buff[5])
	pkt.sequence = (uint16(buff[8]) << 8) | uint16(buff[7])
	payloadSize := pkt.size13 - minPktSize
	if payloadSize > 0 {
		pkt.payload = make([]byte, payloadSize)
		copy(pkt.payload, buff[9:9+payloadSize])
	}
	pkt.crc16 = uint16(buff[pkt.size13-1])<<8 + uint16(buff[pkt.size13-2])
	if calculateCRC16(buff[0:pkt.size13-2]) != pkt.crc16 {
		return pkt, fmt.Errorf("%w: body", ErrBadCRC)
	}
	return pkt, nil
}

// newPacket returns a packet with some fields populated
func newPacket(pt uint8, cmd uint16, seq uint16, payloadSize int) (pkt packet) {
	pkt.header = msgHdr
	pkt.toDrone = true
	pkt.packetType = pt
	pkt.messageID = cmd
	pkt.sequence = seq
	if payloadSize > 0 {
		pkt.payload = make([]byte, payloadSize)
	}
	return pkt
}

// pack the packet into raw buffer format and calculate CRCs etc.
func packetToBuffer(pkt packet) (buff []byte) {
	payloadSize := len(pkt.payload)
	packetSize := minPktSize + payloadSize
	buff = make([]byte, packetSize)

	buff[0] = pkt.header
	buff[1] = byte(packetSize << 3)
	buff[2] = byte(packetSize >> 5)
	buff[3] = calculateCRC8(buff[0:3])
	buff[4] = pkt.packetSubtype + (pkt.packetType << 3)
	if pkt.toDrone {
		buff[4] |= 0x40
	}
	if pkt.fromDrone {
		buff[4] |= 0x80
	}
	buff[5] = byte(pkt.messageID)
	buff[6] = byte(pkt.messageID >> 8)
	buff[7] = byte(pkt.sequence)
	buff[8] = byte(pkt.sequence >> 8)

	copy(buff[9:], pkt.payload)
	crc16 := calculateCRC16(buff[0 : 9+payloadSize])
	buff[9+payloadSize] = byte(crc16)
	buff[10+payloadSize] = byte(crc16 >> 8)

	return buff
}

func payloadToFlightData(pl []byte) (fd FlightData, err error) {
	if len(pl) < flightStatusSize {
		return fd, fmt.Errorf("%w: flight status payload is %d bytes", ErrShortPacket, len(pl))
	}
	var w flightStatusPayload
	if err = struc.Unpack(bytes.NewReader(pl[:flightStatusSize]), &w); err != nil {
		return fd, fmt.Errorf("unpack flight status: %w", err)
	}

	fd.Height = w.Height
	fd.NorthSpeed = w.NorthSpeed
	fd.EastSpeed = w.EastSpeed
	fd.VerticalSpeed = w.VerticalSpeed
	fd.FlyTime = w.FlyTime

	fd.ImuState = bit(w.SensorFlags, 0)
	fd.PressureState = bit(w.SensorFlags, 1)
	fd.DownVisualState = bit(w.SensorFlags, 2)
	fd.PowerState = bit(w.SensorFlags, 3)
	fd.BatteryState = bit(w.SensorFlags, 4)
	fd.GravityState = bit(w.SensorFlags, 5)
	// what is bit 6?
	fd.WindState = bit(w.SensorFlags, 7)

	fd.ImuCalibrationState = w.ImuCalibrationState
	fd.BatteryPercentage = w.BatteryPercentage
	fd.DroneFlyTimeLeft = w.DroneFlyTimeLeft
	fd.BatteryMilliVolts = w.BatteryMilliVolts

	fd.Flying = bit(w.StateFlags, 0)
	fd.OnGround = bit(w.StateFlags, 1)
	fd.EmOpen = bit(w.StateFlags, 2)
	fd.DroneHover = bit(w.StateFlags, 3)
	fd.OutageRecording = bit(w.StateFlags, 4)
	fd.BatteryLow = bit(w.StateFlags, 5)
	fd.BatteryCritical = bit(w.StateFlags, 6)
	fd.FactoryMode = bit(w.StateFlags, 7)

	fd.FlyMode = w.FlyMode
	fd.ThrowFlyTimer = w.ThrowFlyTimer
	fd.CameraState = w.CameraState
	fd.ElectricalMachineryState = w.ElectricalMachineryState

	fd.FrontIn = bit(w.FrontFlags, 0)
	fd.FrontOut = bit(w.FrontFlags, 1)
	fd.FrontLSC = bit(w.FrontFlags, 2)
	fd.OverTemp = bit(w.TempFlags, 0)

	return fd, nil
}

// jsFloatToTello maps a stick position in [-1, 1] onto the drone's 11-bit 660..1388 range
func jsFloatToTello(fv float32) uint64 {
	if fv > 1 {
		fv = 1
	} else if fv < -1 {
		fv = -1
	}
	return uint64(364*fv + 1024)
}

// packStickAxes packs the four axes and the fast-mode flag into the 45 bits the drone expects.
// We are using the drone's convention: Rx is lateral, Ry is longitudinal,
// Ly is vertical and Lx is yaw.
func packStickAxes(vertical, lateral, longitudinal, yaw float32, fast bool) (packedAxes uint64) {
	packedAxes = jsFloatToTello(lateral) & 0x07ff
	packedAxes |= (jsFloatToTello(longitudinal) & 0x07ff) << 11
	packedAxes |= (jsFloatToTello(vertical) & 0x07ff) << 22
	packedAxes |= (jsFloatToTello(yaw) & 0x07ff) << 33
	if fast {
		packedAxes |= 1 << 44
	}
	return packedAxes
}
