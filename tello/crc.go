// crc.go

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

// The Tello uses a reflected CRC-8 (poly 0x31) seeded with 0x77 over the
// first three header bytes, and a reflected CRC-16 (poly 0x1021) seeded
// with 0x3692 over everything before the trailing checksum.
const (
	crc8Seed  = 0x77
	crc8Poly  = 0x8c // 0x31 reflected
	crc16Seed = 0x3692
	crc16Poly = 0x8408 // 0x1021 reflected
)

var (
	crc8Table  [256]byte
	crc16Table [256]uint16
)

func init() {
	for i := 0; i < 256; i++ {
		c8 := byte(i)
		c16 := uint16(i)
		for b := 0; b < 8; b++ {
			if c8&1 == 1 {
				c8 = (c8 >> 1) ^ crc8Poly
			} else {
				c8 >>= 1
			}
			if c16&1 == 1 {
				c16 = (c16 >> 1) ^ crc16Poly
			} else {
				c16 >>= 1
			}
		}
		crc8Table[i] = c8
		crc16Table[i] = c16
	}
}

func calculateCRC8(buf []byte) byte {
	crc := byte(crc8Seed)
	for _, b := range buf {
		crc = crc8Table[crc^b]
	}
	return crc
}

func calculateCRC16(buf []byte) uint16 {
	crc := uint16(crc16Seed)
	for _, b := range buf {
		crc = crc16Table[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}
