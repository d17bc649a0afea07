/*
NAME
  bits.go

DESCRIPTION
  bits.go provides MSB-first conversion between bytes and bits.

AUTHOR
  Ora Bellweather <ora@saltmarsh.radio>

LICENSE
  Copyright (C) 2024 the Saltmarsh Radio Collective. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Saltmarsh Radio Collective.
*/

package afsk

// bytesToBits converts a byte slice to a slice of bits (0 or 1), MSB first
// within each byte, concatenated in byte order.
func bytesToBits(data []byte) []int {
	bits := make([]int, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, int((b>>uint(i))&1))
		}
	}
	return bits
}

// bitsToBytes packs bits into bytes, MSB first, consuming them in groups of
// 8. A trailing partial byte (fewer than 8 remaining bits) is discarded.
func bitsToBytes(bits []int) []byte {
	n := len(bits) / 8
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | byte(bits[i*8+j]&1)
		}
		out[i] = b
	}
	return out
}
