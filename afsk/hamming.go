/*
NAME
  hamming.go

DESCRIPTION
  hamming.go implements the Hamming(7,4) forward error correction codec:
  encoding 4-bit nibbles into 7-bit codewords, and decoding codewords back
  into nibbles with single-bit correction.

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

// generatorMatrix is G from spec: codeword c = G*d mod 2, parity bits at
// positions 1, 2, 4 and data bits at positions 3, 5, 6, 7.
var generatorMatrix = [7][4]int{
	{1, 1, 0, 1},
	{1, 0, 1, 1},
	{1, 0, 0, 0},
	{0, 1, 1, 1},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// parityCheckMatrix is H from spec, used to compute the syndrome of a
// received codeword.
var parityCheckMatrix = [3][7]int{
	{1, 0, 1, 0, 1, 0, 1},
	{0, 1, 1, 0, 0, 1, 1},
	{0, 0, 0, 1, 1, 1, 1},
}

// hammingEncode groups bits into 4-bit nibbles (MSB first within each
// nibble) and emits a 7-bit codeword per nibble via the generator matrix.
// The caller must supply a bit count that is a multiple of 4; payload
// bytes are always a multiple of 8, so this invariant always holds in
// practice, and hammingEncode does not guard against violations.
func hammingEncode(bits []int) []int {
	out := make([]int, 0, (len(bits)/4)*7)
	for i := 0; i+4 <= len(bits); i += 4 {
		d := bits[i : i+4]
		for row := 0; row < 7; row++ {
			sum := 0
			for col := 0; col < 4; col++ {
				sum += generatorMatrix[row][col] * d[col]
			}
			out = append(out, sum%2)
		}
	}
	return out
}

// hammingDecode consumes consecutive 7-bit groups, computes the syndrome
// of each via the parity-check matrix, corrects a single-bit error when
// the syndrome is non-zero, and emits the four data bits (positions 3, 5,
// 6, 7) per group. It returns the decoded bits and the number of
// corrections applied. A trailing partial group (fewer than 7 bits) is
// discarded. hammingDecode never fails: an empty input yields empty
// output and zero corrections.
func hammingDecode(bits []int) (decoded []int, corrected int) {
	decoded = make([]int, 0, (len(bits)/7)*4)
	for i := 0; i+7 <= len(bits); i += 7 {
		c := make([]int, 7)
		copy(c, bits[i:i+7])

		syndrome := 0
		for row := 0; row < 3; row++ {
			sum := 0
			for col := 0; col < 7; col++ {
				sum += parityCheckMatrix[row][col] * c[col]
			}
			if sum%2 == 1 {
				syndrome |= 1 << uint(row)
			}
		}

		if syndrome != 0 {
			c[syndrome-1] ^= 1
			corrected++
		}

		// Data bits are at 1-indexed positions 3, 5, 6, 7.
		decoded = append(decoded, c[2], c[4], c[5], c[6])
	}
	return decoded, corrected
}
