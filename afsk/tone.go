/*
NAME
  tone.go

DESCRIPTION
  tone.go synthesizes the ideal mark, space, and training-cycle templates
  for a given (baud, bit frame) pair.

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

// synthesizeMarkSpace builds the space template (one square-wave period at
// baud) and the mark template (two square-wave periods at 2*baud,
// concatenated) for a bit frame of length bitFrames samples. The caller's
// baud must already satisfy the divisibility constraints checked by
// validateBaud, so bitFrames and bitFrames/2 are both even integers and no
// rounding occurs here.
func synthesizeMarkSpace(baud, bitFrames int) (mark, space []int16) {
	space = squarePeriod(bitFrames)

	markHalf := squarePeriod(bitFrames / 2)
	mark = make([]int16, 0, bitFrames)
	mark = append(mark, markHalf...)
	mark = append(mark, markHalf...)

	return mark, space
}

// squarePeriod returns one square-wave period of the given length: the
// first half at FullScaleHigh, the second half at FullScaleLow.
func squarePeriod(length int) []int16 {
	out := make([]int16, length)
	half := length / 2
	for i := 0; i < half; i++ {
		out[i] = FullScaleHigh
	}
	for i := half; i < length; i++ {
		out[i] = FullScaleLow
	}
	return out
}

// silence returns n samples of zero amplitude.
func silence(n int) []int16 {
	return make([]int16, n)
}
