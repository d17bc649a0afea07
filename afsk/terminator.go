/*
NAME
  terminator.go

DESCRIPTION
  terminator.go scans forward from the symbol-phase origin for the
  training terminator and then extracts payload bits until end-of-burst.

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

// extractPayloadBits walks forward from origin one symbol window at a time,
// discarding bits until the most recent four decoded bits equal
// TerminatorBits (1 0 0 0), then continues decoding and emitting bits until
// either fewer than BitFrames samples remain or the next window's mean
// absolute amplitude falls below endThreshold. It returns the emitted
// payload bits and whether a terminator was found at all.
func extractPayloadBits(burst []int16, origin int, p Profile, endThreshold int) ([]int, bool) {
	f := p.BitFrames
	cursor := origin
	var window [4]int

	// Scan the training preamble for the terminator.
	for {
		if cursor+f > len(burst) {
			return nil, false
		}
		bit := decideSymbol(burst[cursor:cursor+f], p)
		window = pushBit(window, bit)
		cursor += f
		if window == TerminatorBits {
			break
		}
	}

	// Decode payload bits until end-of-burst.
	var bits []int
	for {
		if cursor+f > len(burst) {
			break
		}
		next := burst[cursor : cursor+f]
		if meanAbsAmplitude(next) < endThreshold {
			break
		}
		bits = append(bits, decideSymbol(next, p))
		cursor += f
	}
	return bits, true
}

// pushBit shifts a 4-bit sliding window left and appends bit.
func pushBit(win [4]int, bit int) [4]int {
	win[0], win[1], win[2] = win[1], win[2], win[3]
	win[3] = bit
	return win
}
