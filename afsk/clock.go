/*
NAME
  clock.go

DESCRIPTION
  clock.go implements training-sequence clock recovery (locating the
  symbol-phase origin within the first 4096 samples of a burst) and the
  per-symbol decision rule (amplify, then compare against the mark/space
  templates).

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

import "gonum.org/v1/gonum/floats"

// clockSearchWindow is the number of leading samples of a burst searched
// for the symbol-phase origin. This is a property of the fixed audio
// block size, not of baud, and must not be scaled with baud.
const clockSearchWindow = 4096

// amplifierDeadzone is the per-sample deadzone of the symbol slicer's
// amplifier: samples within [-deadzone, deadzone] are treated as zero.
const amplifierDeadzone = 512

// recoverClock locates the offset within the first clockSearchWindow
// samples of burst whose training-cycle-length slice best matches the
// profile's ideal training cycle template, by direct (unamplified)
// mean-absolute-difference comparison. It returns ErrNoClock if burst is
// too short to search.
func recoverClock(burst []int16, p Profile) (int, error) {
	if len(burst) < clockSearchWindow {
		return 0, ErrNoClock
	}

	t := p.TrainingCycleLen()
	ideal := p.TrainingCycle()

	best := -1
	bestDist := 0.0
	for i := 0; i+t < clockSearchWindow; i++ {
		dist := meanAbsDiff(ideal, burst[i:i+t])
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best == -1 {
		return 0, ErrNoClock
	}
	return best, nil
}

// decideSymbol amplifies a decision window of BitFrames samples and
// returns 1 if it is closer (by mean absolute difference) to the mark
// template than the space template, else 0. Ties decide to 0.
func decideSymbol(window []int16, p Profile) int {
	amped := amplify(window)
	markDist := meanAbsDiff(p.Mark(), amped)
	spaceDist := meanAbsDiff(p.Space(), amped)
	if markDist < spaceDist {
		return 1
	}
	return 0
}

// amplify hard-limits each sample to FullScaleHigh, FullScaleLow, or 0,
// approximating the received waveform to a square wave before comparison.
func amplify(window []int16) []int16 {
	out := make([]int16, len(window))
	for i, s := range window {
		switch {
		case s > amplifierDeadzone:
			out[i] = FullScaleHigh
		case s < -amplifierDeadzone:
			out[i] = FullScaleLow
		default:
			out[i] = 0
		}
	}
	return out
}

// meanAbsDiff returns the mean absolute per-sample difference between two
// equal-length sample slices.
func meanAbsDiff(a, b []int16) float64 {
	if len(a) == 0 {
		return 0
	}
	fa := make([]float64, len(a))
	fb := make([]float64, len(b))
	for i := range a {
		fa[i] = float64(a[i])
		fb[i] = float64(b[i])
	}
	return floats.Distance(fa, fb, 1) / float64(len(a))
}
