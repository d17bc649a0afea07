/*
NAME
  capture_test.go

DESCRIPTION
  capture_test.go covers the amplitude-gated capture state machine:
  timeout with no signal and capture of a loud-then-quiet burst, plus the
  mean absolute amplitude helper the gates are computed with.

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

import "testing"

func TestCaptureTimesOutOnSilence(t *testing.T) {
	log := newTestLogger(t)
	src := newMemSource(make([]int16, BlockSamples*4))

	burst, err := capture(src, log, 18000, 14000, BlockSamples*3)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if len(burst) != 0 {
		t.Errorf("len(burst) = %d, want 0", len(burst))
	}
}

func TestCaptureCollectsLoudBurst(t *testing.T) {
	log := newTestLogger(t)

	loud := make([]int16, BlockSamples*3)
	for i := range loud {
		if i%2 == 0 {
			loud[i] = FullScaleHigh
		} else {
			loud[i] = FullScaleLow
		}
	}
	quiet := make([]int16, BlockSamples*2)
	data := append(append([]int16{}, loud...), quiet...)

	src := newMemSource(data)
	burst, err := capture(src, log, 18000, 14000, BlockSamples*10)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if len(burst) == 0 {
		t.Fatal("len(burst) = 0, want > 0")
	}
	if len(burst) < len(loud) {
		t.Errorf("len(burst) = %d, want at least %d", len(burst), len(loud))
	}
}

func TestMeanAbsAmplitudeEmptyBlock(t *testing.T) {
	if got := meanAbsAmplitude(nil); got != 0 {
		t.Errorf("meanAbsAmplitude(nil) = %d, want 0", got)
	}
}

func TestMeanAbsAmplitudeKnownValues(t *testing.T) {
	block := []int16{100, -100, 200, -200}
	if got := meanAbsAmplitude(block); got != 150 {
		t.Errorf("meanAbsAmplitude(%v) = %d, want 150", block, got)
	}
}
