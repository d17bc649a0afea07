/*
NAME
  alsa_test.go

DESCRIPTION
  alsa_test.go covers the pure helper functions in this package. Device
  negotiation itself requires real ALSA hardware and so is exercised
  manually via cmd/txdemo and cmd/rxdemo rather than here.

AUTHOR
  Ora Bellweather <ora@saltmarsh.radio>

LICENSE
  Copyright (C) 2024 the Saltmarsh Radio Collective. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Saltmarsh Radio Collective.
*/

package alsa

import (
	"strconv"
	"testing"
)

var powerTests = []struct {
	in  int
	out int
}{
	{36, 32},
	{47, 32},
	{3, 4},
	{46, 32},
	{7, 8},
	{2, 2},
	{757, 512},
	{2464, 2048},
	{18980, 16384},
	{70000, 65536},
	{8192, 8192},
	{2048, 2048},
	{65536, 65536},
	{-2048, 1},
	{-127, 1},
	{-1, 1},
	{0, 1},
	{1, 2},
}

func TestNearestPowerOfTwo(t *testing.T) {
	for _, tt := range powerTests {
		t.Run(strconv.Itoa(tt.in), func(t *testing.T) {
			v := nearestPowerOfTwo(tt.in)
			if v != tt.out {
				t.Errorf("got %v, want %v", v, tt.out)
			}
		})
	}
}

func TestBytesToSamplesRoundTrip(t *testing.T) {
	samples := []int16{0, 1, -1, 32767, -32768, 12345}
	got := bytesToSamples(samplesToBytes(samples))
	if len(got) != len(samples) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(samples))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], samples[i])
		}
	}
}
