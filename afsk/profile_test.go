/*
NAME
  profile_test.go

DESCRIPTION
  profile_test.go covers Profile construction: accepted baud rates,
  rejected baud rates, and the derived training-cycle length.

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

import (
	"errors"
	"testing"
)

func TestNewProfileAcceptsSupportedBauds(t *testing.T) {
	for _, baud := range SupportedBauds {
		p, err := NewProfile(baud, 0)
		if err != nil {
			t.Errorf("NewProfile(%d, 0): %v", baud, err)
			continue
		}
		if p.BitFrames != SampleRate/baud {
			t.Errorf("baud %d: BitFrames = %d, want %d", baud, p.BitFrames, SampleRate/baud)
		}
		if p.TrainingCycleLen() != 2*p.BitFrames {
			t.Errorf("baud %d: TrainingCycleLen = %d, want %d", baud, p.TrainingCycleLen(), 2*p.BitFrames)
		}
	}
}

func TestNewProfileRejectsUnsupportedBaud(t *testing.T) {
	for _, baud := range []int{0, -1200, 1, 100, 1201, 48000} {
		_, err := NewProfile(baud, 0)
		if err == nil {
			t.Errorf("NewProfile(%d, 0): expected error, got nil", baud)
			continue
		}
		if !errors.Is(err, ErrInvalidBaud) {
			t.Errorf("NewProfile(%d, 0): err = %v, want wrapping ErrInvalidBaud", baud, err)
		}
	}
}

func TestNewProfileDefaultsTrainingSeconds(t *testing.T) {
	withDefault, err := NewProfile(1200, 0)
	if err != nil {
		t.Fatalf("NewProfile(1200, 0): %v", err)
	}
	explicit, err := NewProfile(1200, DefaultTrainingSeconds)
	if err != nil {
		t.Fatalf("NewProfile(1200, DefaultTrainingSeconds): %v", err)
	}
	if withDefault.K != explicit.K {
		t.Errorf("K with zero training seconds = %d, want %d (matching explicit default)", withDefault.K, explicit.K)
	}
}

func TestNewProfileKScalesWithTrainingSeconds(t *testing.T) {
	short, err := NewProfile(1200, 0.1)
	if err != nil {
		t.Fatalf("NewProfile(1200, 0.1): %v", err)
	}
	long, err := NewProfile(1200, 1.0)
	if err != nil {
		t.Fatalf("NewProfile(1200, 1.0): %v", err)
	}
	if long.K <= short.K {
		t.Errorf("K for 1.0s (%d) should exceed K for 0.1s (%d)", long.K, short.K)
	}
}
