/*
NAME
  receiver.go

DESCRIPTION
  receiver.go implements the receive pipeline: capture, clock recovery,
  terminator scan, payload extraction, Hamming decoding, and byte packing.

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
	"fmt"
	"time"

	"github.com/ausocean/utils/logging"
)

// DefaultStartThreshold and DefaultEndThreshold are the amplitude gates
// used when a RXConfig leaves the corresponding field unset.
const (
	DefaultStartThreshold = 18000
	DefaultEndThreshold   = 14000
)

// RXConfig configures a Receiver.
type RXConfig struct {
	// Baud selects the symbol rate the receiver expects. Must be one of
	// afsk.SupportedBauds. Zero selects DefaultBaud.
	Baud int

	// StartThreshold is the mean-absolute-amplitude above which capture
	// begins. Zero selects DefaultStartThreshold.
	StartThreshold int

	// EndThreshold is the mean-absolute-amplitude below which capture and
	// decoding end. Must be less than StartThreshold. Zero selects
	// DefaultEndThreshold.
	EndThreshold int
}

// Receiver captures an AFSK burst from a Source, recovers the symbol
// clock, and decodes a payload from it.
type Receiver struct {
	source         Source
	log            logging.Logger
	profile        Profile
	startThreshold int
	endThreshold   int
}

// NewReceiver validates cfg and returns a Receiver reading from source.
// Configuration is validated synchronously; no I/O occurs until Receive
// is called.
func NewReceiver(source Source, log logging.Logger, cfg RXConfig) (*Receiver, error) {
	baud := cfg.Baud
	if baud == 0 {
		baud = DefaultBaud
	}
	start := cfg.StartThreshold
	if start == 0 {
		start = DefaultStartThreshold
	}
	end := cfg.EndThreshold
	if end == 0 {
		end = DefaultEndThreshold
	}
	if start < 0 || start >= 32768 || end < 0 || end >= 32768 || end >= start {
		return nil, fmt.Errorf("%w: start=%d end=%d", ErrInvalidThresholds, start, end)
	}

	profile, err := NewProfile(baud, 0)
	if err != nil {
		return nil, fmt.Errorf("afsk: could not construct receiver: %w", err)
	}

	return &Receiver{
		source:         source,
		log:            log,
		profile:        profile,
		startThreshold: start,
		endThreshold:   end,
	}, nil
}

// Receive listens on the Receiver's Source for up to timeout before
// capture begins, decodes exactly one burst, and returns the payload and
// the number of single-bit FEC corrections applied. Payload is empty (with
// a nil error) on timeout or when no usable signal could be recovered;
// a non-nil error indicates an I/O failure from the Source.
func (r *Receiver) Receive(timeout time.Duration) ([]byte, int, error) {
	timeoutFrames := int(timeout.Seconds() * float64(SampleRate))

	burst, err := capture(r.source, r.log, r.startThreshold, r.endThreshold, timeoutFrames)
	if err != nil {
		return nil, 0, fmt.Errorf("afsk: capture failed: %w", err)
	}
	if len(burst) == 0 {
		r.log.Debug("afsk: receive timed out")
		return nil, 0, nil
	}

	origin, err := recoverClock(burst, r.profile)
	if err != nil {
		r.log.Debug("afsk: clock recovery failed", "error", err)
		return nil, 0, nil
	}

	bits, found := extractPayloadBits(burst, origin, r.profile, r.endThreshold)
	if !found {
		r.log.Debug("afsk: training terminator not found")
		return nil, 0, nil
	}

	decoded, corrected := hammingDecode(bits)
	payload := bitsToBytes(decoded)

	r.log.Info("afsk: received burst", "payloadBytes", len(payload), "corrected", corrected)
	return payload, corrected, nil
}
