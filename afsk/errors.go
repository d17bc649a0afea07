/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the sentinel errors surfaced synchronously at
  Transmitter/Receiver construction.

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

import "errors"

var (
	// ErrInvalidBaud is returned by NewProfile/NewTransmitter/NewReceiver
	// when the requested baud rate is unsupported or violates the
	// sample-rate divisibility constraint.
	ErrInvalidBaud = errors.New("invalid baud rate")

	// ErrInvalidThresholds is returned by NewReceiver when EndThreshold is
	// not strictly less than StartThreshold, or either falls outside
	// [0, 32768).
	ErrInvalidThresholds = errors.New("invalid amplitude thresholds")

	// ErrNoClock is returned internally by clock recovery when the burst
	// is too short to locate the symbol phase. It never escapes Receive;
	// Receive treats it as a reason to return an empty payload.
	ErrNoClock = errors.New("no usable signal: clock recovery failed")
)
