/*
NAME
  doc.go

DESCRIPTION
  doc.go provides the package documentation for afsk.

AUTHOR
  Ora Bellweather <ora@saltmarsh.radio>

LICENSE
  Copyright (C) 2024 the Saltmarsh Radio Collective. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Saltmarsh Radio Collective.
*/

// Package afsk implements an audio frequency-shift-keying software modem.
//
// A Transmitter turns an arbitrary byte payload into a PCM sample sequence
// carrying a training preamble, a framing terminator, a Hamming(7,4)
// protected payload, and a trailing silence, and hands it to a Sink. A
// Receiver reads PCM samples from a Source, gates capture by amplitude,
// recovers the symbol clock from the training preamble, decodes payload
// bits, and corrects single-bit errors.
//
// The package does not talk to any audio hardware itself; Source and Sink
// are supplied by the caller. See the device/alsa and device/wavfile
// packages for concrete implementations.
package afsk
