/*
NAME
  io.go

DESCRIPTION
  io.go defines the PCM audio collaborator interfaces the core depends on.
  Implementations live outside this package (see device/alsa and
  device/wavfile) and are supplied by the caller.

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

// Source is a PCM capture collaborator delivering mono 16-bit samples at
// SampleRate in fixed blocks of BlockSamples. ReadBlock blocks until a
// block is available.
type Source interface {
	Start() error
	Stop() error
	ReadBlock() ([]int16, error)
}

// Sink is a PCM playback collaborator accepting mono 16-bit samples at
// SampleRate. Write blocks until the full sample sequence has been handed
// to the underlying device for playback.
type Sink interface {
	Write(samples []int16) error
}
