/*
NAME
  transmitter.go

DESCRIPTION
  transmitter.go implements the transmit pipeline: bytes to bits, Hamming
  encoding, waveform assembly, and handoff to a Sink.

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

// DefaultBaud is the baud rate used when a TXConfig/RXConfig leaves Baud
// unset.
const DefaultBaud = 1200

// TXConfig configures a Transmitter.
type TXConfig struct {
	// Baud selects the symbol rate and hence the mark/space tones. Must be
	// one of afsk.SupportedBauds. Zero selects DefaultBaud.
	Baud int

	// TrainingSeconds is the duration of the training preamble. Zero
	// selects DefaultTrainingSeconds.
	TrainingSeconds float64
}

// Transmitter builds and plays AFSK bursts for arbitrary byte payloads.
type Transmitter struct {
	sink    Sink
	log     logging.Logger
	profile Profile
}

// NewTransmitter validates cfg and returns a Transmitter that will write
// synthesized bursts to sink. Configuration is validated synchronously;
// no I/O occurs until Transmit is called.
func NewTransmitter(sink Sink, log logging.Logger, cfg TXConfig) (*Transmitter, error) {
	baud := cfg.Baud
	if baud == 0 {
		baud = DefaultBaud
	}
	profile, err := NewProfile(baud, cfg.TrainingSeconds)
	if err != nil {
		return nil, fmt.Errorf("afsk: could not construct transmitter: %w", err)
	}
	return &Transmitter{sink: sink, log: log, profile: profile}, nil
}

// Transmit encodes payload and plays the resulting burst on the
// Transmitter's Sink, blocking until the sink accepts the full sequence.
func (t *Transmitter) Transmit(payload []byte) error {
	bits := bytesToBits(payload)
	encoded := hammingEncode(bits)
	frame := t.buildFrame(encoded)

	t.log.Info("afsk: transmitting burst", "payloadBytes", len(payload), "frameSamples", len(frame))
	if err := t.sink.Write(frame); err != nil {
		return fmt.Errorf("afsk: sink write failed: %w", err)
	}
	return nil
}

// buildFrame assembles, in order: K training cycles, the terminator (one
// mark, three spaces), the tone for each encoded payload bit, and the
// trailing silent tail.
func (t *Transmitter) buildFrame(encodedBits []int) []int16 {
	p := t.profile
	total := p.K*len(p.TrainingCycle()) + 4*p.BitFrames + len(encodedBits)*p.BitFrames + TailSamples
	frame := make([]int16, 0, total)

	for i := 0; i < p.K; i++ {
		frame = append(frame, p.TrainingCycle()...)
	}

	frame = append(frame, p.Mark()...)
	frame = append(frame, p.Space()...)
	frame = append(frame, p.Space()...)
	frame = append(frame, p.Space()...)

	for _, bit := range encodedBits {
		if bit == 1 {
			frame = append(frame, p.Mark()...)
		} else {
			frame = append(frame, p.Space()...)
		}
	}

	frame = append(frame, silence(TailSamples)...)
	return frame
}

// EstimateDuration returns the expected playback duration of a burst
// carrying a payload of payloadLen bytes, accounting for the Hamming(7,4)
// rate expansion, the training preamble, terminator, and trailing tail.
// Supplemented from original_source's estTxTime, adapted to this profile's
// actual bit rate rather than a whole-byte ECC assumption.
func (t *Transmitter) EstimateDuration(payloadLen int) time.Duration {
	p := t.profile
	codedBits := (payloadLen * 8 / 4) * 7
	totalSamples := p.K*len(p.TrainingCycle()) + 4*p.BitFrames + codedBits*p.BitFrames + TailSamples
	seconds := float64(totalSamples) / float64(p.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}
