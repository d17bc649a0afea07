/*
NAME
  profile.go

DESCRIPTION
  profile.go defines the immutable modem profile derived from a baud rate,
  and the constants shared by every other component of the package.

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

import "fmt"

// SampleRate is the fixed PCM sample rate the core operates at. The audio
// collaborator is responsible for delivering/accepting samples at this
// rate; the core performs no resampling.
const SampleRate = 48000

// BlockSamples is the fixed block size a Source delivers and a capture
// loop reads in. This is tied to the clock-recovery search bound (4096
// samples) and must not be made configurable.
const BlockSamples = 2048

// FullScaleHigh and FullScaleLow are the amplitudes used for a logical
// high and low sample in the synthesized waveforms.
const (
	FullScaleHigh int16 = 32767
	FullScaleLow  int16 = -32768
)

// TailSamples is the number of zero-amplitude samples appended to the end
// of every transmission (100ms at SampleRate).
const TailSamples = 4800

// DefaultTrainingSeconds is the default duration of the training preamble.
const DefaultTrainingSeconds = 0.5

// TerminatorBits is the fixed bit pattern marking the end of the training
// preamble and the start of the payload.
var TerminatorBits = [4]int{1, 0, 0, 0}

// SupportedBauds lists the baud rates the modem accepts.
var SupportedBauds = [5]int{300, 600, 1200, 2400, 6000}

// Profile is the immutable (baud, sample rate, bit frame) triple that every
// other component derives its constants from. Profiles are read-only once
// constructed and safe to share across concurrent operations.
type Profile struct {
	Baud       int // symbols per second.
	SampleRate int // fixed at SampleRate.
	BitFrames  int // samples per symbol, SampleRate/Baud.

	// K is the number of training cycles in the preamble for the profile's
	// configured training duration.
	K int

	mark     []int16
	space    []int16
	training []int16
}

// NewProfile validates baud and constructs a Profile with templates
// synthesized for it. trainingSeconds selects the preamble duration; pass
// 0 to use DefaultTrainingSeconds.
func NewProfile(baud int, trainingSeconds float64) (Profile, error) {
	if err := validateBaud(baud); err != nil {
		return Profile{}, err
	}
	if trainingSeconds <= 0 {
		trainingSeconds = DefaultTrainingSeconds
	}

	bitFrames := SampleRate / baud
	k := int(roundHalfAwayFromZero(float64(baud) * trainingSeconds / 2))

	mark, space := synthesizeMarkSpace(baud, bitFrames)
	training := append(append([]int16{}, mark...), space...)

	return Profile{
		Baud:       baud,
		SampleRate: SampleRate,
		BitFrames:  bitFrames,
		K:          k,
		mark:       mark,
		space:      space,
		training:   training,
	}, nil
}

// validateBaud checks the divisibility constraint from spec: the sample
// rate must divide evenly by baud, baud must be one of the supported
// rates, and baud must be divisible by 4 so that the bit frame and its
// half are even integers.
func validateBaud(baud int) error {
	supported := false
	for _, b := range SupportedBauds {
		if b == baud {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("%w: %d", ErrInvalidBaud, baud)
	}
	if SampleRate%baud != 0 {
		return fmt.Errorf("%w: sample rate %d not divisible by baud %d", ErrInvalidBaud, SampleRate, baud)
	}
	if baud%4 != 0 {
		return fmt.Errorf("%w: baud %d not divisible by 4", ErrInvalidBaud, baud)
	}
	return nil
}

// TrainingCycleLen returns the length of one training cycle (mark+space),
// i.e. T = 2*BitFrames, for this profile.
func (p Profile) TrainingCycleLen() int { return 2 * p.BitFrames }

// Mark returns the mark (logical 1) template: two full periods of a square
// wave at 2*Baud, length BitFrames.
func (p Profile) Mark() []int16 { return p.mark }

// Space returns the space (logical 0) template: one full period of a
// square wave at Baud, length BitFrames.
func (p Profile) Space() []int16 { return p.space }

// TrainingCycle returns the mark-then-space template modelling one "10"
// oscillation at the symbol rate, length 2*BitFrames.
func (p Profile) TrainingCycle() []int16 { return p.training }

// roundHalfAwayFromZero rounds to the nearest integer, rounding halves away
// from zero (matching the "round" used by spec.md's K = round(...)).
func roundHalfAwayFromZero(x float64) float64 {
	if x >= 0 {
		return float64(int64(x + 0.5))
	}
	return float64(int64(x - 0.5))
}
