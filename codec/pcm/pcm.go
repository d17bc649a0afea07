/*
NAME
  pcm.go

DESCRIPTION
  pcm.go contains functions for conditioning raw PCM audio captured from
  a device down to the fixed format the modem core operates at: 16-bit
  mono at afsk.SampleRate. Samples are always 16-bit; callers are
  responsible for decoding device-native bytes to []int16 before handing
  a Buffer to this package, since every device this modem supports is
  negotiated down to S16_LE.

AUTHOR
  Ora Bellweather <ora@saltmarsh.radio>

LICENSE
  Copyright (C) 2024 the Saltmarsh Radio Collective. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Saltmarsh Radio Collective.
*/

// Package pcm provides functions for processing and converting pcm audio.
package pcm

import "fmt"

// BufferFormat contains the format for a PCM Buffer: a sample rate and
// channel count. Samples are always 16-bit; this package has no other
// format to negotiate.
type BufferFormat struct {
	Rate     uint
	Channels uint
}

// Buffer contains a buffer of 16-bit PCM samples and the format that it
// is in.
type Buffer struct {
	Format BufferFormat
	Data   []int16
}

// Resample takes Buffer c and resamples the pcm audio data to 'rate' Hz and returns a Buffer with the resampled data.
// Notes:
// 	- Currently only downsampling is implemented and c's rate must be divisible by 'rate' or an error will occur.
// 	- If the number of samples in c.Data is not divisible by the decimation factor (ratioFrom), the remaining
// 	  samples will not be included in the result. Eg. input of length 480002 downsampling 6:1 will result in
// 	  output length 80000.
func Resample(c Buffer, rate uint) (Buffer, error) {
	if c.Format.Rate == rate {
		return c, nil
	}

	// Calculate sample rate ratio ratioFrom:ratioTo.
	rateGcd := gcd(rate, c.Format.Rate)
	ratioFrom := int(c.Format.Rate / rateGcd)
	ratioTo := int(rate / rateGcd)

	// ratioTo = 1 is the only number that will result in an even sampling.
	if ratioTo != 1 {
		return Buffer{}, fmt.Errorf("unhandled from:to rate ratio %v:%v: 'to' must be 1", ratioFrom, ratioTo)
	}

	channels := int(c.Format.Channels)
	inFrames := len(c.Data) / channels
	outFrames := inFrames / ratioFrom
	resampled := make([]int16, 0, outFrames*channels)

	// For each new frame to be generated, average the respective 'ratioFrom'
	// frames in c.Data, per channel, to produce one output frame.
	for i := 0; i < outFrames; i++ {
		for ch := 0; ch < channels; ch++ {
			var sum int
			for j := 0; j < ratioFrom; j++ {
				sum += int(c.Data[(i*ratioFrom+j)*channels+ch])
			}
			resampled = append(resampled, int16(sum/ratioFrom))
		}
	}

	return Buffer{
		Format: BufferFormat{
			Channels: c.Format.Channels,
			Rate:     rate,
		},
		Data: resampled,
	}, nil
}

// StereoToMono returns raw mono audio data generated from only the left channel from
// the given stereo Buffer.
func StereoToMono(c Buffer) (Buffer, error) {
	if c.Format.Channels == 1 {
		return c, nil
	}
	if c.Format.Channels != 2 {
		return Buffer{}, fmt.Errorf("audio is not stereo or mono, it has %v channels", c.Format.Channels)
	}

	mono := make([]int16, len(c.Data)/2)
	for i := range mono {
		mono[i] = c.Data[i*2]
	}

	return Buffer{
		Format: BufferFormat{
			Channels: 1,
			Rate:     c.Format.Rate,
		},
		Data: mono,
	}, nil
}

// gcd is used for calculating the greatest common divisor of two positive integers, a and b.
// assumes given a and b are positive.
func gcd(a, b uint) uint {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
