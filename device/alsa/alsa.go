/*
NAME
  alsa.go

DESCRIPTION
  alsa.go adapts ALSA capture and playback devices to the afsk.Source and
  afsk.Sink interfaces, negotiating a device down to mono 16-bit PCM at
  afsk.SampleRate.

AUTHOR
  Ora Bellweather <ora@saltmarsh.radio>

LICENSE
  Copyright (C) 2024 the Saltmarsh Radio Collective. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Saltmarsh Radio Collective.
*/

// Package alsa provides afsk.Source and afsk.Sink implementations backed
// by ALSA capture and playback devices.
package alsa

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	yalsa "github.com/yobert/alsa"

	"github.com/ausocean/utils/logging"
	"github.com/saltmarsh-radio/afsk/afsk"
	"github.com/saltmarsh-radio/afsk/codec/pcm"
)

// wantPeriod is the target ALSA period size in seconds. Once rounded to a
// power of two bytes it comes to the duration of one afsk.BlockSamples
// block at every rate and channel count negotiated here.
const wantPeriod = 0.05

// errNoDevice is returned by openAndNegotiate when no matching ALSA device
// is found.
var errNoDevice = errors.New("alsa: no matching device found")

// Capture implements afsk.Source by reading from an ALSA recording device,
// resampling and down-mixing to mono afsk.SampleRate as needed.
type Capture struct {
	l      logging.Logger
	title  string
	dev    *yalsa.Device
	format pcm.BufferFormat
}

// NewCapture returns a Capture that will record from the ALSA device named
// title, or the first available recording device if title is empty.
func NewCapture(l logging.Logger, title string) *Capture {
	return &Capture{l: l, title: title}
}

// Start opens and negotiates the capture device. It is safe to call Start
// again after Stop to reopen the device.
func (c *Capture) Start() error {
	dev, format, err := openAndNegotiate(c.l, c.title, true)
	if err != nil {
		return fmt.Errorf("alsa: capture start failed: %w", err)
	}
	c.dev = dev
	c.format = format
	return nil
}

// Stop closes the capture device.
func (c *Capture) Stop() error {
	if c.dev == nil {
		return nil
	}
	c.dev.Close()
	c.dev = nil
	return nil
}

// ReadBlock reads one afsk.BlockSamples block of mono samples at
// afsk.SampleRate, resampling and down-mixing as required by the
// negotiated device format.
func (c *Capture) ReadBlock() ([]int16, error) {
	raw := c.dev.NewBufferDuration(blockDuration())
	if err := c.dev.Read(raw.Data); err != nil {
		return nil, fmt.Errorf("alsa: read failed: %w", err)
	}

	buf := pcm.Buffer{Format: c.format, Data: bytesToSamples(raw.Data)}
	buf, err := pcm.StereoToMono(buf)
	if err != nil {
		return nil, fmt.Errorf("alsa: stereo to mono failed: %w", err)
	}
	buf, err = pcm.Resample(buf, afsk.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("alsa: resample failed: %w", err)
	}

	return buf.Data, nil
}

// Playback implements afsk.Sink by writing to an ALSA playback device.
type Playback struct {
	l      logging.Logger
	title  string
	dev    *yalsa.Device
	format pcm.BufferFormat
}

// NewPlayback returns a Playback that will play to the ALSA device named
// title, or the first available playback device if title is empty.
func NewPlayback(l logging.Logger, title string) *Playback {
	return &Playback{l: l, title: title}
}

// Write negotiates the playback device (on first call) and plays samples,
// blocking until playback completes. Mono samples are duplicated across
// channels if the device could only negotiate stereo.
func (p *Playback) Write(samples []int16) error {
	if p.dev == nil {
		dev, format, err := openAndNegotiate(p.l, p.title, false)
		if err != nil {
			return fmt.Errorf("alsa: playback open failed: %w", err)
		}
		p.dev = dev
		p.format = format
	}

	out := samples
	if p.format.Channels == 2 {
		out = make([]int16, len(samples)*2)
		for i, s := range samples {
			out[i*2] = s
			out[i*2+1] = s
		}
	}

	data := samplesToBytes(out)
	frames := len(out) / int(p.format.Channels)
	if err := p.dev.Write(data, frames); err != nil {
		return fmt.Errorf("alsa: playback write failed: %w", err)
	}
	return nil
}

// openAndNegotiate opens the first ALSA device matching title (or any
// device if title is empty) capable of the requested direction, and
// negotiates 16-bit PCM, mono where the device allows it and stereo
// otherwise. Capture tries afsk.SampleRate and its multiples by 2 and 4
// (the read path downsamples); playback must run at afsk.SampleRate
// exactly.
func openAndNegotiate(l logging.Logger, title string, record bool) (*yalsa.Device, pcm.BufferFormat, error) {
	cards, err := yalsa.OpenCards()
	if err != nil {
		return nil, pcm.BufferFormat{}, err
	}
	defer yalsa.CloseCards(cards)

	var dev *yalsa.Device
	for _, card := range cards {
		devices, err := card.Devices()
		if err != nil {
			continue
		}
		for _, d := range devices {
			if d.Type != yalsa.PCM {
				continue
			}
			if record && !d.Record {
				continue
			}
			if !record && !d.Play {
				continue
			}
			if d.Title == title || title == "" {
				dev = d
				break
			}
		}
	}
	if dev == nil {
		return nil, pcm.BufferFormat{}, errNoDevice
	}

	l.Debug("alsa: opening device", "title", dev.Title)
	if err := dev.Open(); err != nil {
		return nil, pcm.BufferFormat{}, err
	}

	channels, err := dev.NegotiateChannels(1)
	if err != nil {
		channels, err = dev.NegotiateChannels(2)
		if err != nil {
			return nil, pcm.BufferFormat{}, fmt.Errorf("unable to negotiate channels: %w", err)
		}
	}
	l.Debug("alsa: channels negotiated", "channels", channels)

	var rate int
	if record {
		rate, err = negotiateDivisibleRate(dev, l)
	} else {
		// Playback must run at the wire rate exactly; a faster rate would
		// play the burst at the wrong pitch.
		rate, err = dev.NegotiateRate(afsk.SampleRate)
	}
	if err != nil {
		return nil, pcm.BufferFormat{}, fmt.Errorf("unable to negotiate rate: %w", err)
	}

	if _, err := dev.NegotiateFormat(yalsa.S16_LE); err != nil {
		return nil, pcm.BufferFormat{}, fmt.Errorf("unable to negotiate format: %w", err)
	}

	bytesPerSecond := rate * channels * 2
	periodSize, err := dev.NegotiatePeriodSize(nearestPowerOfTwo(int(float64(bytesPerSecond) * wantPeriod)))
	if err != nil {
		return nil, pcm.BufferFormat{}, fmt.Errorf("unable to negotiate period size: %w", err)
	}
	if _, err := dev.NegotiateBufferSize(periodSize * 4); err != nil {
		return nil, pcm.BufferFormat{}, fmt.Errorf("unable to negotiate buffer size: %w", err)
	}
	if err := dev.Prepare(); err != nil {
		return nil, pcm.BufferFormat{}, fmt.Errorf("unable to prepare device: %w", err)
	}

	format := pcm.BufferFormat{Channels: uint(channels), Rate: uint(rate)}
	return dev, format, nil
}

// negotiateDivisibleRate tries each candidate rate divisible by
// afsk.SampleRate (so downsampling to it is an exact integer ratio),
// falling back to afsk.SampleRate itself if none succeed.
func negotiateDivisibleRate(dev *yalsa.Device, l logging.Logger) (int, error) {
	candidates := [3]int{afsk.SampleRate, 2 * afsk.SampleRate, 4 * afsk.SampleRate}
	for _, r := range candidates {
		if rate, err := dev.NegotiateRate(r); err == nil {
			l.Debug("alsa: rate negotiated", "rate", rate)
			return rate, nil
		}
	}
	return dev.NegotiateRate(afsk.SampleRate)
}

// blockDuration returns the playback/capture duration of one afsk.BlockSamples
// block at afsk.SampleRate.
func blockDuration() time.Duration {
	seconds := float64(afsk.BlockSamples) / float64(afsk.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}

func bytesToSamples(data []byte) []int16 {
	out := make([]int16, len(data)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(data[i*2 : i*2+2]))
	}
	return out
}

func samplesToBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:i*2+2], uint16(s))
	}
	return out
}

// nearestPowerOfTwo finds and returns the nearest power of two to the
// given integer, matching ALSA period-size negotiation's preference for
// powers of two. For non-positive values, 1 is returned; for 1, 2 is
// returned.
func nearestPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	if n == 1 {
		return 2
	}
	v := n
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v++
	x := v >> 1
	if (v - n) > (n - x) {
		return x
	}
	return v
}
