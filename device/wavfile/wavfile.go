/*
NAME
  wavfile.go

DESCRIPTION
  wavfile.go provides afsk.Source and afsk.Sink implementations backed by
  WAV files on disk, for transmitting and receiving bursts without audio
  hardware.

AUTHOR
  Ora Bellweather <ora@saltmarsh.radio>

LICENSE
  Copyright (C) 2024 the Saltmarsh Radio Collective. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Saltmarsh Radio Collective.
*/

// Package wavfile provides afsk.Source and afsk.Sink implementations
// backed by WAV files, in place of real audio hardware.
package wavfile

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/saltmarsh-radio/afsk/afsk"
)

const (
	bitDepth  = 16
	numChans  = 1
	wavFormat = 1 // PCM
)

// Source reads an existing WAV file at afsk.SampleRate and serves it in
// afsk.BlockSamples blocks, looping if loop is set, or returning io.EOF
// once exhausted otherwise. Mono and afsk.SampleRate are required of the
// file; Source does no resampling.
type Source struct {
	path    string
	loop    bool
	samples []int16
	pos     int
	mu      sync.Mutex
}

// NewSource returns a Source reading path. If loop is true, ReadBlock wraps
// around to the start of the file once exhausted; otherwise ReadBlock
// returns io.EOF once the file's samples are used up.
func NewSource(path string, loop bool) *Source {
	return &Source{path: path, loop: loop}
}

// Start opens and fully decodes the WAV file into memory. Reading resumes
// at the position reached before the last Stop, so successive Start/Stop
// cycles (one per afsk.Receiver.Receive) consume the file once.
func (s *Source) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("wavfile: could not open %s: %w", s.path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("wavfile: could not decode %s: %w", s.path, err)
	}
	if buf.Format.NumChannels != numChans {
		return fmt.Errorf("wavfile: %s has %d channels, want mono", s.path, buf.Format.NumChannels)
	}
	if buf.Format.SampleRate != afsk.SampleRate {
		return fmt.Errorf("wavfile: %s is %dHz, want %dHz", s.path, buf.Format.SampleRate, afsk.SampleRate)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	s.samples = samples
	return nil
}

// Stop releases the decoded buffer.
func (s *Source) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = nil
	return nil
}

// ReadBlock returns the next afsk.BlockSamples samples, looping back to
// the start of the file as configured. If not looping, it returns io.EOF
// once the file's samples have all been served; the final block, if it
// only partially fills, is zero-padded and returned with a nil error.
func (s *Source) ReadBlock() ([]int16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.samples) && (!s.loop || len(s.samples) == 0) {
		return nil, io.EOF
	}

	block := make([]int16, afsk.BlockSamples)
	for i := 0; i < afsk.BlockSamples; i++ {
		if s.pos >= len(s.samples) {
			if !s.loop {
				break
			}
			s.pos = 0
		}
		block[i] = s.samples[s.pos]
		s.pos++
	}
	return block, nil
}

// Sink accumulates written samples and encodes them as a mono 16-bit WAV
// file at afsk.SampleRate when Close is called.
type Sink struct {
	path    string
	samples []int16
}

// NewSink returns a Sink that will write a WAV file to path on Close.
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// Write appends samples to the Sink's in-memory buffer.
func (s *Sink) Write(samples []int16) error {
	s.samples = append(s.samples, samples...)
	return nil
}

// Close encodes all samples written so far to the Sink's WAV file.
func (s *Sink) Close() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("wavfile: could not create %s: %w", s.path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, afsk.SampleRate, bitDepth, numChans, wavFormat)
	data := make([]int, len(s.samples))
	for i, v := range s.samples {
		data[i] = int(v)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: afsk.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavfile: encode failed: %w", err)
	}
	return enc.Close()
}
