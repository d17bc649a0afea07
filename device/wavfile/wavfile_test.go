/*
NAME
  wavfile_test.go

DESCRIPTION
  wavfile_test.go exercises Source and Sink against real files on disk: a
  Sink-written WAV file must read back identical samples (zero-padded to
  whole blocks) through a non-looping Source, a non-looping Source must
  signal end of file via io.EOF once exhausted, and a looping Source must
  keep serving blocks past the end of the file.

AUTHOR
  Ora Bellweather <ora@saltmarsh.radio>

LICENSE
  Copyright (C) 2024 the Saltmarsh Radio Collective. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Saltmarsh Radio Collective.
*/

package wavfile

import (
	"errors"
	"io"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/saltmarsh-radio/afsk/afsk"
)

func writeFixture(t *testing.T, samples []int16) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.wav")
	sink := NewSink(path)
	if err := sink.Write(samples); err != nil {
		t.Fatalf("Sink.Write: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Sink.Close: %v", err)
	}
	return path
}

func TestSourceReadsBackSinkWrittenSamples(t *testing.T) {
	tests := []struct {
		name    string
		samples []int16
	}{
		{"empty", nil},
		{"shorter than one block", []int16{1, 2, 3, -4, 5}},
		{"exactly one block", make([]int16, afsk.BlockSamples)},
		{"spans multiple blocks", make([]int16, afsk.BlockSamples*2+17)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.samples {
				tt.samples[i] = int16(i*7 - 3)
			}

			path := writeFixture(t, tt.samples)

			src := NewSource(path, false)
			if err := src.Start(); err != nil {
				t.Fatalf("Start: %v", err)
			}
			defer src.Stop()

			var got []int16
			for {
				block, err := src.ReadBlock()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatalf("ReadBlock: %v", err)
				}
				got = append(got, block...)
			}

			want := make([]int16, len(tt.samples))
			copy(want, tt.samples)
			for len(want)%afsk.BlockSamples != 0 {
				want = append(want, 0)
			}

			if len(got) != len(want) || (len(want) > 0 && !reflect.DeepEqual(got, want)) {
				t.Errorf("got %d samples, want %d", len(got), len(want))
			}
		})
	}
}

func TestSourceReturnsEOFOnceExhausted(t *testing.T) {
	path := writeFixture(t, []int16{1, 2, 3})

	src := NewSource(path, false)
	if err := src.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer src.Stop()

	if _, err := src.ReadBlock(); err != nil {
		t.Fatalf("first ReadBlock: %v", err)
	}
	if _, err := src.ReadBlock(); !errors.Is(err, io.EOF) {
		t.Errorf("second ReadBlock error = %v, want io.EOF", err)
	}
}

func TestSourceLoopsWhenConfigured(t *testing.T) {
	path := writeFixture(t, []int16{1, 2, 3})

	src := NewSource(path, true)
	if err := src.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer src.Stop()

	for i := 0; i < 3; i++ {
		if _, err := src.ReadBlock(); err != nil {
			t.Fatalf("ReadBlock %d: %v", i, err)
		}
	}
}
