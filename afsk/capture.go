/*
NAME
  capture.go

DESCRIPTION
  capture.go implements the amplitude-gated capture state machine that
  reads PCM blocks from a Source and returns one contiguous burst.

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

	"github.com/ausocean/utils/logging"
)

// capture states.
const (
	stateIdle = iota
	stateListening
	stateRecording
	stateDone
)

// capture reads PCM blocks of BlockSamples from src, gated by start/end
// amplitude thresholds, and returns the collected burst. It returns an
// empty slice if timeoutFrames worth of blocks are read in the Listening
// state without the amplitude gate firing.
func capture(src Source, log logging.Logger, startThreshold, endThreshold, timeoutFrames int) ([]int16, error) {
	if err := src.Start(); err != nil {
		return nil, fmt.Errorf("capture: failed to start source: %w", err)
	}
	defer func() {
		if err := src.Stop(); err != nil {
			log.Warning("capture: failed to stop source", "error", err)
		}
	}()

	state := stateIdle
	var burst []int16
	listenedFrames := 0

	for {
		switch state {
		case stateIdle:
			// Flush one stale block before gating begins.
			if _, err := src.ReadBlock(); err != nil {
				return nil, fmt.Errorf("capture: flush read failed: %w", err)
			}
			state = stateListening

		case stateListening:
			block, err := src.ReadBlock()
			if err != nil {
				return nil, fmt.Errorf("capture: read failed: %w", err)
			}
			amp := meanAbsAmplitude(block)
			if amp > startThreshold {
				log.Debug("capture: amplitude gate opened", "amplitude", amp)
				burst = append(burst, block...)
				state = stateRecording
				continue
			}
			listenedFrames += len(block)
			if listenedFrames >= timeoutFrames {
				log.Debug("capture: timed out listening", "listenedFrames", listenedFrames)
				return nil, nil
			}

		case stateRecording:
			block, err := src.ReadBlock()
			if err != nil {
				return nil, fmt.Errorf("capture: read failed: %w", err)
			}
			burst = append(burst, block...)
			amp := meanAbsAmplitude(block)
			if amp < endThreshold {
				log.Debug("capture: amplitude gate closed", "amplitude", amp, "burstLength", len(burst))
				state = stateDone
			}

		case stateDone:
			return burst, nil
		}
	}
}

// meanAbsAmplitude returns the mean absolute value of a block of samples.
// An empty block has amplitude 0.
func meanAbsAmplitude(block []int16) int {
	if len(block) == 0 {
		return 0
	}
	var sum int64
	for _, s := range block {
		if s < 0 {
			sum -= int64(s)
		} else {
			sum += int64(s)
		}
	}
	return int(sum / int64(len(block)))
}
