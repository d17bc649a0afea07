/*
NAME
  main.go

DESCRIPTION
  rxdemo listens for AFSK bursts, either from an ALSA capture device or a
  WAV file, and prints the decoded payload as each burst is received.

AUTHOR
  Ora Bellweather <ora@saltmarsh.radio>

LICENSE
  Copyright (C) 2024 the Saltmarsh Radio Collective. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Saltmarsh Radio Collective.
*/

// Command rxdemo is an interactive AFSK receiver.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ausocean/utils/logging"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/saltmarsh-radio/afsk/afsk"
	"github.com/saltmarsh-radio/afsk/device/alsa"
	"github.com/saltmarsh-radio/afsk/device/wavfile"
)

const (
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = false
)

func main() {
	baudPtr := flag.Int("baud", afsk.DefaultBaud, "symbol rate in bauds")
	devicePtr := flag.String("device", "", "ALSA capture device title (empty selects default)")
	inFilePtr := flag.String("in", "", "read bursts from this WAV file instead of an ALSA device")
	loopPtr := flag.Bool("loop", false, "loop the input WAV file (only with -in)")
	timeoutPtr := flag.Duration("timeout", 30*time.Second, "how long to listen before giving up on a burst")
	logFilePtr := flag.String("logfile", "", "path to rotate logs to (empty logs to stderr)")
	flag.Parse()

	var w io.Writer = os.Stderr
	if *logFilePtr != "" {
		w = &lumberjack.Logger{Filename: *logFilePtr, MaxSize: logMaxSize, MaxBackups: logMaxBackup, MaxAge: logMaxAge}
	}
	log := logging.New(logVerbosity, w, logSuppress)

	var source afsk.Source
	if *inFilePtr != "" {
		source = wavfile.NewSource(*inFilePtr, *loopPtr)
	} else {
		source = alsa.NewCapture(log, *devicePtr)
	}

	rx, err := afsk.NewReceiver(source, log, afsk.RXConfig{Baud: *baudPtr})
	if err != nil {
		log.Fatal("could not construct receiver", "error", err)
	}

	fmt.Println("AFSK RX Demo")
	for {
		fmt.Println("Waiting for message...")
		payload, corrected, err := rx.Receive(*timeoutPtr)
		if errors.Is(err, io.EOF) {
			fmt.Println("Input exhausted.")
			return
		}
		if err != nil {
			log.Fatal("receive failed", "error", err)
		}
		if len(payload) == 0 {
			fmt.Println("Timed out, retrying...")
			continue
		}
		fmt.Printf("Transmission received. %d bits corrected.\n", corrected)
		fmt.Println(string(payload))
		fmt.Println("Done.")
	}
}
