/*
NAME
  main.go

DESCRIPTION
  txdemo reads lines from standard input and transmits each as an AFSK
  burst, either to an ALSA playback device or to a WAV file.

AUTHOR
  Ora Bellweather <ora@saltmarsh.radio>

LICENSE
  Copyright (C) 2024 the Saltmarsh Radio Collective. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Saltmarsh Radio Collective.
*/

// Command txdemo is an interactive AFSK transmitter.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ausocean/utils/logging"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/saltmarsh-radio/afsk/afsk"
	"github.com/saltmarsh-radio/afsk/device/alsa"
	"github.com/saltmarsh-radio/afsk/device/wavfile"
)

// Logging configuration.
const (
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = false
)

func main() {
	baudPtr := flag.Int("baud", afsk.DefaultBaud, "symbol rate in bauds")
	devicePtr := flag.String("device", "", "ALSA playback device title (empty selects default)")
	outFilePtr := flag.String("out", "", "write bursts to this WAV file instead of an ALSA device")
	logFilePtr := flag.String("logfile", "", "path to rotate logs to (empty logs to stderr)")
	flag.Parse()

	var w io.Writer = os.Stderr
	if *logFilePtr != "" {
		w = &lumberjack.Logger{Filename: *logFilePtr, MaxSize: logMaxSize, MaxBackups: logMaxBackup, MaxAge: logMaxAge}
	}
	log := logging.New(logVerbosity, w, logSuppress)

	var sink afsk.Sink
	var closer func() error
	if *outFilePtr != "" {
		s := wavfile.NewSink(*outFilePtr)
		sink = s
		closer = s.Close
	} else {
		sink = alsa.NewPlayback(log, *devicePtr)
		closer = func() error { return nil }
	}

	tx, err := afsk.NewTransmitter(sink, log, afsk.TXConfig{Baud: *baudPtr})
	if err != nil {
		log.Fatal("could not construct transmitter", "error", err)
	}

	fmt.Println("AFSK TX Demo")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("Enter message (ASCII), Ctrl-D to exit:")
		if !scanner.Scan() {
			break
		}
		payload := []byte(scanner.Text())
		fmt.Printf("Transmitting (est. %s)...\n", tx.EstimateDuration(len(payload)))
		if err := tx.Transmit(payload); err != nil {
			log.Error("transmit failed", "error", err)
			continue
		}
		fmt.Println("Done.")
	}

	if err := closer(); err != nil {
		log.Error("could not finalise output", "error", err)
	}
}
