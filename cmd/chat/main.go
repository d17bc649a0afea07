/*
NAME
  main.go

DESCRIPTION
  chat is a two-way AFSK text chat: it transmits callsign-tagged,
  timestamped messages typed at the terminal while concurrently listening
  for and printing incoming transmissions.

AUTHOR
  Ora Bellweather <ora@saltmarsh.radio>

LICENSE
  Copyright (C) 2024 the Saltmarsh Radio Collective. All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Saltmarsh Radio Collective.
*/

// Command chat is a two-way interactive AFSK text chat.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ausocean/utils/logging"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/saltmarsh-radio/afsk/afsk"
	"github.com/saltmarsh-radio/afsk/device/alsa"
)

const (
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
	rxTimeout    = 5 * time.Minute
)

func main() {
	baudPtr := flag.Int("baud", afsk.DefaultBaud, "symbol rate in bauds")
	rxDevicePtr := flag.String("rxdevice", "", "ALSA capture device title")
	txDevicePtr := flag.String("txdevice", "", "ALSA playback device title")
	logFilePtr := flag.String("logfile", "", "path to rotate logs to (empty logs to stderr)")
	flag.Parse()

	var w io.Writer = os.Stderr
	if *logFilePtr != "" {
		w = &lumberjack.Logger{Filename: *logFilePtr, MaxSize: logMaxSize, MaxBackups: logMaxBackup, MaxAge: logMaxAge}
	}
	log := logging.New(logVerbosity, w, logSuppress)

	tx, err := afsk.NewTransmitter(alsa.NewPlayback(log, *txDevicePtr), log, afsk.TXConfig{Baud: *baudPtr})
	if err != nil {
		log.Fatal("could not construct transmitter", "error", err)
	}
	rx, err := afsk.NewReceiver(alsa.NewCapture(log, *rxDevicePtr), log, afsk.RXConfig{Baud: *baudPtr})
	if err != nil {
		log.Fatal("could not construct receiver", "error", err)
	}

	fmt.Println("AFSK Chat Demo")
	fmt.Println("Listener started, press Ctrl-C to exit.")
	go listen(rx, log)

	fmt.Println("Enter chat nickname/callsign:")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	callsign := scanner.Text()

	for {
		fmt.Println("Enter message (ASCII):")
		if !scanner.Scan() {
			return
		}
		msg := fmt.Sprintf("%s [%s] %s", time.Now().Format("2006-01-02 15:04:05"), callsign, scanner.Text())
		fmt.Printf("Transmitting (est. %s)...\n", tx.EstimateDuration(len(msg)))
		if err := tx.Transmit([]byte(msg)); err != nil {
			log.Error("transmit failed", "error", err)
			continue
		}
		fmt.Println("Done.")
	}
}

// listen runs the receive loop, printing each incoming message as it
// arrives. It runs for the lifetime of the process.
func listen(rx *afsk.Receiver, log logging.Logger) {
	for {
		payload, _, err := rx.Receive(rxTimeout)
		if err != nil {
			log.Error("receive failed", "error", err)
			continue
		}
		if len(payload) == 0 {
			continue
		}
		fmt.Println(string(payload))
	}
}
