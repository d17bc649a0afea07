/*
NAME
  logging_test.go

DESCRIPTION
  logging_test.go adapts *testing.T to logging.Logger so the package's
  components can log during tests without a real logging backend.

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
	"testing"

	"github.com/ausocean/utils/logging"
)

// testLogger adapts *testing.T to logging.Logger.
type testLogger testing.T

func (tl *testLogger) Debug(msg string, args ...interface{})   { tl.log(msg) }
func (tl *testLogger) Info(msg string, args ...interface{})    { tl.log(msg) }
func (tl *testLogger) Warning(msg string, args ...interface{}) { tl.log(msg) }
func (tl *testLogger) Error(msg string, args ...interface{})   { tl.log(msg) }
func (tl *testLogger) Fatal(msg string, args ...interface{})   { (*testing.T)(tl).Fatal(msg) }
func (tl *testLogger) SetLevel(lvl int8)                       {}
func (tl *testLogger) Log(lvl int8, msg string, args ...interface{}) {
	if lvl == logging.Fatal {
		tl.Fatal(msg, args...)
		return
	}
	tl.log(msg)
}

func (tl *testLogger) log(msg string) { (*testing.T)(tl).Log(msg) }

func newTestLogger(t *testing.T) logging.Logger { return (*testLogger)(t) }
