/*
NAME
  memio_test.go

DESCRIPTION
  memio_test.go provides in-memory Source/Sink implementations used to
  round-trip the transmit and receive pipelines without real audio
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

package afsk

// memSink collects every sample written to it, in order.
type memSink struct {
	samples []int16
}

func (m *memSink) Write(samples []int16) error {
	m.samples = append(m.samples, samples...)
	return nil
}

// memSource serves fixed-size blocks from a backing sample slice. Once the
// backing slice is exhausted it serves silent (all-zero) blocks
// indefinitely, so that a capture loop relying on the timeout gate never
// has to deal with a read error.
type memSource struct {
	data []int16
	pos  int
}

func newMemSource(data []int16) *memSource { return &memSource{data: data} }

func (m *memSource) Start() error { m.pos = 0; return nil }
func (m *memSource) Stop() error  { return nil }

func (m *memSource) ReadBlock() ([]int16, error) {
	block := make([]int16, BlockSamples)
	if m.pos < len(m.data) {
		copy(block, m.data[m.pos:])
	}
	m.pos += BlockSamples
	return block, nil
}
