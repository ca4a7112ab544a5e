package machines

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/reusee/taibf/compiles"
)

// State is the part of a Machine that survives a snapshot. I/O and logger are not saved.
type State struct {
	Program compiles.Program
	Tape    []byte
	PC      int
	DP      int
	Steps   uint64
}

func (m *Machine) State() State {
	return State{
		Program: m.Program,
		Tape:    m.Tape,
		PC:      m.PC,
		DP:      m.DP,
		Steps:   m.Steps,
	}
}

func (m *Machine) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(m.State()); err != nil {
		return err
	}
	return nil
}

func (m *Machine) Restore(r io.Reader) error {
	var state State
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&state); err != nil {
		return err
	}
	if state.PC < 0 || state.PC > len(state.Program) {
		return fmt.Errorf("%w: restored pc %d, program length %d", ErrHalted, state.PC, len(state.Program))
	}
	m.Program = state.Program
	m.Tape = state.Tape
	m.PC = state.PC
	m.DP = state.DP
	m.Steps = state.Steps
	return nil
}
