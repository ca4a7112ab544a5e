package machines

import (
	"bytes"
	"fmt"
	"io"

	"github.com/reusee/taibf/compiles"
)

type flusher interface {
	Flush() error
}

// Step executes the instruction at PC and advances PC by one.
func (m *Machine) Step() error {
	if m.PC < 0 || m.PC >= len(m.Program) {
		return fmt.Errorf("%w: pc %d, program length %d", ErrHalted, m.PC, len(m.Program))
	}
	inst := m.Program[m.PC]
	n := inst.Arg()

	switch inst.Op() {

	case compiles.OpShiftRight:
		m.DP += n

	case compiles.OpShiftLeft:
		m.DP -= n

	case compiles.OpIncrement:
		if err := m.check(m.DP, 1); err != nil {
			return err
		}
		m.Tape[m.DP] += byte(n)

	case compiles.OpDecrement:
		if err := m.check(m.DP, 1); err != nil {
			return err
		}
		m.Tape[m.DP] -= byte(n)

	case compiles.OpOutput:
		if err := m.check(m.DP, 1); err != nil {
			return err
		}
		var err error
		if n == 1 {
			_, err = m.Output.Write(m.Tape[m.DP : m.DP+1])
		} else {
			_, err = m.Output.Write(bytes.Repeat(m.Tape[m.DP:m.DP+1], n))
		}
		if err != nil {
			return m.fail(ErrOutput, err)
		}

	case compiles.OpInput:
		if err := m.check(m.DP, n); err != nil {
			return err
		}
		if f, ok := m.Output.(flusher); ok {
			if err := f.Flush(); err != nil {
				return m.fail(ErrOutput, err)
			}
		}
		if _, err := io.ReadFull(m.Input, m.Tape[m.DP:m.DP+n]); err != nil {
			return m.fail(ErrInputUnderflow, err)
		}

	case compiles.OpLoopStart:
		if err := m.check(m.DP, 1); err != nil {
			return err
		}
		if m.Tape[m.DP] == 0 {
			m.PC = n
		}

	case compiles.OpLoopEnd:
		if err := m.check(m.DP, 1); err != nil {
			return err
		}
		if m.Tape[m.DP] != 0 {
			m.PC = n
		}

	default:
		return fmt.Errorf("invalid instruction %#x at pc %d", uint64(inst), m.PC)
	}

	m.PC++
	m.Steps++
	return nil
}

// check reports cells [dp, dp+n) that fall outside the tape.
func (m *Machine) check(dp int, n int) error {
	if dp < 0 || dp+n > len(m.Tape) {
		return fmt.Errorf("%w: dp %d, length %d, tape size %d, pc %d",
			ErrTapeOutOfRange, dp, n, len(m.Tape), m.PC)
	}
	return nil
}

func (m *Machine) fail(kind error, err error) error {
	return fmt.Errorf("%w: pc %d, dp %d: %w", kind, m.PC, m.DP, err)
}
