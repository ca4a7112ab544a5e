package machines

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/reusee/taibf/compiles"
	"github.com/reusee/taibf/tokens"
)

const DefaultTapeSize = 30_000

var (
	ErrTapeOutOfRange = errors.New("data pointer out of tape range")
	ErrInputUnderflow = errors.New("input underflow")
	ErrOutput         = errors.New("output failed")
	ErrHalted         = errors.New("program counter out of program")
)

type Machine struct {
	Program compiles.Program
	Tape    []byte
	PC      int
	DP      int
	Steps   uint64

	Input  io.Reader
	Output io.Writer
	Logger *slog.Logger
}

func New(tapeSize int) *Machine {
	if tapeSize <= 0 {
		tapeSize = DefaultTapeSize
	}
	return &Machine{
		Tape:   make([]byte, tapeSize),
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: slog.New(slog.DiscardHandler),
	}
}

// Load compiles src and installs it as the program to run from the start.
// The tape and data pointer are kept.
func (m *Machine) Load(src string) error {
	program, err := compiles.Compile(tokens.Tokenize(src))
	if err != nil {
		return err
	}
	m.Program = program
	m.PC = 0
	m.Logger.Debug("program loaded",
		"instructions", len(program),
	)
	return nil
}

// Done reports whether the program counter has run past the last instruction.
func (m *Machine) Done() bool {
	return m.PC >= len(m.Program)
}

func (m *Machine) Run() error {
	for !m.Done() {
		if err := m.Step(); err != nil {
			m.Logger.Debug("run aborted",
				"pc", m.PC,
				"dp", m.DP,
				"steps", m.Steps,
				"error", err,
			)
			return err
		}
	}
	m.Logger.Debug("run finished",
		"steps", m.Steps,
	)
	return nil
}
