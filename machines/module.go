package machines

import (
	"io"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
}

type Stdin io.Reader

type Stdout io.Writer

func (Module) Stdin(
	mode modes.Mode,
) Stdin {
	if mode == modes.ModeDevelopment {
		// tests must not block on the real stdin
		return strings.NewReader("")
	}
	return os.Stdin
}

func (Module) Stdout(
	mode modes.Mode,
) Stdout {
	if mode == modes.ModeDevelopment {
		return io.Discard
	}
	return os.Stdout
}

// NewMachine builds a Machine with the configured tape and loads source into it.
type NewMachine func(source string) (*Machine, error)

func (Module) NewMachine(
	tapeSize bfconfigs.TapeSize,
	stdin Stdin,
	stdout Stdout,
	logger logs.Logger,
) NewMachine {
	return func(source string) (*Machine, error) {
		m := New(int(tapeSize))
		m.Input = stdin
		m.Output = stdout
		m.Logger = logger
		if err := m.Load(source); err != nil {
			return nil, err
		}
		return m, nil
	}
}
