package bfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

// DefaultTapeSize is the tape length used by the command line.
const DefaultTapeSize = 100_000

type TapeSize int

var tapeSizeFlag = cmds.Var[int]("-tape-size", "<n>: tape length in bytes")

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		max(*tapeSizeFlag, 0),
		configs.First[int](loader, "tape_size"),
		DefaultTapeSize,
	))
}
