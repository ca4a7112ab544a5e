package compiles

import "github.com/reusee/taibf/tokens"

// OpCode is one instruction. The low 8 bits select the operation,
// the rest hold the argument: a repeat count, or a jump target for loop ops.
type OpCode uint64

const (
	OpShiftLeft  = OpCode(tokens.ShiftLeft)
	OpShiftRight = OpCode(tokens.ShiftRight)
	OpIncrement  = OpCode(tokens.Increment)
	OpDecrement  = OpCode(tokens.Decrement)
	OpOutput     = OpCode(tokens.Output)
	OpInput      = OpCode(tokens.Input)
	OpLoopStart  = OpCode(tokens.LoopStart)
	OpLoopEnd    = OpCode(tokens.LoopEnd)
)

func (o OpCode) With(arg int) OpCode {
	return o.Op() | (OpCode(arg) << 8)
}

func (o OpCode) Op() OpCode {
	return o & 0xff
}

func (o OpCode) Arg() int {
	return int(o >> 8)
}

var opNames = [...]string{
	OpShiftLeft:  "shl",
	OpShiftRight: "shr",
	OpIncrement:  "inc",
	OpDecrement:  "dec",
	OpOutput:     "out",
	OpInput:      "in",
	OpLoopStart:  "jez",
	OpLoopEnd:    "jnz",
}

func (o OpCode) Name() string {
	op := o.Op()
	if op == 0 || int(op) >= len(opNames) {
		return "invalid"
	}
	return opNames[op]
}
