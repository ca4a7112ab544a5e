package compiles

import (
	"errors"
	"fmt"
	"iter"

	"github.com/reusee/taibf/tokens"
)

var (
	ErrUnmatchedLoopStart = errors.New("unmatched loop start")
	ErrUnmatchedLoopEnd   = errors.New("unmatched loop end")
)

func Compile(seq iter.Seq[tokens.Token]) (Program, error) {
	program := merge(seq)
	if err := resolveJumps(program); err != nil {
		return nil, err
	}
	return program, nil
}

// merge turns every maximal run of equal tokens into one instruction
// carrying the run length. Loop tokens always form runs of one.
func merge(seq iter.Seq[tokens.Token]) (program Program) {
	var last tokens.Token
	run := 0
	for token := range seq {
		if run > 0 && token == last && !token.IsLoop() {
			run++
			continue
		}
		if run > 0 {
			program = append(program, OpCode(last).With(run))
		}
		last = token
		run = 1
	}
	if run > 0 {
		program = append(program, OpCode(last).With(run))
	}
	return
}

// resolveJumps points every loop start at its loop end and vice versa.
func resolveJumps(program Program) error {
	var stack []int
	for i, inst := range program {
		switch inst.Op() {

		case OpLoopStart:
			stack = append(stack, i)

		case OpLoopEnd:
			if len(stack) == 0 {
				return fmt.Errorf("%w: at instruction %d", ErrUnmatchedLoopEnd, i)
			}
			start := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			program[i] = OpLoopEnd.With(start)
			program[start] = OpLoopStart.With(i)

		}
	}
	if len(stack) > 0 {
		return fmt.Errorf("%w: at instruction %d", ErrUnmatchedLoopStart, stack[len(stack)-1])
	}
	return nil
}
