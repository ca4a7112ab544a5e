package compiles

import (
	"fmt"
	"strings"
)

type Program []OpCode

// String renders one instruction per line as index, name and argument.
func (p Program) String() string {
	var b strings.Builder
	for i, inst := range p {
		fmt.Fprintf(&b, "%d\t%s\t%d\n", i, inst.Name(), inst.Arg())
	}
	return b.String()
}

// Count sums the repeat counts of op. Loop ops carry targets, not counts.
func (p Program) Count(op OpCode) (n int) {
	op = op.Op()
	if op == OpLoopStart || op == OpLoopEnd {
		for _, inst := range p {
			if inst.Op() == op {
				n++
			}
		}
		return
	}
	for _, inst := range p {
		if inst.Op() == op {
			n += inst.Arg()
		}
	}
	return
}
