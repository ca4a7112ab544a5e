package tokens

type Token uint8

const (
	ShiftLeft Token = iota + 1
	ShiftRight
	Increment
	Decrement
	Output
	Input
	LoopStart
	LoopEnd
)

var symbols = [...]rune{
	ShiftLeft:  '<',
	ShiftRight: '>',
	Increment:  '+',
	Decrement:  '-',
	Output:     '.',
	Input:      ',',
	LoopStart:  '[',
	LoopEnd:    ']',
}

func (t Token) String() string {
	if t == 0 || int(t) >= len(symbols) {
		return "?"
	}
	return string(symbols[t])
}

// IsLoop reports whether t is one of the jump tokens, which are never merged.
func (t Token) IsLoop() bool {
	return t == LoopStart || t == LoopEnd
}

func Lookup(r rune) (Token, bool) {
	switch r {
	case '<':
		return ShiftLeft, true
	case '>':
		return ShiftRight, true
	case '+':
		return Increment, true
	case '-':
		return Decrement, true
	case '.':
		return Output, true
	case ',':
		return Input, true
	case '[':
		return LoopStart, true
	case ']':
		return LoopEnd, true
	}
	return 0, false
}
