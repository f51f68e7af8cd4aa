package typing

import "fmt"

// CharState is the display state of one reference character.
type CharState int

const (
	StatePending CharState = iota
	StateCorrect
	StateIncorrect
	StateCurrent
)

func (c CharState) String() string {
	switch c {
	case StatePending:
		return "pending"
	case StateCorrect:
		return "correct"
	case StateIncorrect:
		return "incorrect"
	case StateCurrent:
		return "current"
	default:
		return fmt.Sprintf("CharState(%d)", int(c))
	}
}

// Classify returns the state of reference[index] given the typed input.
// Exactly one index is current while the input is shorter than the
// reference; none once they are the same length.
func Classify(reference, input string, index int) (CharState, error) {
	ref := []rune(reference)
	if index < 0 || index >= len(ref) {
		return StatePending, fmt.Errorf("classify index %d of %d: %w", index, len(ref), ErrIndexOutOfRange)
	}
	return classifyRunes(ref, []rune(input), index), nil
}

// ClassifyAll returns the state of every reference character.
func ClassifyAll(reference, input string) []CharState {
	ref := []rune(reference)
	in := []rune(input)
	out := make([]CharState, len(ref))
	for i := range ref {
		out[i] = classifyRunes(ref, in, i)
	}
	return out
}

func classifyRunes(ref, in []rune, index int) CharState {
	switch {
	case index < len(in):
		if in[index] == ref[index] {
			return StateCorrect
		}
		return StateIncorrect
	case index == len(in):
		return StateCurrent
	default:
		return StatePending
	}
}
