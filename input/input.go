// Package input models caller-supplied hash inputs and restores their
// original command-line order.
//
// Text and file arguments are collected into separate flag groups by the
// argument parser, so the caller's interleaving is recorded as a global
// token index on each entry and reconstructed here.
package input

import "fmt"

// Kind identifies the origin of an input.
type Kind string

// Input origins.
const (
	KindText Kind = "TEXT"
	KindFile Kind = "FILE"
)

// Input is one hash input: literal text or a file path, plus the global
// argv position used solely for ordering. Immutable once constructed.
type Input struct {
	Kind  Kind
	Value string
	Index int
}

// Text constructs a literal-text input at the given argv position.
func Text(value string, index int) Input {
	return Input{Kind: KindText, Value: value, Index: index}
}

// File constructs a file-path input at the given argv position.
func File(path string, index int) Input {
	return Input{Kind: KindFile, Value: path, Index: index}
}

// Resolve merges two index-sorted runs of inputs into one sequence ordered
// by index ascending, preserving the caller's original argument order:
// `--text A --file f --text B` resolves to [Text(A), File(f), Text(B)].
//
// Both runs arrive index-sorted because argv positions are monotonic within
// each flag group. Resolve verifies that invariant, and that no index
// appears in both runs, rather than silently producing a wrong order.
func Resolve(texts, files []Input) ([]Input, error) {
	if err := checkSorted(texts); err != nil {
		return nil, err
	}
	if err := checkSorted(files); err != nil {
		return nil, err
	}

	inputs := make([]Input, 0, len(texts)+len(files))
	i, j := 0, 0
	for i < len(texts) && j < len(files) {
		if texts[i].Index == files[j].Index {
			return nil, fmt.Errorf("duplicate argument index %d", texts[i].Index)
		}
		if texts[i].Index < files[j].Index {
			inputs = append(inputs, texts[i])
			i++
		} else {
			inputs = append(inputs, files[j])
			j++
		}
	}
	inputs = append(inputs, texts[i:]...)
	inputs = append(inputs, files[j:]...)

	return inputs, nil
}

// checkSorted verifies a run is strictly ascending by index.
func checkSorted(run []Input) error {
	for i := 1; i < len(run); i++ {
		if run[i].Index <= run[i-1].Index {
			return fmt.Errorf("%s arguments out of order: index %d after %d",
				run[i].Kind, run[i].Index, run[i-1].Index)
		}
	}
	return nil
}
