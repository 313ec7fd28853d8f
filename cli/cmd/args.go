package cmd

import (
	"fmt"
	"strings"

	"github.com/asingingbird/hashcli/input"
)

// ScanArgs recovers the global argv position of each --text/--file value.
//
// The argument parser groups repeated flags by name, which loses the
// caller's interleaving of text and file arguments. The positions
// recovered here feed input.Resolve, which reconstructs the original
// order. argv[0] is the program name and is skipped.
//
// Both the separated form (--text A, -t A) and the inline form
// (--text=A) are recognized. For the separated form the recorded index
// is the position of the value token, matching what the two flag groups
// would report; either convention works since positions stay strictly
// monotonic within a scan.
func ScanArgs(argv []string) (texts, files []input.Input, err error) {
	for i := 1; i < len(argv); i++ {
		name, inline, hasInline := splitInline(argv[i])

		var kind input.Kind
		switch name {
		case "--text", "-t":
			kind = input.KindText
		case "--file", "-f":
			kind = input.KindFile
		default:
			continue
		}

		value := inline
		index := i
		if !hasInline {
			if i+1 >= len(argv) {
				return nil, nil, fmt.Errorf("flag needs an argument: %s", argv[i])
			}
			i++
			value = argv[i]
			index = i
		}

		in := input.Input{Kind: kind, Value: value, Index: index}
		if kind == input.KindText {
			texts = append(texts, in)
		} else {
			files = append(files, in)
		}
	}
	return texts, files, nil
}

// splitInline splits a --flag=value token into name and value.
func splitInline(arg string) (name, value string, ok bool) {
	if eq := strings.IndexByte(arg, '='); eq >= 0 {
		return arg[:eq], arg[eq+1:], true
	}
	return arg, "", false
}
