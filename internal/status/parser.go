package status

import (
	"errors"
	"fmt"
	"strings"
)

const codeWidth = 3

var ErrMalformedLine = errors.New("malformed status line")

type ParseError struct {
	Line string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q is shorter than %d characters", ErrMalformedLine, e.Line, codeWidth)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedLine
}

// Parse reads one line of short status output: a fixed-width code followed
// by the path.
func Parse(line string) (Entry, error) {
	if len(line) < codeWidth {
		return Entry{}, &ParseError{Line: line}
	}

	return Entry{
		Path: strings.TrimSpace(line[codeWidth:]),
		Kind: Classify(line[:codeWidth]),
	}, nil
}

// ParseLines parses every line. Malformed lines do not stop parsing: they are
// kept as Unknown entries and reported to onError when it is not nil.
func ParseLines(lines []string, onError func(error)) []Entry {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		entry, err := Parse(line)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			entry = Entry{Path: strings.TrimSpace(line), Kind: KindUnknown}
		}
		entries = append(entries, entry)
	}
	return entries
}
