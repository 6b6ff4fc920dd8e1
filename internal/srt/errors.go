package srt

import "fmt"

// ErrorKind identifies which step of parsing failed.
type ErrorKind int

const (
	BadPosition ErrorKind = iota + 1
	UnexpectedEnd
	ParseStartTime
	ParseEndTime
	ExtraTimePart
	CreateItem
	ReadLine
)

func (k ErrorKind) String() string {
	switch k {
	case BadPosition:
		return "bad position"
	case UnexpectedEnd:
		return "unexpected end"
	case ParseStartTime:
		return "parse start time"
	case ParseEndTime:
		return "parse end time"
	case ExtraTimePart:
		return "extra time part"
	case CreateItem:
		return "create item"
	case ReadLine:
		return "read line"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is returned by Parser for malformed input or a failing line
// source. Line is the 1-based number of the line being processed when the
// error was detected; for CreateItem it is the line that ended the item.
type ParseError struct {
	Kind ErrorKind
	Line int
	// offending text, set for ExtraTimePart
	Part string
	Err  error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case BadPosition:
		return fmt.Sprintf("bad subtitle position: %v", e.Err)
	case UnexpectedEnd:
		return "unexpected end of input"
	case ParseStartTime:
		return fmt.Sprintf("failed to parse start time: %v", e.Err)
	case ParseEndTime:
		return fmt.Sprintf("failed to parse end time: %v", e.Err)
	case ExtraTimePart:
		return fmt.Sprintf(
			"an extra time part found: '%s'; there should be start and end only",
			e.Part,
		)
	case CreateItem:
		return e.Err.Error()
	case ReadLine:
		return fmt.Sprintf("could not read a line from input: %v", e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
