package target

import "fmt"

// SelectErrorKind enumerates reasons a strategy cannot be chosen.
type SelectErrorKind uint8

const (
	// SelectErrUnknownArch: the architecture matches neither strategy.
	SelectErrUnknownArch SelectErrorKind = iota + 1
	SelectErrNarrowLongDouble
	SelectErrEmptyArch
	SelectErrUnknownKind
)

// SelectError describes a failed strategy selection.
type SelectError struct {
	Kind  SelectErrorKind
	Value string
}

func (e *SelectError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case SelectErrUnknownArch:
		return fmt.Sprintf("no quad strategy for architecture %q", e.Value)
	case SelectErrNarrowLongDouble:
		return fmt.Sprintf("architecture %q has a 64-bit long double and no quad runtime", e.Value)
	case SelectErrEmptyArch:
		return "empty architecture name"
	case SelectErrUnknownKind:
		return fmt.Sprintf("unknown strategy %q", e.Value)
	default:
		return fmt.Sprintf("select error kind=%d value=%q", e.Kind, e.Value)
	}
}
