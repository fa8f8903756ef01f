package symtab

import "fmt"

// ErrorKind enumerates resolution failures.
type ErrorKind uint8

const (
	// ErrUnknownOperation: the name is not a canonical operation.
	ErrUnknownOperation ErrorKind = iota + 1
	ErrEmptySymbol
	ErrNoFunctionTag
	ErrUnknownCategory
	// ErrUnboundSymbol: the bindings have no entry point for the symbol.
	ErrUnboundSymbol
)

// Error describes a resolution failure.
type Error struct {
	Kind ErrorKind
	Name string
	// Symbol is set for ErrUnboundSymbol.
	Symbol string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ErrUnknownOperation:
		return fmt.Sprintf("unknown operation %q", e.Name)
	case ErrEmptySymbol:
		return fmt.Sprintf("empty symbol for operation %q", e.Name)
	case ErrNoFunctionTag:
		return fmt.Sprintf("profile %q has no function tag", e.Name)
	case ErrUnknownCategory:
		return fmt.Sprintf("unknown category %q", e.Name)
	case ErrUnboundSymbol:
		return fmt.Sprintf("operation %q: symbol %q is not bound", e.Name, e.Symbol)
	default:
		return fmt.Sprintf("symtab error kind=%d name=%q", e.Kind, e.Name)
	}
}
