package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd
	// KindPoint represents an instant event.
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of the event. Lower values are coarser.
type Scope uint8

const (
	// ScopeRun covers one whole verification run.
	ScopeRun Scope = iota + 1
	// ScopeCategory covers one operation category or one I/O check.
	ScopeCategory
	// ScopeCheck covers a single canonical-versus-direct comparison.
	ScopeCheck
)

func (s Scope) String() string {
	switch s {
	case ScopeRun:
		return "run"
	case ScopeCategory:
		return "category"
	case ScopeCheck:
		return "check"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time         // wall-clock timestamp
	Seq      uint64            // global sequence number (monotonic)
	Kind     Kind              // event kind
	Scope    Scope             // granularity level
	SpanID   uint64            // unique span identifier
	ParentID uint64            // parent span (0 if root)
	Name     string            // e.g. "run", "real-unary", "check:sin"
	Detail   string            // optional detail message
	Extra    map[string]string // extensible key-value pairs
}
