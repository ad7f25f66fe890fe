package engine

import (
	"fmt"
	"runtime"
)

// SourceLocation is diagnostic-only metadata attached to a Binding at
// construction time; the engine never re-derives or re-captures it.
//
// Column is always zero: unlike the surrounding toolkit this spec was
// distilled from, Go's runtime.Caller does not report a column number.
type SourceLocation struct {
	File     string
	Function string
	Line     int
	Column   int
}

func (l SourceLocation) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d (%s)", l.File, l.Line, l.Function)
}

// CaptureSourceLocation walks skip+1 frames up the call stack. Pass 0
// to capture the caller of CaptureSourceLocation itself.
func CaptureSourceLocation(skip int) SourceLocation {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return SourceLocation{}
	}
	name := ""
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return SourceLocation{File: file, Function: name, Line: line}
}
