// Package assert implements the fluent assertion engine used inside test
// procedures. A false predicate raises a *Failure by panicking; the test case
// boundary in internal/testmgr recovers it and classifies the case as failed.
// Misusing the engine itself (negative tolerance, option/type mismatch) raises
// a *Misuse instead, which classifies the case as errored.
package assert

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Kind classifies what a failed check expected of its value.
type Kind int

const (
	KindEqual Kind = iota
	KindDifferent
	KindPanic
	KindForced
)

func (k Kind) String() string {
	switch k {
	case KindEqual:
		return "expected equal"
	case KindDifferent:
		return "expected different"
	case KindPanic:
		return "expected panic"
	case KindForced:
		return "forced"
	default:
		return "unknown"
	}
}

// Site is the source location of the assertion call, captured with
// runtime.Caller when the check runs.
type Site struct {
	File string
	Line int
}

func (s Site) IsSet() bool {
	return s.File != ""
}

func (s Site) String() string {
	return fmt.Sprintf("%s:%d", filepath.Base(s.File), s.Line)
}

func callSite(skip int) Site {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{}
	}
	return Site{File: file, Line: line}
}

// Failure is the structured signal raised by a false assertion. It is the only
// channel through which failure propagates out of the engine.
type Failure struct {
	Message string
	Kind    Kind
	Site    Site

	// Rendered reached/expected values; HasValues is false when a value has
	// no useful textual display (func and channel kinds).
	Reached   string
	Expected  string
	HasValues bool

	// For KindPanic, the name of the expected panic value type.
	PanicType string
}

func (f *Failure) Error() string {
	var b strings.Builder
	if f.Message != "" {
		b.WriteString(f.Message)
	}
	if f.Site.IsSet() {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "(%s)", f.Site)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	switch f.Kind {
	case KindPanic:
		fmt.Fprintf(&b, "\t[EXPECTED PANIC] %s\n", f.PanicType)
		if f.HasValues {
			fmt.Fprintf(&b, "\t[REACHED] %s\n", f.Reached)
		}
	case KindEqual:
		if f.HasValues {
			fmt.Fprintf(&b, "\t[REACHED] %s\n\t[EXPECTED EQUAL TO] %s\n", f.Reached, f.Expected)
		} else {
			b.WriteString("\t[REACHED] is different from [EXPECTED]. Expected [EQUAL TO]\n")
		}
	case KindDifferent:
		if f.HasValues {
			fmt.Fprintf(&b, "\t[REACHED] %s\n\t[EXPECTED DIFFERENT FROM] %s\n", f.Reached, f.Expected)
		} else {
			b.WriteString("\t[REACHED] is equal to [EXPECTED]. Expected [DIFFERENT FROM]\n")
		}
	case KindForced:
		// No comparison happened; the message and call site say it all.
	}

	return b.String()
}

// Misuse reports a logic error in how the assertion engine itself was called.
// It deliberately does not share a type with Failure so that the test case
// boundary classifies it as an error, not a test failure.
type Misuse struct {
	Reason string
	Site   Site
}

func (m *Misuse) Error() string {
	if m.Site.IsSet() {
		return fmt.Sprintf("assertion misuse at %s: %s", m.Site, m.Reason)
	}
	return fmt.Sprintf("assertion misuse: %s", m.Reason)
}
