// Package diag accumulates build diagnostics. Domain-level problems
// (unresolved references, misplaced constructs, dangling relationship
// endpoints, unknown keywords) are recoverable: they are recorded here with a
// source range and the build carries on. Only internal invariant violations
// abort a build, and those surface as panics from the package that detected
// them, never as diagnostics.
package diag

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// Severity classifies a diagnostic.
type Severity int

const (
	// Error marks input the builder had to drop or skip.
	Error Severity = iota
	// Warning marks input that was accepted with a documented substitution.
	Warning
	// Info marks advisory notices, e.g. unimplemented directives.
	Info
)

// String returns the lower-case severity label used in rendered output.
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic is a single recorded problem. Subject is nil when the source
// position is unknown (e.g. problems detected during post-build validation).
type Diagnostic struct {
	Severity Severity
	Summary  string
	Subject  *hcl.Range
}

// String renders the diagnostic as "severity: summary (file:line,col)".
func (d Diagnostic) String() string {
	var sb strings.Builder
	sb.WriteString(d.Severity.String())
	sb.WriteString(": ")
	sb.WriteString(d.Summary)
	if d.Subject != nil {
		fmt.Fprintf(&sb, " (%s:%d,%d)", d.Subject.Filename, d.Subject.Start.Line, d.Subject.Start.Column)
	}
	return sb.String()
}

// Sink collects diagnostics in the order they were reported. It is owned by a
// single build invocation and is not safe for concurrent use.
type Sink struct {
	diags []Diagnostic
}

// NewSink returns an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Append records a fully formed diagnostic.
func (s *Sink) Append(d Diagnostic) {
	s.diags = append(s.diags, d)
}

// Errorf records an error-severity diagnostic at the given range.
func (s *Sink) Errorf(subject *hcl.Range, format string, args ...any) {
	s.Append(Diagnostic{Severity: Error, Summary: fmt.Sprintf(format, args...), Subject: subject})
}

// Warnf records a warning-severity diagnostic at the given range.
func (s *Sink) Warnf(subject *hcl.Range, format string, args ...any) {
	s.Append(Diagnostic{Severity: Warning, Summary: fmt.Sprintf(format, args...), Subject: subject})
}

// Infof records an info-severity diagnostic at the given range.
func (s *Sink) Infof(subject *hcl.Range, format string, args ...any) {
	s.Append(Diagnostic{Severity: Info, Summary: fmt.Sprintf(format, args...), Subject: subject})
}

// ExtendHCL folds native HCL diagnostics (from parsing or expression
// evaluation) into the sink, preserving their subject ranges.
func (s *Sink) ExtendHCL(diags hcl.Diagnostics) {
	for _, d := range diags {
		sev := Warning
		if d.Severity == hcl.DiagError {
			sev = Error
		}
		summary := d.Summary
		if d.Detail != "" {
			summary = summary + ": " + d.Detail
		}
		s.Append(Diagnostic{Severity: sev, Summary: summary, Subject: d.Subject})
	}
}

// All returns the recorded diagnostics in report order.
func (s *Sink) All() []Diagnostic {
	return s.diags
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Count returns the number of diagnostics with the given severity.
func (s *Sink) Count(sev Severity) int {
	n := 0
	for _, d := range s.diags {
		if d.Severity == sev {
			n++
		}
	}
	return n
}
