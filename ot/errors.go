package ot

import (
	"errors"
	"fmt"
)

// Kinds of decoding failures. Every error returned by Parse wraps one of them,
// so clients may check with errors.Is.
var (
	// ErrMalformedInput signals a buffer shorter than a field or structure requires.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidOffset signals an offset which, combined with its length, points
	// outside of the buffer it is relative to.
	ErrInvalidOffset = errors.New("invalid offset")
	// ErrInvalidEncoding signals string data which is not valid UTF-16BE.
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrUnrecognizedVariant signals a format or version discriminator without a
	// known interpretation.
	ErrUnrecognizedVariant = errors.New("unrecognized variant")
)

// ErrorSeverity represents the severity level of a font parsing error.
type ErrorSeverity int

const (
	// SeverityCritical indicates a severe error that makes the font unusable or unreliable.
	SeverityCritical ErrorSeverity = iota
	// SeverityMajor indicates a significant error that may affect functionality but doesn't prevent usage.
	SeverityMajor
	// SeverityMinor indicates a minor issue that can be safely ignored in most cases.
	SeverityMinor
)

// String returns a human-readable representation of the error severity.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// FontError represents an error encountered during font parsing.
type FontError struct {
	Table    Tag           // The OpenType table where the error occurred (e.g., "name", "cmap")
	Section  string        // Specific section within the table (e.g., "NameRecord", "EncodingRecord")
	Issue    string        // Human-readable description of the issue
	Severity ErrorSeverity // Severity level of the error
	Offset   uint32        // Byte offset in the font file where the error occurred (0 if unknown)
	Kind     error         // one of ErrMalformedInput, ErrInvalidOffset, …
}

// Error implements the error interface.
func (e FontError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s/%s at offset %d: %s", e.Severity, e.Table, e.Section, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s/%s: %s", e.Severity, e.Table, e.Section, e.Issue)
}

// Unwrap returns the kind of the error.
func (e FontError) Unwrap() error {
	return e.Kind
}

// FontWarning represents a non-critical issue encountered during font parsing.
// Warnings indicate potential problems but do not prevent font usage.
type FontWarning struct {
	Table  Tag    // The OpenType table where the warning occurred
	Issue  string // Human-readable description of the warning
	Offset uint32 // Byte offset in the font file where the warning occurred (0 if unknown)
}

// String returns a human-readable representation of the warning.
func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Table, w.Offset, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Table, w.Issue)
}

// errorCollector accumulates warnings during font parsing and produces errors.
// Decoding fails fast, so at most one error is ever recorded by a successful-or-not
// Parse call, but warnings may pile up.
type errorCollector struct {
	errors   []FontError
	warnings []FontWarning
}

// addError records a parsing error and returns it.
func (ec *errorCollector) addError(table Tag, section string, issue string, kind error, offset uint32) FontError {
	err := FontError{
		Table:    table,
		Section:  section,
		Issue:    issue,
		Severity: SeverityCritical,
		Offset:   offset,
		Kind:     kind,
	}
	ec.errors = append(ec.errors, err)
	return err
}

// addWarning records a parsing warning.
func (ec *errorCollector) addWarning(table Tag, issue string, offset uint32) {
	ec.warnings = append(ec.warnings, FontWarning{
		Table:  table,
		Issue:  issue,
		Offset: offset,
	})
}

// merge appends the findings of another collector, in order.
func (ec *errorCollector) merge(other *errorCollector) {
	if other == nil {
		return
	}
	ec.errors = append(ec.errors, other.errors...)
	ec.warnings = append(ec.warnings, other.warnings...)
}

// hasErrors returns true if any errors have been recorded.
func (ec *errorCollector) hasErrors() bool {
	return len(ec.errors) > 0
}

// hasWarnings returns true if any warnings have been recorded.
func (ec *errorCollector) hasWarnings() bool {
	return len(ec.warnings) > 0
}

// wrap turns a low-level reader error into a FontError, keeping its kind.
// Errors which already are FontErrors are passed through.
func (ec *errorCollector) wrap(err error, table Tag, section string, offset uint32) error {
	if err == nil {
		return nil
	}
	var fe FontError
	if errors.As(err, &fe) {
		return fe
	}
	kind := ErrMalformedInput
	switch {
	case errors.Is(err, ErrInvalidOffset):
		kind = ErrInvalidOffset
	case errors.Is(err, ErrInvalidEncoding):
		kind = ErrInvalidEncoding
	case errors.Is(err, ErrUnrecognizedVariant):
		kind = ErrUnrecognizedVariant
	}
	return ec.addError(table, section, err.Error(), kind, offset)
}
