package ot

import (
	"errors"
	"fmt"
	"testing"
)

// TestErrorSeverity verifies the ErrorSeverity String() method.
func TestErrorSeverity(t *testing.T) {
	tests := []struct {
		severity ErrorSeverity
		expected string
	}{
		{SeverityCritical, "CRITICAL"},
		{SeverityMajor, "MAJOR"},
		{SeverityMinor, "MINOR"},
		{ErrorSeverity(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.severity.String()
		if result != tt.expected {
			t.Errorf("ErrorSeverity(%d).String() = %q; want %q", tt.severity, result, tt.expected)
		}
	}
}

// TestFontError verifies FontError formatting.
func TestFontError(t *testing.T) {
	tests := []struct {
		name     string
		err      FontError
		expected string
	}{
		{
			name: "Error with offset",
			err: FontError{
				Table:    T("name"),
				Section:  "NameRecord",
				Issue:    "Buffer too small",
				Severity: SeverityCritical,
				Offset:   1234,
				Kind:     ErrMalformedInput,
			},
			expected: "[CRITICAL] name/NameRecord at offset 1234: Buffer too small",
		},
		{
			name: "Error without offset",
			err: FontError{
				Table:    T("cmap"),
				Section:  "Subtable",
				Issue:    "Invalid format",
				Severity: SeverityMajor,
				Offset:   0,
			},
			expected: "[MAJOR] cmap/Subtable: Invalid format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("FontError.Error() = %q; want %q", result, tt.expected)
			}
		})
	}
}

// TestFontWarning verifies FontWarning formatting.
func TestFontWarning(t *testing.T) {
	tests := []struct {
		name     string
		warning  FontWarning
		expected string
	}{
		{
			name: "Warning with offset",
			warning: FontWarning{
				Table:  T("head"),
				Issue:  "unexpected magic number",
				Offset: 5678,
			},
			expected: "[WARNING] head at offset 5678: unexpected magic number",
		},
		{
			name: "Warning without offset",
			warning: FontWarning{
				Table:  T("cmap"),
				Issue:  "sub-table format 99",
				Offset: 0,
			},
			expected: "[WARNING] cmap: sub-table format 99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.warning.String()
			if result != tt.expected {
				t.Errorf("FontWarning.String() = %q; want %q", result, tt.expected)
			}
		})
	}
}

// TestErrorCollector verifies the errorCollector helper type.
func TestErrorCollector(t *testing.T) {
	ec := &errorCollector{}

	if ec.hasErrors() || ec.hasWarnings() {
		t.Error("errorCollector should be empty initially")
	}
	err := ec.addError(T("name"), "Header", "version 7", ErrUnrecognizedVariant, 100)
	if !ec.hasErrors() {
		t.Error("errorCollector should have errors after adding one")
	}
	if !errors.Is(err, ErrUnrecognizedVariant) {
		t.Errorf("expected error to unwrap to its kind, have %v", err.Kind)
	}
	if err.Severity != SeverityCritical {
		t.Errorf("expected decoding errors to be critical, is %s", err.Severity)
	}

	other := &errorCollector{}
	other.addWarning(T("cmap"), "first", 10)
	other.addWarning(T("cmap"), "second", 20)
	ec.addWarning(T("head"), "zeroth", 0)
	ec.merge(other)
	ec.merge(nil)
	if len(ec.warnings) != 3 || ec.warnings[2].Issue != "second" {
		t.Errorf("expected 3 warnings in order, have %v", ec.warnings)
	}
}

// TestErrorWrap verifies that wrapped reader errors keep their kind.
func TestErrorWrap(t *testing.T) {
	ec := &errorCollector{}
	if ec.wrap(nil, T("head"), "Fields", 0) != nil {
		t.Fatal("wrapping nil should yield nil")
	}
	for _, kind := range []error{ErrMalformedInput, ErrInvalidOffset, ErrInvalidEncoding, ErrUnrecognizedVariant} {
		err := ec.wrap(fmt.Errorf("record 3: %w", kind), T("name"), "NameRecord", 42)
		var fe FontError
		if !errors.As(err, &fe) {
			t.Fatalf("expected FontError, have %T", err)
		}
		if fe.Kind != kind || fe.Offset != 42 || fe.Table != T("name") {
			t.Errorf("unexpected wrapped error %#v", fe)
		}
	}
	err := ec.wrap(errors.New("integer overflow"), T("head"), "Fields", 0)
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected errors without kind to count as malformed input, have %v", err)
	}
	fe := FontError{Table: T("cmap"), Kind: ErrInvalidOffset}
	if ec.wrap(fe, T("name"), "X", 1) != error(fe) {
		t.Errorf("expected FontError to pass through unchanged")
	}
}

// TestFontWarnings verifies that Font.Warnings never returns nil.
func TestFontWarnings(t *testing.T) {
	font := &Font{
		parseWarnings: []FontWarning{
			{Table: T("head"), Issue: "Warning issue", Offset: 400},
		},
	}
	if len(font.Warnings()) != 1 {
		t.Errorf("Font.Warnings() should return 1 warning; got %d", len(font.Warnings()))
	}
	emptyFont := &Font{}
	if w := emptyFont.Warnings(); w == nil || len(w) != 0 {
		t.Error("Empty font should return empty warnings slice")
	}
}
