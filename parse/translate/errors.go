package translate

import (
	"fmt"
	"log/slog"
)

// Kind identifies the class of a translation failure.
type Kind string

var errorKinds = struct {
	InvalidConstantValue    Kind
	UndefinedConstant       Kind
	NestedDictionary        Kind
	MissingColon            Kind
	InvalidDictionaryValue  Kind
	InvalidDictionaryFormat Kind
	UnrecognizedSyntax      Kind
	NoData                  Kind
}{
	InvalidConstantValue:    "invalid_constant_value",
	UndefinedConstant:       "undefined_constant",
	NestedDictionary:        "nested_dictionary",
	MissingColon:            "missing_colon",
	InvalidDictionaryValue:  "invalid_dictionary_value",
	InvalidDictionaryFormat: "invalid_dictionary_format",
	UnrecognizedSyntax:      "unrecognized_syntax",
	NoData:                  "no_data",
}

// Sentinel values for errors.Is. Only the kind is compared.
var (
	ErrInvalidConstantValue    = &Error{Kind: errorKinds.InvalidConstantValue}
	ErrUndefinedConstant       = &Error{Kind: errorKinds.UndefinedConstant}
	ErrNestedDictionary        = &Error{Kind: errorKinds.NestedDictionary}
	ErrMissingColon            = &Error{Kind: errorKinds.MissingColon}
	ErrInvalidDictionaryValue  = &Error{Kind: errorKinds.InvalidDictionaryValue}
	ErrInvalidDictionaryFormat = &Error{Kind: errorKinds.InvalidDictionaryFormat}
	ErrUnrecognizedSyntax      = &Error{Kind: errorKinds.UnrecognizedSyntax}
	ErrNoData                  = &Error{Kind: errorKinds.NoData}
)

// Error is a fatal translation failure tied to the input line that caused it.
type Error struct {
	Kind   Kind
	Line   int
	Detail string
}

func errorf(kind Kind, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Kind)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Detail)
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", string(e.Kind)),
		slog.Int("line", e.Line),
		slog.String("cause", e.Detail),
	)
}
