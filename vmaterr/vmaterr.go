// Package vmaterr defines the error kinds shared across the indexing
// pipeline, so that callers (in particular the CLI) can distinguish
// validation failures from I/O failures with errors.Is/errors.As instead
// of string matching.
package vmaterr

import (
	"errors"
	"strconv"
)

// ErrSymbolNotInAlphabet is returned when hashing encounters a symbol
// outside the configured alphabet. This is fatal: the indexer does not
// skip unknown symbols, callers must pre-filter their input.
var ErrSymbolNotInAlphabet = errors.New("symbol not in alphabet")

// ErrWidthOverflow is returned at construction when a k-mer rank for the
// requested k and alphabet size would not fit in 64 bits.
var ErrWidthOverflow = errors.New("k-mer width exceeds 64 bits")

// ErrInvalidAlphabet is returned at construction for duplicate symbols
// or, for DNA, a letter set that is not {A,C,G,T}.
var ErrInvalidAlphabet = errors.New("invalid alphabet")

// ErrInvalidConfiguration is returned by minimiser.New for w<=0, k<=0,
// or an empty configuration set; the CLI also wraps it to report
// mismatched cardinalities between its w and k lists.
var ErrInvalidConfiguration = errors.New("invalid (w,k) configuration")

// ConfigError reports which configuration index failed validation and why.
type ConfigError struct {
	Index int
	Msg   string
}

func (e *ConfigError) Error() string {
	return "configuration " + strconv.Itoa(e.Index) + ": " + e.Msg
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

// AlphabetError reports the offending symbol or letter set.
type AlphabetError struct {
	Msg string
}

func (e *AlphabetError) Error() string { return e.Msg }

func (e *AlphabetError) Unwrap() error { return ErrInvalidAlphabet }
