package domain

import "errors"

// Domain errors represent conversion failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown tag set, mode or setting.
	ErrUnsupportedType = errors.New("unsupported type")

	// Extraction Errors.

	// ErrEmptyLeaf indicates a matched element has neither children nor text.
	ErrEmptyLeaf = errors.New("empty leaf element")

	// ErrParse indicates a document is not well-formed XML.
	ErrParse = errors.New("parse failed")

	// ErrEmptyDocument indicates a document has no root element.
	ErrEmptyDocument = errors.New("document has no root element")

	// Corpus Errors.

	// ErrRootNotFound indicates the corpus root directory does not exist.
	ErrRootNotFound = errors.New("corpus root does not exist")

	// ErrUnknownColumn indicates a projection named a column absent from the table.
	ErrUnknownColumn = errors.New("unknown column")
)
