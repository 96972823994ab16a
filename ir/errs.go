package ir

import (
	"errors"
)

var (
	ErrInvalidKeyKind   = errors.New("invalid map key kind")
	ErrDuplicateField   = errors.New("duplicate field")
	ErrEmptyFieldList   = errors.New("empty field list")
	ErrSchemaAlreadySet = errors.New("schema already set")
	ErrRecordTooLong    = errors.New("record too long")
	ErrIndexOutOfRange  = errors.New("index out of range")

	ErrInvalidName  = errors.New("invalid name")
	ErrNoSchema     = errors.New("table has no schema")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrBadPath      = errors.New("bad path")
	ErrInvalidDate  = errors.New("invalid date")
)
