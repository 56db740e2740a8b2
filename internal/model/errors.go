package model

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when an insert collides with a unique index.
	ErrAlreadyExists = errors.New("already exists")

	// ErrForeignKey is returned when a write references a non-existent parent row.
	ErrForeignKey = errors.New("referenced row does not exist")

	// ErrInvalidStatus is returned when a value outside the garment status
	// enum is supplied.
	ErrInvalidStatus = errors.New("invalid garment status")
)
