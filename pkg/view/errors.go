package view

import "errors"

var (
	// ErrNotImplemented is returned by Unimplemented.Run.
	ErrNotImplemented = errors.New("view: Run not implemented")

	// ErrNoTemplate is returned when a view renders without a template name.
	ErrNoTemplate = errors.New("view: no template name")

	// ErrReservedKey is returned by Data.Set for the key holding the view.
	ErrReservedKey = errors.New("view: reserved key")

	// ErrEmptyKey is returned by Data.Set for an empty key.
	ErrEmptyKey = errors.New("view: empty key")
)
