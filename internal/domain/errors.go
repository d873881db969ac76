package domain

import "errors"

var (
	// ErrEmptyPool is returned when the content filters leave no organelles
	// to quiz on; the game refuses to start until settings change.
	ErrEmptyPool = errors.New("question pool is empty, adjust content settings")
	// ErrInvalidTransition is returned when an operation is called in a
	// phase that does not permit it. State is never mutated.
	ErrInvalidTransition = errors.New("operation not valid in current phase")
	// ErrSessionNotFound is returned when a session has not been initialized.
	ErrSessionNotFound = errors.New("game session not found")
	// ErrHintsDisabled is returned when a hint is requested but hints are
	// turned off in the settings.
	ErrHintsDisabled = errors.New("hints are disabled")
	// ErrNothingToReveal is returned when every clue is already visible.
	ErrNothingToReveal = errors.New("nothing left to reveal")
	// ErrCatalogInvalid wraps catalog integrity failures (authoring errors).
	ErrCatalogInvalid = errors.New("organelle catalog invalid")
	// ErrCatalogEmpty indicates the catalog could not be loaded at all.
	ErrCatalogEmpty = errors.New("organelle catalog is empty")
)
