package tagteam

import "errors"

var (
	// ErrEmptyInput is returned when build is called with an empty or
	// all-whitespace string (spec §7 InputError).
	ErrEmptyInput = errors.New("tagteam: input text is empty")

	// ErrModelUnavailable is returned when a required collaborator model
	// (tagger, parser) was not supplied (spec §7 ModelError — the
	// pipeline cannot run and must fail fast).
	ErrModelUnavailable = errors.New("tagteam: required model unavailable")

	// ErrInvalidOption is returned for an option value outside its
	// documented domain (e.g. preserveThreshold outside [0,1]).
	ErrInvalidOption = errors.New("tagteam: invalid option value")
)
