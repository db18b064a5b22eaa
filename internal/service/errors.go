package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoEnvelopeProvided = errors.New("no report envelope provided")
	ErrNoItemProvided     = errors.New("no item provided")
	ErrValidationCanceled = errors.New("validation canceled")

	ErrMissingDependency = errors.New("missing service dependency")
)
