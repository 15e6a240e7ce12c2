package check

import "errors"

var (
	ErrNilFS          = errors.New("check: locales filesystem cannot be nil")
	ErrEmptyTemplate  = errors.New("check: template file name cannot be empty")
	ErrInvalidPattern = errors.New("check: invalid usage pattern")
	ErrMissingCapture = errors.New("check: usage pattern must capture the key argument")
)
