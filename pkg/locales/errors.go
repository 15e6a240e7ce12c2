package locales

import "errors"

var (
	ErrInvalidFile       = errors.New("locales: invalid locale file")
	ErrUnsupportedFormat = errors.New("locales: unsupported file format")
)
