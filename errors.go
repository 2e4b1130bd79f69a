package crossuuid

import "errors"

var (
	// ErrInvalidInput is returned when a required value is missing or a text form cannot be decoded.
	ErrInvalidInput = errors.New("crossuuid: invalid input")
	// ErrBufferTooSmall is returned when a caller supplied buffer cannot hold the canonical text form.
	ErrBufferTooSmall = errors.New("crossuuid: buffer too small")
	// ErrSourceUnavailable is returned when the identifier source failed to produce bytes.
	ErrSourceUnavailable = errors.New("crossuuid: identifier source unavailable")
)
