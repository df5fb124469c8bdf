package frame

import "errors"

var (
	ErrInvalidMagic       = errors.New("frame: invalid magic")
	ErrUnsupportedVersion = errors.New("frame: unsupported version")
	ErrInvalidHeader      = errors.New("frame: invalid fixed header")
	ErrInvalidPayload     = errors.New("frame: invalid payload")
	ErrLimitExceeded      = errors.New("frame: limit exceeded")
	ErrKindMismatch       = errors.New("frame: payload kind mismatch")
	ErrEncodingMismatch   = errors.New("frame: encoding mismatch")
)
