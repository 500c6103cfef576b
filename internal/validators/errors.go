package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSetID      = errors.New("invalid set id")
	ErrInvalidElementID  = errors.New("invalid element id")
	ErrInvalidNodeHandle = errors.New("invalid node handle")
	ErrInvalidKey        = errors.New("invalid key length")
	ErrNegativeTimestamp = errors.New("timestamp must not be negative")
)
