package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-cloud-keeper/internal/sets"
)

// Field names accepted by SetValidator.
const (
	FieldID         = "id"
	FieldSetID      = "set_id"
	FieldNodeHandle = "node_handle"
	FieldKey        = "key"
	FieldTS         = "ts"
)

// AES-128, AES-192 and AES-256
var allowedKeyLengths = []int{16, 24, 32}

type SetValidator struct{}

// NewSetValidator returns a Validator for *sets.Set and *sets.Element
// deltas. A missing key passes, the owned one is borrowed on update.
func NewSetValidator() Validator {
	return &SetValidator{}
}

func (v *SetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *sets.Set:
		return v.validateSet(ctx, value, fields...)
	case *sets.Element:
		return v.validateElement(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SetValidator) validateSet(_ context.Context, set *sets.Set, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldKey, FieldTS}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if set.ID().IsUndef() {
				return ErrInvalidSetID
			}
		case FieldKey:
			if !isValidKey(set.Key()) {
				return ErrInvalidKey
			}
		case FieldTS:
			if set.TS() < 0 {
				return ErrNegativeTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SetValidator) validateElement(_ context.Context, el *sets.Element, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldSetID, FieldNodeHandle, FieldKey, FieldTS}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if el.ID().IsUndef() {
				return ErrInvalidElementID
			}
		case FieldSetID:
			if el.SetID().IsUndef() {
				return ErrInvalidSetID
			}
		case FieldNodeHandle:
			if el.NodeHandle().IsUndef() {
				return ErrInvalidNodeHandle
			}
		case FieldKey:
			if !isValidKey(el.Key()) {
				return ErrInvalidKey
			}
		case FieldTS:
			if el.TS() < 0 {
				return ErrNegativeTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidKey(key []byte) bool {
	return key == nil || slices.Contains(allowedKeyLengths, len(key))
}
