package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
)
