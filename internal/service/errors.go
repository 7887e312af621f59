package service

import "errors"

var (
	// ErrPasswordMismatch is returned by Register when the password and
	// its confirmation differ. No network call is made in that case.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInconsistentHourBank is returned by FetchHourBank when the
	// server-reported available hours do not equal total minus used.
	// Such payloads are never admitted into state.
	ErrInconsistentHourBank = errors.New("inconsistent hour bank payload")
)
