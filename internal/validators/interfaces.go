// Package validators checks form input before it reaches the stores.
// Structural rules (required fields, email shape, value sets) are encoded
// as struct tags and evaluated with go-playground/validator; the package
// translates tag failures into messages fit for a form footer.
//
// Validation here is a UI convenience: the stores re-check only the
// preconditions they own (password confirmation), everything else is
// server-enforced.
package validators

import "context"

// Validator validates a single input value.
type Validator interface {

	// Validate checks the provided input and returns a human-readable
	// error describing every failed rule, or nil when the input passes.
	Validate(ctx context.Context, input any) error
}
