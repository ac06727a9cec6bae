package action

import "errors"

// ErrInvalidIntent covers semantic violations the core can detect locally:
// an order type that is neither limit nor trigger, a missing required
// field, an empty symbol where one is required.
var ErrInvalidIntent = errors.New("invalid intent")

// ErrInvalidDiscriminant names the error for an unrecognized variant tag
// when decoding. This package only encodes and has no decoder, so nothing
// in it returns this error.
var ErrInvalidDiscriminant = errors.New("invalid discriminant")
