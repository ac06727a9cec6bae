package keypair

import "errors"

// ErrInvalidKey is returned for any base58 public-key or secret decode
// failure, wrong length, or (for the 64-byte expanded secret form) an
// embedded public key that disagrees with the one derived from the seed.
var ErrInvalidKey = errors.New("invalid key")
