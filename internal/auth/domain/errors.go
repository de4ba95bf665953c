package domain

import "errors"

// ErrInvalidToken indicates a token that is malformed, carries a bad
// signature, or is past its expiry. Callers must respond to it exactly as
// they respond to an absent token; the distinction exists for logging only.
var ErrInvalidToken = errors.New("invalid token")
