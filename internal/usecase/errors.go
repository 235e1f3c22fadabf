package usecase

import "errors"

// ErrValidation marks client errors: a missing or malformed field rejected
// before any storage access. Handlers map it to 400.
var ErrValidation = errors.New("validation")
