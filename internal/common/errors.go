package common

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected before any network call.
	ErrValidation = errors.New("validation error")

	ErrEmptyQuery       = fmt.Errorf("%w: please enter an asset id", ErrValidation)
	ErrMissingAssetID   = fmt.Errorf("%w: asset id is required", ErrValidation)
	ErrMissingCredsPair = fmt.Errorf("%w: please provide both a username and a password", ErrValidation)
)
