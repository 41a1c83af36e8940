package domain

import "errors"

var ErrResultNotFound = errors.New("recommendation result not found")
