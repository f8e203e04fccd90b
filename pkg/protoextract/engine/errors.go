package engine

import "errors"

// ErrHeaderNotFound indicates the sheet has no row that can serve as header.
var ErrHeaderNotFound = errors.New("header row not found")

// ErrMissingColumns indicates required columns could not be located.
var ErrMissingColumns = errors.New("required columns not found")
