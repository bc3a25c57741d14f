package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageSuccessPing          = "pong"

	ErrInvalidID         = errors.New("invalid id")
	ErrMissingRouteParam = errors.New("missing route parameter")
	ErrUnknownForm       = errors.New("invalid form name")
	ErrUnsupportedFile   = errors.New("unsupported file type")
)
