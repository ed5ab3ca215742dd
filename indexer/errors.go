package indexer

import (
	"errors"
	"fmt"
)

// ErrUnreachable is returned when the site couldn't be reached.
var ErrUnreachable = errors.New("unable to connect to provider")

type LoginError struct {
	err error
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("login failed: %v", e.err)
}

func (e *LoginError) Unwrap() error {
	return e.err
}

var errInvalidCredentials = errors.New("invalid username or password")
